package testutil

import (
	"countrybot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCountry creates a test country record with safe defaults
func NewTestCountry(name string, population int64, area float64) domain.CountryRecord {
	return domain.CountryRecord{
		Name:       name,
		Capital:    []string{name + " City"},
		Region:     "Testland",
		Subregion:  "Inner Testland",
		Population: population,
		Area:       area,
		Currencies: []string{"Test dollar"},
		Languages:  []string{"Testish"},
	}
}

// NewTestPreference creates a test user preference
func NewTestPreference(userID int64, country, displayName string) *domain.UserPreference {
	return &domain.UserPreference{
		UserID:      userID,
		Country:     country,
		DisplayName: displayName,
	}
}
