package service

import (
	"fmt"

	"countrybot/internal/domain"
	"countrybot/internal/repository"
)

// PreferenceService handles home country preferences
type PreferenceService struct {
	prefRepo repository.PreferenceRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(prefRepo repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

// Get returns the saved preference for a user, nil if none exists
func (s *PreferenceService) Get(userID int64) (*domain.UserPreference, error) {
	return s.prefRepo.Get(userID)
}

// SetHome saves a user's home country, fully replacing any prior value
func (s *PreferenceService) SetHome(userID int64, country, displayName string) error {
	if country == "" {
		return fmt.Errorf("country name cannot be empty")
	}
	return s.prefRepo.Set(domain.UserPreference{
		UserID:      userID,
		Country:     country,
		DisplayName: displayName,
	})
}
