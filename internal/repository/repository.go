package repository

import (
	"errors"

	"countrybot/internal/domain"
)

// ErrLookupFailure marks a failed provider call (network error, timeout,
// or non-2xx status). Callers present it to users as "not found".
var ErrLookupFailure = errors.New("country lookup failed")

// PreferenceRepository defines durable user preference operations.
type PreferenceRepository interface {
	Get(userID int64) (*domain.UserPreference, error)
	Set(pref domain.UserPreference) error
}

// CountryDirectory defines read-only access to the country data provider.
// All methods return normalized records and wrap provider failures in
// ErrLookupFailure.
type CountryDirectory interface {
	Search(name string) ([]domain.CountryRecord, error)
	ByRegion(region string) ([]domain.CountryRecord, error)
	All() ([]domain.CountryRecord, error)
}
