package testutil

import (
	"countrybot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPreferenceRepository is a mock for PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Get(userID int64) (*domain.UserPreference, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreference), args.Error(1)
}

func (m *MockPreferenceRepository) Set(pref domain.UserPreference) error {
	args := m.Called(pref)
	return args.Error(0)
}

// MockCountryDirectory is a mock for CountryDirectory
type MockCountryDirectory struct {
	mock.Mock
}

func (m *MockCountryDirectory) Search(name string) ([]domain.CountryRecord, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountryRecord), args.Error(1)
}

func (m *MockCountryDirectory) ByRegion(region string) ([]domain.CountryRecord, error) {
	args := m.Called(region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountryRecord), args.Error(1)
}

func (m *MockCountryDirectory) All() ([]domain.CountryRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountryRecord), args.Error(1)
}
