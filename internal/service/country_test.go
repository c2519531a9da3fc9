package service

import (
	"fmt"
	"testing"

	"countrybot/internal/domain"
	"countrybot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCountryService_Search(t *testing.T) {
	mockDir := new(testutil.MockCountryDirectory)
	service := NewCountryService(mockDir)

	// The query is trimmed before hitting the directory
	mockDir.On("Search", "japan").Return([]domain.CountryRecord{
		testutil.NewTestCountry("Japan", 125000000, 377975),
	}, nil)

	results, err := service.Search("  japan  ")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	mockDir.AssertExpectations(t)
}

func TestCountryService_Search_EmptyQuery(t *testing.T) {
	service := NewCountryService(new(testutil.MockCountryDirectory))

	_, err := service.Search("   ")
	assert.Error(t, err)
}

func TestCountryService_First(t *testing.T) {
	tests := []struct {
		name        string
		results     []domain.CountryRecord
		err         error
		expectNil   bool
		expectError bool
	}{
		{
			name: "first of several matches",
			results: []domain.CountryRecord{
				testutil.NewTestCountry("Guinea", 1, 1),
				testutil.NewTestCountry("Guinea-Bissau", 2, 2),
			},
		},
		{
			name:      "no matches",
			results:   []domain.CountryRecord{},
			expectNil: true,
		},
		{
			name:        "lookup failure",
			err:         fmt.Errorf("lookup failed"),
			expectNil:   true,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDir := new(testutil.MockCountryDirectory)
			service := NewCountryService(mockDir)

			if tt.err != nil {
				mockDir.On("Search", "guinea").Return(nil, tt.err)
			} else {
				mockDir.On("Search", "guinea").Return(tt.results, nil)
			}

			country, err := service.First("guinea")
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, country)
			} else {
				assert.Equal(t, tt.results[0].Name, country.Name)
			}
		})
	}
}

func TestCountryService_ByRegion_Sorted(t *testing.T) {
	mockDir := new(testutil.MockCountryDirectory)
	service := NewCountryService(mockDir)

	mockDir.On("ByRegion", "Europe").Return([]domain.CountryRecord{
		testutil.NewTestCountry("Spain", 1, 1),
		testutil.NewTestCountry("Albania", 2, 2),
		testutil.NewTestCountry("France", 3, 3),
	}, nil)

	countries, err := service.ByRegion("Europe")
	assert.NoError(t, err)
	assert.Equal(t, "Albania", countries[0].Name)
	assert.Equal(t, "France", countries[1].Name)
	assert.Equal(t, "Spain", countries[2].Name)
}

func TestCountryService_ByRegion_EmptyRegion(t *testing.T) {
	service := NewCountryService(new(testutil.MockCountryDirectory))

	_, err := service.ByRegion("  ")
	assert.Error(t, err)
}
