package service

import (
	"fmt"
	"testing"

	"countrybot/internal/domain"
	"countrybot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceService_SetHome(t *testing.T) {
	tests := []struct {
		name          string
		country       string
		mockError     error
		expectedError bool
	}{
		{
			name:    "valid country",
			country: "Japan",
		},
		{
			name:          "empty country",
			country:       "",
			expectedError: true,
		},
		{
			name:          "store failure",
			country:       "Japan",
			mockError:     fmt.Errorf("store unreachable"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockPreferenceRepository)

			if tt.country != "" {
				mockRepo.On("Set", domain.UserPreference{
					UserID:      42,
					Country:     tt.country,
					DisplayName: "tester",
				}).Return(tt.mockError)
			}

			service := NewPreferenceService(mockRepo)
			err := service.SetHome(42, tt.country, "tester")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.country != "" {
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestPreferenceService_Get(t *testing.T) {
	mockRepo := new(testutil.MockPreferenceRepository)
	service := NewPreferenceService(mockRepo)

	pref := testutil.NewTestPreference(42, "Japan", "tester")
	mockRepo.On("Get", int64(42)).Return(pref, nil)
	mockRepo.On("Get", int64(7)).Return(nil, nil)

	got, err := service.Get(42)
	assert.NoError(t, err)
	assert.Equal(t, "Japan", got.Country)

	got, err = service.Get(7)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
