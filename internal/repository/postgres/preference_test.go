package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"countrybot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedPref  *domain.UserPreference
		expectedError bool
	}{
		{
			name:   "preference exists",
			userID: 42,
			mockRows: sqlmock.NewRows([]string{"user_id", "country", "display_name"}).
				AddRow(int64(42), "Japan", "tester"),
			expectedPref: &domain.UserPreference{UserID: 42, Country: "Japan", DisplayName: "tester"},
		},
		{
			name:   "null display name",
			userID: 42,
			mockRows: sqlmock.NewRows([]string{"user_id", "country", "display_name"}).
				AddRow(int64(42), "Japan", nil),
			expectedPref: &domain.UserPreference{UserID: 42, Country: "Japan"},
		},
		{
			name:      "no preference",
			userID:    7,
			mockError: sql.ErrNoRows,
		},
		{
			name:          "database error",
			userID:        7,
			mockError:     fmt.Errorf("connection lost"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewPreferenceRepo(db)

			query := "SELECT user_id, country, display_name FROM preferences WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			pref, err := repo.Get(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPref, pref)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferenceRepo_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	query := "INSERT INTO preferences \\(user_id, country, display_name\\)"

	mock.ExpectExec(query).
		WithArgs(int64(42), "Japan", "tester").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Set(domain.UserPreference{UserID: 42, Country: "Japan", DisplayName: "tester"})
	assert.NoError(t, err)

	// A second set fully replaces the first
	mock.ExpectExec(query).
		WithArgs(int64(42), "France", "tester").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Set(domain.UserPreference{UserID: 42, Country: "France", DisplayName: "tester"})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_Set_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectExec("INSERT INTO preferences").
		WithArgs(int64(42), "Japan", "tester").
		WillReturnError(fmt.Errorf("connection lost"))

	err = repo.Set(domain.UserPreference{UserID: 42, Country: "Japan", DisplayName: "tester"})
	assert.Error(t, err)
}
