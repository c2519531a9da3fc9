package postgres

import (
	"database/sql"

	"countrybot/internal/domain"
)

// PreferenceRepo implements repository.PreferenceRepository
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Get returns the saved preference for a user, nil if none exists
func (r *PreferenceRepo) Get(userID int64) (*domain.UserPreference, error) {
	var p domain.UserPreference
	var displayName sql.NullString
	query := `SELECT user_id, country, display_name FROM preferences WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&p.UserID, &p.Country, &displayName)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if displayName.Valid {
		p.DisplayName = displayName.String
	}

	return &p, nil
}

// Set upserts the preference, fully replacing any prior value.
// The single-statement upsert keeps concurrent writes to the same
// user id from losing updates.
func (r *PreferenceRepo) Set(pref domain.UserPreference) error {
	query := `
		INSERT INTO preferences (user_id, country, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET country = EXCLUDED.country, display_name = EXCLUDED.display_name, updated_at = NOW()
	`
	_, err := r.db.Exec(query, pref.UserID, pref.Country, pref.DisplayName)
	return err
}
