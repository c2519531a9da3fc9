package domain

// UserPreference holds a user's saved home country.
// Country stores the provider's canonical common name; the record is
// re-resolved live on every display, so the underlying data may drift.
type UserPreference struct {
	UserID      int64
	Country     string
	DisplayName string
}
