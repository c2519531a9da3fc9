package domain

// CountryRecord is a normalized projection of one provider record.
// All fields carry safe defaults after normalization: numbers are never
// negative, slices are never nil, FlagURL is empty when absent.
// Records are never mutated after a lookup.
type CountryRecord struct {
	Name       string
	Capital    []string
	Region     string
	Subregion  string
	Population int64
	Area       float64
	Currencies []string
	Languages  []string
	FlagURL    string
}
