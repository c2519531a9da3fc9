package restcountries

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"countrybot/internal/domain"
	"countrybot/internal/repository"
)

const (
	// DefaultBaseURL points at the public REST Countries v3.1 API
	DefaultBaseURL = "https://restcountries.com/v3.1"

	lookupTimeout  = 10 * time.Second
	catalogTimeout = 15 * time.Second
)

// Client implements repository.CountryDirectory against REST Countries
type Client struct {
	baseURL string
	http    *http.Client
	catalog *http.Client
}

// NewClient creates a new REST Countries client
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: lookupTimeout},
		catalog: &http.Client{Timeout: catalogTimeout},
	}
}

// record mirrors the provider's response shape
type record struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
	Flags     struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
}

// Search returns all countries whose name matches the query
func (c *Client) Search(name string) ([]domain.CountryRecord, error) {
	return c.fetch(c.http, "/name/"+url.PathEscape(name))
}

// ByRegion returns all countries tagged with the given region
func (c *Client) ByRegion(region string) ([]domain.CountryRecord, error) {
	return c.fetch(c.http, "/region/"+url.PathEscape(region))
}

// All returns the full country catalog
func (c *Client) All() ([]domain.CountryRecord, error) {
	return c.fetch(c.catalog, "/all")
}

func (c *Client) fetch(client *http.Client, path string) ([]domain.CountryRecord, error) {
	resp, err := client.Get(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrLookupFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", repository.ErrLookupFailure, resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrLookupFailure, err)
	}

	countries := make([]domain.CountryRecord, 0, len(records))
	for _, rec := range records {
		countries = append(countries, normalize(rec))
	}
	return countries, nil
}

// normalize converts a raw provider record into a domain record with safe
// defaults: missing numbers become 0, missing lists become empty, currency
// and language names are sorted for stable output.
func normalize(rec record) domain.CountryRecord {
	name := rec.Name.Common
	if name == "" {
		name = "Unknown"
	}

	capital := rec.Capital
	if capital == nil {
		capital = []string{}
	}

	currencies := make([]string, 0, len(rec.Currencies))
	for _, cur := range rec.Currencies {
		if cur.Name != "" {
			currencies = append(currencies, cur.Name)
		}
	}
	sort.Strings(currencies)

	languages := make([]string, 0, len(rec.Languages))
	for _, lang := range rec.Languages {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	population := rec.Population
	if population < 0 {
		population = 0
	}

	area := rec.Area
	if area < 0 {
		area = 0
	}

	return domain.CountryRecord{
		Name:       name,
		Capital:    capital,
		Region:     rec.Region,
		Subregion:  rec.Subregion,
		Population: population,
		Area:       area,
		Currencies: currencies,
		Languages:  languages,
		FlagURL:    rec.Flags.PNG,
	}
}
