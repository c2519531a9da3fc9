package service

import (
	"fmt"
	"sort"
	"strings"

	"countrybot/internal/domain"
	"countrybot/internal/repository"
)

// CountryService handles country lookup business logic
type CountryService struct {
	directory repository.CountryDirectory
}

// NewCountryService creates a new country service
func NewCountryService(directory repository.CountryDirectory) *CountryService {
	return &CountryService{directory: directory}
}

// Search returns all countries matching a free-text name query
func (s *CountryService) Search(name string) ([]domain.CountryRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty country name")
	}
	return s.directory.Search(name)
}

// First returns the best match for a name query, nil if nothing matched
func (s *CountryService) First(name string) (*domain.CountryRecord, error) {
	results, err := s.Search(name)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ByRegion returns countries of a region sorted ascending by common name
func (s *CountryService) ByRegion(region string) ([]domain.CountryRecord, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, fmt.Errorf("empty region")
	}

	countries, err := s.directory.ByRegion(region)
	if err != nil {
		return nil, err
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	return countries, nil
}

// All returns the full country catalog
func (s *CountryService) All() ([]domain.CountryRecord, error) {
	return s.directory.All()
}
