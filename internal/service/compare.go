package service

import (
	"math"

	"countrybot/internal/domain"
)

// ComparisonEngine computes structured country comparisons
type ComparisonEngine struct{}

// NewComparisonEngine creates a new comparison engine
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{}
}

// Compare builds a population/area/density report for two countries.
// Density is all-or-nothing: if either side has no usable area, the
// density outcome is insufficient and no density value is reported for
// either country. Densities are rounded to one decimal place and the
// comparison uses the rounded values.
func (e *ComparisonEngine) Compare(a, b domain.CountryRecord) domain.ComparisonReport {
	report := domain.ComparisonReport{
		FirstName:        a.Name,
		SecondName:       b.Name,
		PopulationFirst:  a.Population,
		PopulationSecond: b.Population,
		AreaFirst:        a.Area,
		AreaSecond:       b.Area,
	}

	switch {
	case a.Population > b.Population:
		report.Population = domain.OutcomeFirst
	case a.Population < b.Population:
		report.Population = domain.OutcomeSecond
	default:
		report.Population = domain.OutcomeEqual
	}

	switch {
	case a.Area > b.Area:
		report.Area = domain.OutcomeFirst
	case a.Area < b.Area:
		report.Area = domain.OutcomeSecond
	default:
		report.Area = domain.OutcomeEqual
	}

	if a.Area <= 0 || b.Area <= 0 {
		report.Density = domain.OutcomeInsufficient
		return report
	}

	report.DensityFirst = roundDensity(float64(a.Population) / a.Area)
	report.DensitySecond = roundDensity(float64(b.Population) / b.Area)

	switch {
	case report.DensityFirst > report.DensitySecond:
		report.Density = domain.OutcomeFirst
	case report.DensityFirst < report.DensitySecond:
		report.Density = domain.OutcomeSecond
	default:
		report.Density = domain.OutcomeEqual
	}

	return report
}

func roundDensity(d float64) float64 {
	return math.Round(d*10) / 10
}
