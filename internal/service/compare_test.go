package service

import (
	"testing"

	"countrybot/internal/domain"
	"countrybot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestComparisonEngine_Compare(t *testing.T) {
	engine := NewComparisonEngine()

	tests := []struct {
		name               string
		a                  domain.CountryRecord
		b                  domain.CountryRecord
		expectedPopulation domain.MetricOutcome
		expectedArea       domain.MetricOutcome
		expectedDensity    domain.MetricOutcome
	}{
		{
			name:               "first wins everything",
			a:                  testutil.NewTestCountry("Bigland", 1000, 10),
			b:                  testutil.NewTestCountry("Smallland", 100, 5),
			expectedPopulation: domain.OutcomeFirst,
			expectedArea:       domain.OutcomeFirst,
			expectedDensity:    domain.OutcomeFirst,
		},
		{
			name:               "second wins everything",
			a:                  testutil.NewTestCountry("Smallland", 100, 5),
			b:                  testutil.NewTestCountry("Bigland", 1000, 10),
			expectedPopulation: domain.OutcomeSecond,
			expectedArea:       domain.OutcomeSecond,
			expectedDensity:    domain.OutcomeSecond,
		},
		{
			name:               "equal populations and areas",
			a:                  testutil.NewTestCountry("Twin A", 500, 25),
			b:                  testutil.NewTestCountry("Twin B", 500, 25),
			expectedPopulation: domain.OutcomeEqual,
			expectedArea:       domain.OutcomeEqual,
			expectedDensity:    domain.OutcomeEqual,
		},
		{
			name:               "zero area on one side blocks density for both",
			a:                  testutil.NewTestCountry("Noarea", 10, 0),
			b:                  testutil.NewTestCountry("Hasarea", 20, 5),
			expectedPopulation: domain.OutcomeSecond,
			expectedArea:       domain.OutcomeSecond,
			expectedDensity:    domain.OutcomeInsufficient,
		},
		{
			name:               "both areas zero",
			a:                  testutil.NewTestCountry("A", 10, 0),
			b:                  testutil.NewTestCountry("B", 10, 0),
			expectedPopulation: domain.OutcomeEqual,
			expectedArea:       domain.OutcomeEqual,
			expectedDensity:    domain.OutcomeInsufficient,
		},
		{
			name: "raw densities differ but round to the same figure",
			// 100.04 and 99.96 both round to 100.0
			a:                  testutil.NewTestCountry("A", 10004, 100),
			b:                  testutil.NewTestCountry("B", 9996, 100),
			expectedPopulation: domain.OutcomeFirst,
			expectedArea:       domain.OutcomeEqual,
			expectedDensity:    domain.OutcomeEqual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.Compare(tt.a, tt.b)

			assert.Equal(t, tt.a.Name, report.FirstName)
			assert.Equal(t, tt.b.Name, report.SecondName)
			assert.Equal(t, tt.expectedPopulation, report.Population)
			assert.Equal(t, tt.expectedArea, report.Area)
			assert.Equal(t, tt.expectedDensity, report.Density)

			if tt.expectedDensity == domain.OutcomeInsufficient {
				assert.Zero(t, report.DensityFirst)
				assert.Zero(t, report.DensitySecond)
			}
		})
	}
}

func TestComparisonEngine_Compare_Symmetry(t *testing.T) {
	engine := NewComparisonEngine()

	a := testutil.NewTestCountry("Japan", 125000000, 377975)
	b := testutil.NewTestCountry("France", 67000000, 551695)

	ab := engine.Compare(a, b)
	ba := engine.Compare(b, a)

	// Same winner per metric with roles swapped
	assert.Equal(t, domain.OutcomeFirst, ab.Population)
	assert.Equal(t, domain.OutcomeSecond, ba.Population)
	assert.Equal(t, domain.OutcomeSecond, ab.Area)
	assert.Equal(t, domain.OutcomeFirst, ba.Area)
	assert.Equal(t, domain.OutcomeFirst, ab.Density)
	assert.Equal(t, domain.OutcomeSecond, ba.Density)

	assert.Equal(t, ab.DensityFirst, ba.DensitySecond)
	assert.Equal(t, ab.DensitySecond, ba.DensityFirst)
}

func TestComparisonEngine_Compare_DensityRounding(t *testing.T) {
	engine := NewComparisonEngine()

	a := testutil.NewTestCountry("A", 1000, 3)
	b := testutil.NewTestCountry("B", 500, 7)

	report := engine.Compare(a, b)

	// 333.333... rounds to 333.3, 71.428... rounds to 71.4
	assert.Equal(t, 333.3, report.DensityFirst)
	assert.Equal(t, 71.4, report.DensitySecond)
}
