package domain

// MetricOutcome names the winner of one comparison metric.
type MetricOutcome string

const (
	OutcomeFirst        MetricOutcome = "first"
	OutcomeSecond       MetricOutcome = "second"
	OutcomeEqual        MetricOutcome = "equal"
	OutcomeInsufficient MetricOutcome = "insufficient"
)

// ComparisonReport is the structured result of comparing two countries.
// Densities are rounded to one decimal place; the outcome for density is
// OutcomeInsufficient when either side has no usable area, in which case
// DensityFirst and DensitySecond are zero and must not be displayed.
type ComparisonReport struct {
	FirstName  string
	SecondName string

	PopulationFirst  int64
	PopulationSecond int64
	Population       MetricOutcome

	AreaFirst  float64
	AreaSecond float64
	Area       MetricOutcome

	DensityFirst  float64
	DensitySecond float64
	Density       MetricOutcome
}
