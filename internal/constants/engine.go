package constants

// Engine defaults. Handed to the services through their Config structs so
// tests can override them without touching this file.
const (
	// LaborRatePerHour is the blended field labor rate used to turn
	// crew-hours into labor cost.
	LaborRatePerHour = 65.0

	// MinBaselineDataPoints is the minimum number of productivity entries
	// required before a baseline is allowed to exist.
	MinBaselineDataPoints = 5

	// AtRiskProductivityIndex marks a cost code at risk when its current
	// productivity index drops below this fraction of baseline.
	AtRiskProductivityIndex = 0.85

	// Bid feedback variance bounds, in percent of budgeted unit price.
	CriticalVariancePct = 15.0
	CautionVariancePct  = 5.0

	// Trend bounds for analytics: fractional change between the first and
	// last slice of the period.
	TrendThreshold = 0.05

	// PlannedDurationDays is the naive rate-per-day horizon used by the
	// schedule variance heuristic.
	PlannedDurationDays = 30.0
)

// BaselineConfidence maps a sample count onto a confidence score.
func BaselineConfidence(sampleSize int) float64 {
	switch {
	case sampleSize >= 20:
		return 0.95
	case sampleSize >= 15:
		return 0.85
	case sampleSize >= 10:
		return 0.75
	default:
		return 0.6
	}
}
