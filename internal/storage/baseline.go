package storage

// BaselineSourceEarlyPeriod marks baselines built from the opening stretch
// of a cost code's history.
const BaselineSourceEarlyPeriod = "early_period"

// ProductivityBaseline is a frozen statistical snapshot of a cost code's
// productivity over a period. At most one baseline per (project, cost code)
// pair is active at a time; establishing a new one deactivates the rest.
type ProductivityBaseline struct {
	ID                  string          `json:"id"`
	ProjectID           string          `json:"project_id"`
	CostCodeID          string          `json:"cost_code_id"`
	BaselinePeriodStart string          `json:"baseline_period_start"`
	BaselinePeriodEnd   string          `json:"baseline_period_end"`
	BaselineUnitRate    float64         `json:"baseline_unit_rate"`
	BaselineCrewSize    float64         `json:"baseline_crew_size"`
	BaselineCrewMix     CrewComposition `json:"baseline_crew_mix"`
	SampleSize          int             `json:"sample_size"`
	Confidence          float64         `json:"confidence"`
	Source              string          `json:"source"`
	IsActive            bool            `json:"is_active"`
}
