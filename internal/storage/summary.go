package storage

// CostCodeSummary is the per-cost-code slice of the project rollup.
// ProductivityIndex is nil when the cost code has no active baseline.
type CostCodeSummary struct {
	CostCodeID        string         `json:"cost_code_id"`
	Code              string         `json:"code"`
	Activity          string         `json:"activity"`
	UnitOfMeasure     string         `json:"unit_of_measure"`
	CurrentUnitRate   float64        `json:"current_unit_rate"`
	BaselineUnitRate  *float64       `json:"baseline_unit_rate,omitempty"`
	ProductivityIndex *float64       `json:"productivity_index,omitempty"`
	TrendDirection    TrendDirection `json:"trend_direction"`
	PercentComplete   float64        `json:"percent_complete"`
	DaysBehind        float64        `json:"days_behind"`
	IsAtRisk          bool           `json:"is_at_risk"`
	EntryCount        int            `json:"entry_count"`
}

// ProjectProductivitySummary is the project-wide rollup across all active
// cost codes that have at least one productivity entry.
type ProjectProductivitySummary struct {
	ProjectID                string            `json:"project_id"`
	CostCodes                []CostCodeSummary `json:"cost_codes"`
	OverallProductivityIndex *float64          `json:"overall_productivity_index,omitempty"`
	AtRiskCount              int               `json:"at_risk_count"`
}
