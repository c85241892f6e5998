package storage

type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// ProductivityAnalytics is one computed trend/variance report for a cost
// code over a period window. Every computation call appends a fresh record;
// retention of the history is the caller's business.
type ProductivityAnalytics struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	CostCodeID  string     `json:"cost_code_id"`
	PeriodType  PeriodType `json:"period_type"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`

	AverageUnitRate   float64 `json:"average_unit_rate"`
	PeakUnitRate      float64 `json:"peak_unit_rate"`
	LowUnitRate       float64 `json:"low_unit_rate"`
	StandardDeviation float64 `json:"standard_deviation"`

	TrendDirection TrendDirection `json:"trend_direction"`
	TrendMagnitude float64        `json:"trend_magnitude"`

	TotalQuantityInstalled float64  `json:"total_quantity_installed"`
	TotalLaborHours        float64  `json:"total_labor_hours"`
	TotalEquipmentHours    *float64 `json:"total_equipment_hours,omitempty"`

	// Budget comparison. Zero-valued when the cost code is unresolved.
	PlannedVsActualVariance float64 `json:"planned_vs_actual_variance"`
	CostVariance            float64 `json:"cost_variance"`
	ScheduleVariance        float64 `json:"schedule_variance"`

	ImpactFactors []string `json:"impact_factors,omitempty"`
}
