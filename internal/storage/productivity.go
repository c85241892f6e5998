package storage

// ProductivityEntry is one measured unit of work output for one day,
// derived from a daily log work item. Entries are append-only: once
// written they are never updated, and re-deriving the same log produces
// duplicates (there is no dedup key).
type ProductivityEntry struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	DailyLogID  string `json:"daily_log_id"`
	Date        string `json:"date"`
	CostCodeID  string `json:"cost_code_id"`
	CSIDivision string `json:"csi_division"`
	Activity    string `json:"activity"`
	TaktZone    string `json:"takt_zone"`

	QuantityInstalled float64         `json:"quantity_installed"`
	UnitOfMeasure     string          `json:"unit_of_measure"`
	CrewSize          int             `json:"crew_size"`
	CrewComposition   CrewComposition `json:"crew_composition"`

	LaborHoursExpended     float64  `json:"labor_hours_expended"`
	EquipmentHoursExpended *float64 `json:"equipment_hours_expended,omitempty"`
	OvertimeHoursIncluded  bool     `json:"overtime_hours_included"`
	ReworkIncluded         bool     `json:"rework_included"`

	// Computed at derivation time. ProductivityIndex is nil when no cost
	// code could be resolved or the budget carries no labor hours.
	ComputedUnitRate          float64  `json:"computed_unit_rate"`
	ComputedProductivityIndex *float64 `json:"computed_productivity_index,omitempty"`
	ComputedLaborCostPerUnit  float64  `json:"computed_labor_cost_per_unit"`
}
