package storage

// DailyLog is the raw field record coming in from the mobile front end.
// The engine consumes it as input and never writes it back.
type DailyLog struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"project_id"`
	Date          string              `json:"date"`
	WorkPerformed []WorkPerformedItem `json:"work_performed"`
	Manpower      []ManpowerEntry     `json:"manpower"`
}

// WorkPerformedItem is one line of installed work on a daily log.
// Quantity and CrewHoursWorked are pointers because field crews leave them
// blank often enough that "missing" and "zero" have to stay distinguishable.
type WorkPerformedItem struct {
	CostCodeID      string   `json:"cost_code_id"`
	CSIDivision     string   `json:"csi_division"`
	Activity        string   `json:"activity"`
	TaktZone        string   `json:"takt_zone"`
	Quantity        *float64 `json:"quantity"`
	UnitOfMeasure   string   `json:"unit_of_measure"`
	CrewHoursWorked *float64 `json:"crew_hours_worked"`
	EquipmentHours  *float64 `json:"equipment_hours,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// ManpowerEntry is one crew head-count line on a daily log.
type ManpowerEntry struct {
	Journeymen    int     `json:"journeymen"`
	Apprentices   int     `json:"apprentices"`
	Foremen       int     `json:"foremen"`
	OvertimeHours float64 `json:"overtime_hours"`
}
