package storage

// CrewComposition breaks a crew down by role. Counts are non-negative and
// sum to the crew size.
type CrewComposition struct {
	Journeymen  int `json:"journeymen"`
	Apprentices int `json:"apprentices"`
	Foremen     int `json:"foremen"`
}

func (c CrewComposition) Size() int {
	return c.Journeymen + c.Apprentices + c.Foremen
}

// CostCode is the budgeted reference record for one project activity.
// Maintained by admins during project setup; the engine only reads it.
type CostCode struct {
	ID                        string          `json:"id"`
	ProjectID                 string          `json:"project_id"`
	Code                      string          `json:"code"`
	CSIDivision               string          `json:"csi_division"`
	Activity                  string          `json:"activity"`
	UnitOfMeasure             string          `json:"unit_of_measure"`
	BudgetedQuantity          float64         `json:"budgeted_quantity"`
	BudgetedUnitPrice         float64         `json:"budgeted_unit_price"`
	BudgetedLaborHoursPerUnit float64         `json:"budgeted_labor_hours_per_unit"`
	BudgetedCrewSize          int             `json:"budgeted_crew_size"`
	BudgetedCrewMix           CrewComposition `json:"budgeted_crew_mix"`
	IsActive                  bool            `json:"is_active"`
}
