package storage

// UnitPriceEntry is one row of the org-wide unit price book: the latest
// observed cost for an activity alongside the rate it was last bid at.
// Keyed by (org, code) — updating from a new project overwrites the row.
type UnitPriceEntry struct {
	ID                string  `json:"id"`
	OrgID             string  `json:"org_id"`
	Code              string  `json:"code"`
	CSIDivision       string  `json:"csi_division"`
	Activity          string  `json:"activity"`
	UnitOfMeasure     string  `json:"unit_of_measure"`
	BidRate           float64 `json:"bid_rate"`
	ObservedRate      float64 `json:"observed_rate"`
	RecommendedRate   float64 `json:"recommended_rate"`
	SampleSize        int     `json:"sample_size"`
	SourceProjectID   string  `json:"source_project_id"`
	SourceProjectName string  `json:"source_project_name"`
	UpdatedDate       string  `json:"updated_date"`
}
