package storage

// KeyFinding is one per-cost-code conclusion inside a bid feedback report.
// The recommendation text always carries one of the severity labels
// CRITICAL, CAUTION, ON TARGET or OPPORTUNITY.
type KeyFinding struct {
	CostCodeID     string  `json:"cost_code_id"`
	Code           string  `json:"code"`
	Activity       string  `json:"activity"`
	BudgetedRate   float64 `json:"budgeted_rate"`
	ActualRate     float64 `json:"actual_rate"`
	VariancePct    float64 `json:"variance_pct"`
	SampleSize     int     `json:"sample_size"`
	Recommendation string  `json:"recommendation"`
}

// AdjustmentRecommendation proposes a new bid rate for an activity whose
// observed cost drifted more than the caution threshold off the bid.
type AdjustmentRecommendation struct {
	CostCodeID      string  `json:"cost_code_id"`
	Code            string  `json:"code"`
	Activity        string  `json:"activity"`
	UnitOfMeasure   string  `json:"unit_of_measure"`
	CurrentBidRate  float64 `json:"current_bid_rate"`
	RecommendedRate float64 `json:"recommended_rate"`
	Confidence      float64 `json:"confidence"`
	Rationale       string  `json:"rationale"`
}

// BidFeedbackReport compares as-bid unit pricing against observed actual
// cost across a whole project.
type BidFeedbackReport struct {
	ID                        string                     `json:"id"`
	ProjectID                 string                     `json:"project_id"`
	ProjectName               string                     `json:"project_name"`
	GeneratedDate             string                     `json:"generated_date"`
	KeyFindings               []KeyFinding               `json:"key_findings"`
	AdjustmentRecommendations []AdjustmentRecommendation `json:"adjustment_recommendations"`
}
