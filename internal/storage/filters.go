package storage

// EntryFilter narrows productivity entry queries. Empty fields are ignored;
// dates are inclusive ISO (yyyy-mm-dd) strings, so plain string comparison
// matches chronological order.
type EntryFilter struct {
	ProjectID  string
	CostCodeID string
	DateFrom   string
	DateTo     string
}
