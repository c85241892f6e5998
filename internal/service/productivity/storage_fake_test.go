package productivity

import (
	"context"

	"fieldops/internal/storage"
)

// fakeStorage is an in-memory ProductivityStorage for the service tests.
// Filtering mirrors what the MySQL queries do.
type fakeStorage struct {
	costCodes []storage.CostCode
	entries   []storage.ProductivityEntry
	baselines []storage.ProductivityBaseline
	analytics []storage.ProductivityAnalytics
}

func (f *fakeStorage) GetCostCodeByID(_ context.Context, projectID, costCodeID string) (*storage.CostCode, error) {
	for i := range f.costCodes {
		c := f.costCodes[i]
		if c.ProjectID == projectID && c.ID == costCodeID {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) FindCostCodeByActivity(_ context.Context, projectID, csiDivision, activity string) (*storage.CostCode, error) {
	for i := range f.costCodes {
		c := f.costCodes[i]
		if c.ProjectID == projectID && c.CSIDivision == csiDivision && c.Activity == activity {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) GetCostCodes(_ context.Context, projectID string, activeOnly bool) ([]storage.CostCode, error) {
	var out []storage.CostCode
	for _, c := range f.costCodes {
		if c.ProjectID != projectID {
			continue
		}
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStorage) GetProductivityEntries(_ context.Context, filter storage.EntryFilter) ([]storage.ProductivityEntry, error) {
	var out []storage.ProductivityEntry
	for _, e := range f.entries {
		if e.ProjectID != filter.ProjectID {
			continue
		}
		if filter.CostCodeID != "" && e.CostCodeID != filter.CostCodeID {
			continue
		}
		if filter.DateFrom != "" && e.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && e.Date > filter.DateTo {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStorage) InsertProductivityEntry(_ context.Context, entry storage.ProductivityEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeStorage) GetBaselines(_ context.Context, projectID, costCodeID string, activeOnly bool) ([]storage.ProductivityBaseline, error) {
	var out []storage.ProductivityBaseline
	for _, b := range f.baselines {
		if b.ProjectID != projectID {
			continue
		}
		if costCodeID != "" && b.CostCodeID != costCodeID {
			continue
		}
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeStorage) DeactivateBaseline(_ context.Context, id string) error {
	for i := range f.baselines {
		if f.baselines[i].ID == id {
			f.baselines[i].IsActive = false
		}
	}
	return nil
}

func (f *fakeStorage) InsertBaseline(_ context.Context, baseline storage.ProductivityBaseline) error {
	f.baselines = append(f.baselines, baseline)
	return nil
}

func (f *fakeStorage) GetAnalytics(_ context.Context, projectID, costCodeID string) ([]storage.ProductivityAnalytics, error) {
	var out []storage.ProductivityAnalytics
	for _, a := range f.analytics {
		if a.ProjectID != projectID {
			continue
		}
		if costCodeID != "" && a.CostCodeID != costCodeID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStorage) InsertAnalytics(_ context.Context, analytics storage.ProductivityAnalytics) error {
	f.analytics = append(f.analytics, analytics)
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
