package bidfeedback

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldops/internal/storage"
)

type fakeBidStorage struct {
	orgID     string
	costCodes []storage.CostCode
	entries   []storage.ProductivityEntry
	reports   []storage.BidFeedbackReport
	prices    map[string]storage.UnitPriceEntry
}

func (f *fakeBidStorage) GetCostCodes(_ context.Context, projectID string, activeOnly bool) ([]storage.CostCode, error) {
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

func (f *fakeBidStorage) GetProductivityEntries(_ context.Context, filter storage.EntryFilter) ([]storage.ProductivityEntry, error) {
	var out []storage.ProductivityEntry
	for _, e := range f.entries {
		if e.ProjectID != filter.ProjectID {
			continue
		}
		if filter.CostCodeID != "" && e.CostCodeID != filter.CostCodeID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBidStorage) InsertBidFeedbackReport(_ context.Context, report storage.BidFeedbackReport) error {
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeBidStorage) GetProjectOrg(_ context.Context, projectID string) (string, error) {
	if f.orgID == "" {
		return "", fmt.Errorf("project %s not found", projectID)
	}
	return f.orgID, nil
}

func (f *fakeBidStorage) UpsertUnitPrice(_ context.Context, entry storage.UnitPriceEntry) error {
	if f.prices == nil {
		f.prices = make(map[string]storage.UnitPriceEntry)
	}
	f.prices[entry.OrgID+"|"+entry.Code] = entry
	return nil
}

// bidCostCode wires a cost code whose observed actual cost is easy to dial
// in: with the 65/hr labor rate, 65 units over H hours cost exactly H per
// unit.
func bidCostCode(id, code string, bidRate float64) storage.CostCode {
	return storage.CostCode{
		ID:                id,
		ProjectID:         "prj-1",
		Code:              code,
		Activity:          "Activity " + code,
		UnitOfMeasure:     "sf",
		BudgetedUnitPrice: bidRate,
		IsActive:          true,
	}
}

func bidEntry(costCodeID string, quantity, hours float64) storage.ProductivityEntry {
	return storage.ProductivityEntry{
		ID:                 storage.GenerateID("pe"),
		ProjectID:          "prj-1",
		CostCodeID:         costCodeID,
		QuantityInstalled:  quantity,
		LaborHoursExpended: hours,
	}
}

func TestGenerateBidFeedbackReport_Classification(t *testing.T) {
	cases := []struct {
		name   string
		bid    float64
		hours  float64 // per 65 units, so actual rate == hours
		expect string
	}{
		{"critical at +20%", 10, 12, "CRITICAL"},
		{"caution at +10%", 10, 11, "CAUTION"},
		{"on target at +3%", 10, 10.3, "ON TARGET"},
		{"opportunity at -10%", 10, 9, "OPPORTUNITY"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeBidStorage{orgID: "org-1"}
			store.costCodes = append(store.costCodes, bidCostCode("cc-1", "03-300", tc.bid))
			store.entries = append(store.entries, bidEntry("cc-1", 65, tc.hours))

			service := NewBidFeedbackService(store, DefaultConfig())
			report, err := service.GenerateBidFeedbackReport(context.Background(), "prj-1", "Test Project")

			assert.NoError(t, err)
			if !assert.NotNil(t, report) || !assert.Equal(t, 1, len(report.KeyFindings)) {
				return
			}
			assert.Contains(t, report.KeyFindings[0].Recommendation, tc.expect)
			assert.InDelta(t, tc.hours, report.KeyFindings[0].ActualRate, 1e-9)
		})
	}
}

func TestGenerateBidFeedbackReport_AdjustmentBlend(t *testing.T) {
	store := &fakeBidStorage{orgID: "org-1"}
	store.costCodes = append(store.costCodes, bidCostCode("cc-1", "03-300", 10))
	// 65 units over 15 hours: actual rate 15, +50% over bid.
	store.entries = append(store.entries, bidEntry("cc-1", 65, 15))

	service := NewBidFeedbackService(store, DefaultConfig())
	report, err := service.GenerateBidFeedbackReport(context.Background(), "prj-1", "Test Project")

	assert.NoError(t, err)
	if !assert.NotNil(t, report) || !assert.Equal(t, 1, len(report.AdjustmentRecommendations)) {
		return
	}

	adjustment := report.AdjustmentRecommendations[0]
	assert.InDelta(t, 13.5, adjustment.RecommendedRate, 1e-9)
	assert.InDelta(t, 10.0, adjustment.CurrentBidRate, 1e-9)
	assert.LessOrEqual(t, adjustment.Confidence, 1.0)
	assert.Greater(t, adjustment.Confidence, 0.0)
}

func TestGenerateBidFeedbackReport_NoAdjustmentOnTarget(t *testing.T) {
	store := &fakeBidStorage{orgID: "org-1"}
	store.costCodes = append(store.costCodes, bidCostCode("cc-1", "03-300", 10))
	store.entries = append(store.entries, bidEntry("cc-1", 65, 10.3))

	service := NewBidFeedbackService(store, DefaultConfig())
	report, err := service.GenerateBidFeedbackReport(context.Background(), "prj-1", "Test Project")

	assert.NoError(t, err)
	if !assert.NotNil(t, report) {
		return
	}
	assert.Equal(t, 1, len(report.KeyFindings))
	assert.Empty(t, report.AdjustmentRecommendations)
}

func TestGenerateBidFeedbackReport_SkipsCodesWithoutEntries(t *testing.T) {
	store := &fakeBidStorage{orgID: "org-1"}
	store.costCodes = append(store.costCodes,
		bidCostCode("cc-1", "03-300", 10),
		bidCostCode("cc-2", "09-250", 20),
	)
	store.entries = append(store.entries, bidEntry("cc-1", 65, 12))

	service := NewBidFeedbackService(store, DefaultConfig())
	report, err := service.GenerateBidFeedbackReport(context.Background(), "prj-1", "Test Project")

	assert.NoError(t, err)
	if !assert.NotNil(t, report) {
		return
	}
	assert.Equal(t, 1, len(report.KeyFindings))
	assert.Equal(t, "cc-1", report.KeyFindings[0].CostCodeID)

	// The report is persisted as generated.
	assert.Equal(t, 1, len(store.reports))
	assert.Equal(t, report.ID, store.reports[0].ID)
}

func TestGenerateBidFeedbackReport_MultipleEntriesAggregated(t *testing.T) {
	store := &fakeBidStorage{orgID: "org-1"}
	store.costCodes = append(store.costCodes, bidCostCode("cc-1", "03-300", 10))
	// 130 units over 24 hours total: 24*65/130 = 12/unit, +20%.
	store.entries = append(store.entries,
		bidEntry("cc-1", 65, 10),
		bidEntry("cc-1", 65, 14),
	)

	service := NewBidFeedbackService(store, DefaultConfig())
	report, err := service.GenerateBidFeedbackReport(context.Background(), "prj-1", "Test Project")

	assert.NoError(t, err)
	if !assert.NotNil(t, report) || !assert.Equal(t, 1, len(report.KeyFindings)) {
		return
	}
	finding := report.KeyFindings[0]
	assert.InDelta(t, 12.0, finding.ActualRate, 1e-9)
	assert.True(t, strings.Contains(finding.Recommendation, "CRITICAL"))
	assert.Equal(t, 2, finding.SampleSize)
}
