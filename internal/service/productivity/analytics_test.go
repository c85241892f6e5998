package productivity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldops/internal/storage"
)

// fixedNow pins "today" so period slicing is deterministic.
var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func analyticsService(store *fakeStorage) *ProductivityService {
	service := NewProductivityService(store, DefaultConfig())
	service.now = func() time.Time { return fixedNow }
	return service
}

func weeklyEntry(i int, rate float64) storage.ProductivityEntry {
	return storage.ProductivityEntry{
		ID:                 fmt.Sprintf("pe-%d", i),
		ProjectID:          "prj-1",
		CostCodeID:         "cc-1",
		Date:               "2025-03-12",
		QuantityInstalled:  rate * 10,
		LaborHoursExpended: 10,
		ComputedUnitRate:   rate,
	}
}

func TestComputeAnalytics_NoEntries(t *testing.T) {
	store := &fakeStorage{}
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	assert.Nil(t, analytics)
	assert.Empty(t, store.analytics)
}

func TestComputeAnalytics_NothingInPeriod(t *testing.T) {
	store := &fakeStorage{}
	e := weeklyEntry(1, 2.0)
	e.Date = "2025-01-05" // months before the window
	store.entries = append(store.entries, e)
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	assert.Nil(t, analytics)
}

func TestComputeAnalytics_UnitRateStatistics(t *testing.T) {
	store := &fakeStorage{}
	store.entries = append(store.entries, weeklyEntry(1, 2.0), weeklyEntry(2, 4.0))
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	if !assert.NotNil(t, analytics) {
		return
	}
	assert.InDelta(t, 3.0, analytics.AverageUnitRate, 1e-9)
	assert.InDelta(t, 4.0, analytics.PeakUnitRate, 1e-9)
	assert.InDelta(t, 2.0, analytics.LowUnitRate, 1e-9)
	// Population std-dev of {2,4} is 1.
	assert.InDelta(t, 1.0, analytics.StandardDeviation, 1e-9)

	assert.InDelta(t, 60.0, analytics.TotalQuantityInstalled, 1e-9)
	assert.InDelta(t, 20.0, analytics.TotalLaborHours, 1e-9)
	assert.Nil(t, analytics.TotalEquipmentHours)

	// Fewer than ten samples: no trend call.
	assert.Equal(t, storage.TrendStable, analytics.TrendDirection)
	assert.Equal(t, 0.0, analytics.TrendMagnitude)

	// Persisted.
	assert.Equal(t, 1, len(store.analytics))
}

func TestComputeAnalytics_TrendImproving(t *testing.T) {
	store := &fakeStorage{}
	// First five at 1.0, last five at 1.2: +20% change.
	for i := 0; i < 5; i++ {
		store.entries = append(store.entries, weeklyEntry(i, 1.0))
	}
	for i := 5; i < 10; i++ {
		store.entries = append(store.entries, weeklyEntry(i, 1.2))
	}
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	if !assert.NotNil(t, analytics) {
		return
	}
	assert.Equal(t, storage.TrendImproving, analytics.TrendDirection)
	assert.InDelta(t, 0.2, analytics.TrendMagnitude, 1e-9)
}

func TestComputeAnalytics_TrendDeclining(t *testing.T) {
	store := &fakeStorage{}
	for i := 0; i < 5; i++ {
		store.entries = append(store.entries, weeklyEntry(i, 2.0))
	}
	for i := 5; i < 10; i++ {
		store.entries = append(store.entries, weeklyEntry(i, 1.5))
	}
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	if !assert.NotNil(t, analytics) {
		return
	}
	assert.Equal(t, storage.TrendDeclining, analytics.TrendDirection)
	assert.InDelta(t, 0.25, analytics.TrendMagnitude, 1e-9)
}

func TestComputeAnalytics_TrendStableWithinBounds(t *testing.T) {
	store := &fakeStorage{}
	// +4% sits inside the ±5% band.
	for i := 0; i < 5; i++ {
		store.entries = append(store.entries, weeklyEntry(i, 1.0))
	}
	for i := 5; i < 10; i++ {
		store.entries = append(store.entries, weeklyEntry(i, 1.04))
	}
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	if !assert.NotNil(t, analytics) {
		return
	}
	assert.Equal(t, storage.TrendStable, analytics.TrendDirection)
	assert.InDelta(t, 0.04, analytics.TrendMagnitude, 1e-9)
}

func TestComputeAnalytics_PeriodSlicing(t *testing.T) {
	store := &fakeStorage{}
	today := weeklyEntry(1, 2.0)
	today.Date = "2025-03-15"
	lastWeek := weeklyEntry(2, 4.0)
	lastWeek.Date = "2025-03-09"
	lastMonth := weeklyEntry(3, 6.0)
	lastMonth.Date = "2025-02-20"
	store.entries = append(store.entries, today, lastWeek, lastMonth)
	service := analyticsService(store)

	daily, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodDaily)
	assert.NoError(t, err)
	if assert.NotNil(t, daily) {
		assert.InDelta(t, 2.0, daily.AverageUnitRate, 1e-9)
		assert.Equal(t, "2025-03-15", daily.PeriodStart)
	}

	weekly, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)
	assert.NoError(t, err)
	if assert.NotNil(t, weekly) {
		assert.InDelta(t, 3.0, weekly.AverageUnitRate, 1e-9)
		assert.Equal(t, "2025-03-08", weekly.PeriodStart)
	}

	monthly, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodMonthly)
	assert.NoError(t, err)
	if assert.NotNil(t, monthly) {
		assert.InDelta(t, 4.0, monthly.AverageUnitRate, 1e-9)
		assert.Equal(t, "2025-02-15", monthly.PeriodStart)
	}
}

func TestComputeAnalytics_EquipmentHours(t *testing.T) {
	store := &fakeStorage{}
	withEquipment := weeklyEntry(1, 2.0)
	withEquipment.EquipmentHoursExpended = floatPtr(3.5)
	without := weeklyEntry(2, 2.0)
	store.entries = append(store.entries, withEquipment, without)
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	if assert.NotNil(t, analytics) && assert.NotNil(t, analytics.TotalEquipmentHours) {
		assert.InDelta(t, 3.5, *analytics.TotalEquipmentHours, 1e-9)
	}
}

func TestComputeAnalytics_BudgetVariance(t *testing.T) {
	store := &fakeStorage{}
	store.costCodes = append(store.costCodes, storage.CostCode{
		ID:                        "cc-1",
		ProjectID:                 "prj-1",
		BudgetedQuantity:          600,
		BudgetedUnitPrice:         30,
		BudgetedLaborHoursPerUnit: 0.5,
	})
	// Two entries, 60 units over 20 hours: average rate 3.0 against a
	// budgeted rate of 2.0 (+50%). Actual cost/unit 20*65/60 = 21.67.
	store.entries = append(store.entries, weeklyEntry(1, 2.0), weeklyEntry(2, 4.0))
	service := analyticsService(store)

	analytics, err := service.ComputeAnalytics(context.Background(), "prj-1", "cc-1", storage.PeriodWeekly)

	assert.NoError(t, err)
	if !assert.NotNil(t, analytics) {
		return
	}
	assert.InDelta(t, 50.0, analytics.PlannedVsActualVariance, 1e-9)

	actualCostPerUnit := 20.0 * 65.0 / 60.0
	assert.InDelta(t, (actualCostPerUnit-30.0)*60.0, analytics.CostVariance, 1e-9)

	// Schedule heuristic: remaining 540, planned 20/day, actual 30/entry.
	assert.InDelta(t, 540.0/30.0-540.0/20.0, analytics.ScheduleVariance, 1e-9)
}
