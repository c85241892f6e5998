package productivity

import (
	"context"
	"fmt"
	"math"

	"fieldops/internal/constants"
	"fieldops/internal/storage"
)

// ComputeAnalytics builds a fresh trend/variance report for one cost code
// over the requested period window and appends it to the analytics history.
// Returns (nil, nil) when the cost code has no entries at all or none land
// inside the period.
func (s *ProductivityService) ComputeAnalytics(ctx context.Context, projectID, costCodeID string, periodType storage.PeriodType) (*storage.ProductivityAnalytics, error) {
	const op = "service.productivity.ComputeAnalytics"

	entries, err := s.storage.GetProductivityEntries(ctx, storage.EntryFilter{
		ProjectID:  projectID,
		CostCodeID: costCodeID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: fetch entries: %w", op, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	periodStart, periodEnd := s.periodBounds(periodType)
	period := make([]storage.ProductivityEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date >= periodStart && e.Date <= periodEnd {
			period = append(period, e)
		}
	}
	if len(period) == 0 {
		return nil, nil
	}

	rates := make([]float64, len(period))
	for i, e := range period {
		rates[i] = e.ComputedUnitRate
	}

	avg := mean(rates)
	peak, low := rates[0], rates[0]
	for _, r := range rates[1:] {
		peak = math.Max(peak, r)
		low = math.Min(low, r)
	}

	var varianceSum float64
	for _, r := range rates {
		varianceSum += (r - avg) * (r - avg)
	}
	stdDev := math.Sqrt(varianceSum / float64(len(rates)))

	direction, magnitude := trend(rates)

	var totalQuantity, totalLaborHours float64
	var equipmentHours float64
	haveEquipment := false
	for _, e := range period {
		totalQuantity += e.QuantityInstalled
		totalLaborHours += e.LaborHoursExpended
		if e.EquipmentHoursExpended != nil {
			equipmentHours += *e.EquipmentHoursExpended
			haveEquipment = true
		}
	}

	analytics := storage.ProductivityAnalytics{
		ID:                     storage.GenerateID("pa"),
		ProjectID:              projectID,
		CostCodeID:             costCodeID,
		PeriodType:             periodType,
		PeriodStart:            periodStart,
		PeriodEnd:              periodEnd,
		AverageUnitRate:        avg,
		PeakUnitRate:           peak,
		LowUnitRate:            low,
		StandardDeviation:      stdDev,
		TrendDirection:         direction,
		TrendMagnitude:         magnitude,
		TotalQuantityInstalled: totalQuantity,
		TotalLaborHours:        totalLaborHours,
	}
	if haveEquipment {
		analytics.TotalEquipmentHours = &equipmentHours
	}

	costCode, err := s.storage.GetCostCodeByID(ctx, projectID, costCodeID)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch cost code: %w", op, err)
	}
	if costCode != nil {
		applyBudgetVariance(&analytics, costCode, s.cfg.LaborRatePerHour, len(period))
	}

	if err := s.storage.InsertAnalytics(ctx, analytics); err != nil {
		return nil, fmt.Errorf("%s: insert analytics: %w", op, err)
	}

	return &analytics, nil
}

// periodBounds maps the period type onto an inclusive ISO date range ending
// today. Monthly is a calendar month back, not 30 days.
func (s *ProductivityService) periodBounds(periodType storage.PeriodType) (string, string) {
	now := s.now()
	today := now.Format(dateLayout)

	switch periodType {
	case storage.PeriodDaily:
		return today, today
	case storage.PeriodWeekly:
		return now.AddDate(0, 0, -7).Format(dateLayout), today
	default:
		return now.AddDate(0, -1, 0).Format(dateLayout), today
	}
}

// trend compares the opening five samples against the closing five. Below
// ten samples the signal is too thin to call either way.
func trend(rates []float64) (storage.TrendDirection, float64) {
	if len(rates) < 10 {
		return storage.TrendStable, 0
	}

	firstAvg := mean(rates[:5])
	lastAvg := mean(rates[len(rates)-5:])
	if firstAvg == 0 {
		return storage.TrendStable, 0
	}

	change := (lastAvg - firstAvg) / firstAvg
	switch {
	case change > constants.TrendThreshold:
		return storage.TrendImproving, math.Abs(change)
	case change < -constants.TrendThreshold:
		return storage.TrendDeclining, math.Abs(change)
	default:
		return storage.TrendStable, math.Abs(change)
	}
}

// applyBudgetVariance fills the planned-vs-actual fields. The schedule
// variance keeps the estimating team's original arithmetic: a flat
// budgeted-quantity-over-30-days planned rate against the observed
// per-entry rate. It mixes units loosely, but its output is what the
// estimators calibrated their thresholds against, so it stays as is.
func applyBudgetVariance(a *storage.ProductivityAnalytics, costCode *storage.CostCode, laborRate float64, entryCount int) {
	if costCode.BudgetedLaborHoursPerUnit > 0 {
		budgetedUnitRate := 1 / costCode.BudgetedLaborHoursPerUnit
		a.PlannedVsActualVariance = (a.AverageUnitRate - budgetedUnitRate) / budgetedUnitRate * 100
	}

	if a.TotalQuantityInstalled > 0 {
		actualCostPerUnit := a.TotalLaborHours * laborRate / a.TotalQuantityInstalled
		a.CostVariance = (actualCostPerUnit - costCode.BudgetedUnitPrice) * a.TotalQuantityInstalled
	}

	remaining := math.Max(0, costCode.BudgetedQuantity-a.TotalQuantityInstalled)
	plannedPerDay := costCode.BudgetedQuantity / constants.PlannedDurationDays
	actualPerDay := a.TotalQuantityInstalled / float64(entryCount)
	if plannedPerDay > 0 && actualPerDay > 0 {
		a.ScheduleVariance = remaining/actualPerDay - remaining/plannedPerDay
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
