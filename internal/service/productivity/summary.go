package productivity

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"fieldops/internal/constants"
	"fieldops/internal/storage"
)

// GetProductivitySummary rolls up every active cost code of a project:
// current rate vs active baseline, latest trend, percent complete and an
// at-risk flag. Cost codes without entries are left out of the rollup.
func (s *ProductivityService) GetProductivitySummary(ctx context.Context, projectID string) (*storage.ProjectProductivitySummary, error) {
	const op = "service.productivity.GetProductivitySummary"

	var (
		costCodes []storage.CostCode
		entries   []storage.ProductivityEntry
		baselines []storage.ProductivityBaseline
		analytics []storage.ProductivityAnalytics
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		costCodes, err = s.storage.GetCostCodes(gCtx, projectID, true)
		if err != nil {
			return fmt.Errorf("cost codes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.storage.GetProductivityEntries(gCtx, storage.EntryFilter{ProjectID: projectID})
		if err != nil {
			return fmt.Errorf("entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		baselines, err = s.storage.GetBaselines(gCtx, projectID, "", true)
		if err != nil {
			return fmt.Errorf("baselines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		analytics, err = s.storage.GetAnalytics(gCtx, projectID, "")
		if err != nil {
			return fmt.Errorf("analytics: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entriesByCode := make(map[string][]storage.ProductivityEntry)
	for _, e := range entries {
		entriesByCode[e.CostCodeID] = append(entriesByCode[e.CostCodeID], e)
	}
	baselineByCode := make(map[string]storage.ProductivityBaseline)
	for _, b := range baselines {
		baselineByCode[b.CostCodeID] = b
	}
	// Analytics history is append-only; the last record per code is the
	// freshest one.
	latestAnalytics := make(map[string]storage.ProductivityAnalytics)
	for _, a := range analytics {
		latestAnalytics[a.CostCodeID] = a
	}

	summary := &storage.ProjectProductivitySummary{
		ProjectID: projectID,
		CostCodes: make([]storage.CostCodeSummary, 0, len(costCodes)),
	}

	var indexSum float64
	var indexCount int
	for _, code := range costCodes {
		codeEntries := entriesByCode[code.ID]
		if len(codeEntries) == 0 {
			continue
		}

		var totalQuantity, totalLaborHours float64
		for _, e := range codeEntries {
			totalQuantity += e.QuantityInstalled
			totalLaborHours += e.LaborHoursExpended
		}

		item := storage.CostCodeSummary{
			CostCodeID:     code.ID,
			Code:           code.Code,
			Activity:       code.Activity,
			UnitOfMeasure:  code.UnitOfMeasure,
			TrendDirection: storage.TrendStable,
			EntryCount:     len(codeEntries),
		}
		if totalLaborHours > 0 {
			item.CurrentUnitRate = totalQuantity / totalLaborHours
		}

		if b, ok := baselineByCode[code.ID]; ok {
			rate := b.BaselineUnitRate
			item.BaselineUnitRate = &rate
			if rate > 0 {
				index := item.CurrentUnitRate / rate
				item.ProductivityIndex = &index
				item.IsAtRisk = index < s.cfg.AtRiskIndex
				indexSum += index
				indexCount++
			}
		}

		if a, ok := latestAnalytics[code.ID]; ok {
			item.TrendDirection = a.TrendDirection
		}

		if code.BudgetedQuantity > 0 {
			item.PercentComplete = math.Min(100, totalQuantity/code.BudgetedQuantity*100)
		}
		item.DaysBehind = daysBehind(code.BudgetedQuantity, totalQuantity, len(codeEntries))

		if item.IsAtRisk {
			summary.AtRiskCount++
		}
		summary.CostCodes = append(summary.CostCodes, item)
	}

	if indexCount > 0 {
		overall := indexSum / float64(indexCount)
		summary.OverallProductivityIndex = &overall
	}

	return summary, nil
}

// daysBehind projects remaining quantity under the planned 30-day rate and
// the observed per-entry rate, same heuristic as the analytics schedule
// variance, clamped at zero.
func daysBehind(budgetedQuantity, totalQuantity float64, entryCount int) float64 {
	remaining := math.Max(0, budgetedQuantity-totalQuantity)
	plannedPerDay := budgetedQuantity / constants.PlannedDurationDays
	actualPerDay := totalQuantity / float64(entryCount)
	if plannedPerDay <= 0 || actualPerDay <= 0 {
		return 0
	}
	return math.Max(0, remaining/actualPerDay-remaining/plannedPerDay)
}
