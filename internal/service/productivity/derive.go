package productivity

import (
	"context"
	"fmt"
	"strings"

	"fieldops/internal/storage"
)

// DeriveProductivityEntries turns one daily log into persisted productivity
// entries, one per qualifying work item. Items with missing or non-positive
// quantity or crew hours are skipped outright. The entry pool is
// append-only: deriving the same log twice writes duplicates, callers are
// expected to clear the log's entries before a re-derive.
func (s *ProductivityService) DeriveProductivityEntries(ctx context.Context, dailyLog storage.DailyLog, projectID string) ([]storage.ProductivityEntry, error) {
	const op = "service.productivity.DeriveProductivityEntries"

	// Crew composition is log-wide: the field crews report head counts per
	// log, not per work item.
	crew := storage.CrewComposition{}
	overtime := false
	for _, m := range dailyLog.Manpower {
		crew.Journeymen += m.Journeymen
		crew.Apprentices += m.Apprentices
		crew.Foremen += m.Foremen
		if m.OvertimeHours > 0 {
			overtime = true
		}
	}

	entries := make([]storage.ProductivityEntry, 0, len(dailyLog.WorkPerformed))
	for _, item := range dailyLog.WorkPerformed {
		if item.Quantity == nil || *item.Quantity <= 0 {
			continue
		}
		if item.CrewHoursWorked == nil || *item.CrewHoursWorked <= 0 {
			continue
		}
		quantity := *item.Quantity
		laborHours := *item.CrewHoursWorked

		costCode, err := s.resolveCostCode(ctx, projectID, item)
		if err != nil {
			return nil, fmt.Errorf("%s: resolve cost code: %w", op, err)
		}

		entry := storage.ProductivityEntry{
			ID:                     storage.GenerateID("pe"),
			ProjectID:              projectID,
			DailyLogID:             dailyLog.ID,
			Date:                   dailyLog.Date,
			CostCodeID:             item.CostCodeID,
			CSIDivision:            item.CSIDivision,
			Activity:               item.Activity,
			TaktZone:               item.TaktZone,
			QuantityInstalled:      quantity,
			UnitOfMeasure:          item.UnitOfMeasure,
			CrewSize:               crew.Size(),
			CrewComposition:        crew,
			LaborHoursExpended:     laborHours,
			EquipmentHoursExpended: item.EquipmentHours,
			OvertimeHoursIncluded:  overtime,
			ReworkIncluded:         strings.Contains(strings.ToLower(item.Notes), "rework"),

			ComputedUnitRate:         quantity / laborHours,
			ComputedLaborCostPerUnit: laborHours * s.cfg.LaborRatePerHour / quantity,
		}

		if costCode != nil {
			entry.CostCodeID = costCode.ID
			if costCode.BudgetedLaborHoursPerUnit > 0 {
				index := costCode.BudgetedLaborHoursPerUnit / (laborHours / quantity)
				entry.ComputedProductivityIndex = &index
			}
		}

		if err := s.storage.InsertProductivityEntry(ctx, entry); err != nil {
			return nil, fmt.Errorf("%s: insert entry for %q: %w", op, item.Activity, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// resolveCostCode tries the item's cost code id first, then falls back to
// the project's (csi division, activity) pair. A nil result is not an
// error: the entry is created anyway, just without budget-derived fields.
func (s *ProductivityService) resolveCostCode(ctx context.Context, projectID string, item storage.WorkPerformedItem) (*storage.CostCode, error) {
	if item.CostCodeID != "" {
		costCode, err := s.storage.GetCostCodeByID(ctx, projectID, item.CostCodeID)
		if err != nil {
			return nil, err
		}
		if costCode != nil {
			return costCode, nil
		}
	}
	return s.storage.FindCostCodeByActivity(ctx, projectID, item.CSIDivision, item.Activity)
}
