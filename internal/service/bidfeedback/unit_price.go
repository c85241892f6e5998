package bidfeedback

import (
	"context"
	"fmt"
	"math"

	"fieldops/internal/storage"
)

// UpdateUnitPriceLibrary pushes a project's observed unit costs into the
// org-wide price book so the next estimate starts from field reality
// instead of the last bid. One row per cost code with entries; re-running
// for the same project overwrites its earlier contribution.
func (s *BidFeedbackService) UpdateUnitPriceLibrary(ctx context.Context, projectID, projectName string) ([]storage.UnitPriceEntry, error) {
	const op = "service.bidfeedback.UpdateUnitPriceLibrary"

	orgID, err := s.storage.GetProjectOrg(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: resolve org: %w", op, err)
	}

	costCodes, entriesByCode, err := s.fetchProjectData(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated := make([]storage.UnitPriceEntry, 0, len(costCodes))
	today := s.now().Format("2006-01-02")

	for _, code := range costCodes {
		codeEntries := entriesByCode[code.ID]
		if len(codeEntries) == 0 || code.BudgetedUnitPrice <= 0 {
			continue
		}

		actualRate, sampleSize := actualCostPerUnit(codeEntries, s.cfg.LaborRatePerHour)
		if sampleSize == 0 {
			continue
		}

		recommended := code.BudgetedUnitPrice
		variancePct := (actualRate - code.BudgetedUnitPrice) / code.BudgetedUnitPrice * 100
		if math.Abs(variancePct) > s.cfg.CautionVariancePct {
			recommended = blendRate(actualRate, code.BudgetedUnitPrice)
		}

		entry := storage.UnitPriceEntry{
			ID:                storage.GenerateID("up"),
			OrgID:             orgID,
			Code:              code.Code,
			CSIDivision:       code.CSIDivision,
			Activity:          code.Activity,
			UnitOfMeasure:     code.UnitOfMeasure,
			BidRate:           code.BudgetedUnitPrice,
			ObservedRate:      actualRate,
			RecommendedRate:   recommended,
			SampleSize:        sampleSize,
			SourceProjectID:   projectID,
			SourceProjectName: projectName,
			UpdatedDate:       today,
		}

		if err := s.storage.UpsertUnitPrice(ctx, entry); err != nil {
			return nil, fmt.Errorf("%s: upsert price for %s: %w", op, code.Code, err)
		}
		updated = append(updated, entry)
	}

	return updated, nil
}
