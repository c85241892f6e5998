package bidfeedback

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"fieldops/internal/constants"
	"fieldops/internal/storage"
)

// GenerateBidFeedbackReport compares the as-bid unit price of every cost
// code in the project against the actual labor cost per unit observed in
// the field, classifies the variance and proposes adjusted rates where the
// drift is past the caution threshold. The report is persisted and
// returned.
func (s *BidFeedbackService) GenerateBidFeedbackReport(ctx context.Context, projectID, projectName string) (*storage.BidFeedbackReport, error) {
	const op = "service.bidfeedback.GenerateBidFeedbackReport"

	costCodes, entriesByCode, err := s.fetchProjectData(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report := storage.BidFeedbackReport{
		ID:            storage.GenerateID("bfr"),
		ProjectID:     projectID,
		ProjectName:   projectName,
		GeneratedDate: s.now().Format("2006-01-02"),
	}

	for _, code := range costCodes {
		codeEntries := entriesByCode[code.ID]
		if len(codeEntries) == 0 || code.BudgetedUnitPrice <= 0 {
			continue
		}

		actualRate, sampleSize := actualCostPerUnit(codeEntries, s.cfg.LaborRatePerHour)
		if sampleSize == 0 {
			continue
		}
		variancePct := (actualRate - code.BudgetedUnitPrice) / code.BudgetedUnitPrice * 100

		report.KeyFindings = append(report.KeyFindings, storage.KeyFinding{
			CostCodeID:     code.ID,
			Code:           code.Code,
			Activity:       code.Activity,
			BudgetedRate:   code.BudgetedUnitPrice,
			ActualRate:     actualRate,
			VariancePct:    variancePct,
			SampleSize:     sampleSize,
			Recommendation: s.classify(code, actualRate, variancePct),
		})

		if math.Abs(variancePct) > s.cfg.CautionVariancePct {
			report.AdjustmentRecommendations = append(report.AdjustmentRecommendations, storage.AdjustmentRecommendation{
				CostCodeID:      code.ID,
				Code:            code.Code,
				Activity:        code.Activity,
				UnitOfMeasure:   code.UnitOfMeasure,
				CurrentBidRate:  code.BudgetedUnitPrice,
				RecommendedRate: blendRate(actualRate, code.BudgetedUnitPrice),
				Confidence:      constants.BaselineConfidence(sampleSize),
				Rationale: fmt.Sprintf("Observed %.2f/%s over %d entries against a bid of %.2f/%s.",
					actualRate, code.UnitOfMeasure, sampleSize, code.BudgetedUnitPrice, code.UnitOfMeasure),
			})
		}
	}

	if err := s.storage.InsertBidFeedbackReport(ctx, report); err != nil {
		return nil, fmt.Errorf("%s: insert report: %w", op, err)
	}

	return &report, nil
}

func (s *BidFeedbackService) fetchProjectData(ctx context.Context, projectID string) ([]storage.CostCode, map[string][]storage.ProductivityEntry, error) {
	var (
		costCodes []storage.CostCode
		entries   []storage.ProductivityEntry
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		costCodes, err = s.storage.GetCostCodes(gCtx, projectID, false)
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
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	entriesByCode := make(map[string][]storage.ProductivityEntry)
	for _, e := range entries {
		entriesByCode[e.CostCodeID] = append(entriesByCode[e.CostCodeID], e)
	}
	return costCodes, entriesByCode, nil
}

// actualCostPerUnit aggregates labor cost per installed unit across a cost
// code's entries.
func actualCostPerUnit(entries []storage.ProductivityEntry, laborRate float64) (float64, int) {
	var totalQuantity, totalLaborHours float64
	for _, e := range entries {
		totalQuantity += e.QuantityInstalled
		totalLaborHours += e.LaborHoursExpended
	}
	if totalQuantity <= 0 {
		return 0, 0
	}
	return totalLaborHours * laborRate / totalQuantity, len(entries)
}

// blendRate weights the observed rate over the bid 70/30: the field data is
// trusted more than the original estimate, but one project never rewrites
// the book outright.
func blendRate(actualRate, bidRate float64) float64 {
	return actualRate*0.7 + bidRate*0.3
}

func (s *BidFeedbackService) classify(code storage.CostCode, actualRate, variancePct float64) string {
	switch {
	case variancePct > s.cfg.CriticalVariancePct:
		return fmt.Sprintf("CRITICAL: %s is running %.1f%% over bid (%.2f vs %.2f per %s). Rebid this activity before the next estimate and review crew or method.",
			code.Activity, variancePct, actualRate, code.BudgetedUnitPrice, code.UnitOfMeasure)
	case variancePct > s.cfg.CautionVariancePct:
		return fmt.Sprintf("CAUTION: %s is %.1f%% over bid. Hold the rate under watch before committing it again.",
			code.Activity, variancePct)
	case variancePct >= -s.cfg.CautionVariancePct:
		return fmt.Sprintf("ON TARGET: %s is within %.1f%% of bid. Keep the current rate.",
			code.Activity, math.Abs(variancePct))
	default:
		return fmt.Sprintf("OPPORTUNITY: %s is running %.1f%% under bid. Consider sharpening the rate to win more work.",
			code.Activity, math.Abs(variancePct))
	}
}
