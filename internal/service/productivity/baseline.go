package productivity

import (
	"context"
	"fmt"
	"math"

	"fieldops/internal/constants"
	"fieldops/internal/storage"
)

// EstablishBaseline freezes a statistical snapshot of a cost code's
// productivity over [startDate, endDate]. Returns (nil, nil) when fewer
// than MinBaselineDataPoints entries fall in the range — not enough data is
// a normal outcome, not an error.
//
// Deactivating the previous baseline and inserting the new one are two
// separate writes, not a transaction. With a single operator per project
// that race is acceptable; revisit if baselines get scripted.
func (s *ProductivityService) EstablishBaseline(ctx context.Context, projectID, costCodeID, startDate, endDate string) (*storage.ProductivityBaseline, error) {
	const op = "service.productivity.EstablishBaseline"

	entries, err := s.storage.GetProductivityEntries(ctx, storage.EntryFilter{
		ProjectID:  projectID,
		CostCodeID: costCodeID,
		DateFrom:   startDate,
		DateTo:     endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: fetch entries: %w", op, err)
	}

	if len(entries) < s.cfg.MinBaselineDataPoints {
		return nil, nil
	}

	var rateSum, crewSum float64
	var journeymen, apprentices, foremen float64
	for _, e := range entries {
		rateSum += e.ComputedUnitRate
		crewSum += float64(e.CrewSize)
		journeymen += float64(e.CrewComposition.Journeymen)
		apprentices += float64(e.CrewComposition.Apprentices)
		foremen += float64(e.CrewComposition.Foremen)
	}
	n := float64(len(entries))

	baseline := storage.ProductivityBaseline{
		ID:                  storage.GenerateID("bl"),
		ProjectID:           projectID,
		CostCodeID:          costCodeID,
		BaselinePeriodStart: startDate,
		BaselinePeriodEnd:   endDate,
		BaselineUnitRate:    rateSum / n,
		BaselineCrewSize:    crewSum / n,
		// Role means are rounded independently, so the mix can drift off
		// the mean crew size by a head. Estimators asked for it that way.
		BaselineCrewMix: storage.CrewComposition{
			Journeymen:  int(math.Round(journeymen / n)),
			Apprentices: int(math.Round(apprentices / n)),
			Foremen:     int(math.Round(foremen / n)),
		},
		SampleSize: len(entries),
		Confidence: constants.BaselineConfidence(len(entries)),
		Source:     storage.BaselineSourceEarlyPeriod,
		IsActive:   true,
	}

	previous, err := s.storage.GetBaselines(ctx, projectID, costCodeID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch active baselines: %w", op, err)
	}
	for _, b := range previous {
		if err := s.storage.DeactivateBaseline(ctx, b.ID); err != nil {
			return nil, fmt.Errorf("%s: deactivate baseline %s: %w", op, b.ID, err)
		}
	}

	if err := s.storage.InsertBaseline(ctx, baseline); err != nil {
		return nil, fmt.Errorf("%s: insert baseline: %w", op, err)
	}

	return &baseline, nil
}
