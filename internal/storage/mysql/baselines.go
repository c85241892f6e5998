package mysql

import (
	"context"
	"fmt"

	"fieldops/internal/storage"
)

func (s *Storage) InsertBaseline(ctx context.Context, b storage.ProductivityBaseline) error {
	const op = "storage.mysql.InsertBaseline"

	query := `
		INSERT INTO fo_productivity_baselines
		(id, project_id, cost_code_id, period_start, period_end, baseline_unit_rate,
		 baseline_crew_size, mix_journeymen, mix_apprentices, mix_foremen,
		 sample_size, confidence, source, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.ProjectID, b.CostCodeID, b.BaselinePeriodStart, b.BaselinePeriodEnd,
		b.BaselineUnitRate, b.BaselineCrewSize, b.BaselineCrewMix.Journeymen,
		b.BaselineCrewMix.Apprentices, b.BaselineCrewMix.Foremen,
		b.SampleSize, b.Confidence, b.Source, b.IsActive,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) DeactivateBaseline(ctx context.Context, id string) error {
	const op = "storage.mysql.DeactivateBaseline"

	_, err := s.db.ExecContext(ctx,
		`UPDATE fo_productivity_baselines SET is_active = FALSE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetBaselines lists baselines for a project, optionally narrowed to one
// cost code and/or the active ones.
func (s *Storage) GetBaselines(ctx context.Context, projectID, costCodeID string, activeOnly bool) ([]storage.ProductivityBaseline, error) {
	const op = "storage.mysql.GetBaselines"

	query := `
		SELECT id, project_id, cost_code_id, period_start, period_end, baseline_unit_rate,
		       baseline_crew_size, mix_journeymen, mix_apprentices, mix_foremen,
		       sample_size, confidence, source, is_active
		FROM fo_productivity_baselines
		WHERE project_id = ?`
	args := []any{projectID}

	if costCodeID != "" {
		query += ` AND cost_code_id = ?`
		args = append(args, costCodeID)
	}
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY period_end ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var baselines []storage.ProductivityBaseline
	for rows.Next() {
		var b storage.ProductivityBaseline
		err := rows.Scan(
			&b.ID, &b.ProjectID, &b.CostCodeID, &b.BaselinePeriodStart, &b.BaselinePeriodEnd,
			&b.BaselineUnitRate, &b.BaselineCrewSize, &b.BaselineCrewMix.Journeymen,
			&b.BaselineCrewMix.Apprentices, &b.BaselineCrewMix.Foremen,
			&b.SampleSize, &b.Confidence, &b.Source, &b.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		baselines = append(baselines, b)
	}

	return baselines, rows.Err()
}
