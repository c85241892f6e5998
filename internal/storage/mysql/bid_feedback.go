package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"fieldops/internal/storage"
)

// Findings and recommendations are stored as JSON blobs: they are read back
// whole for the report screen, never queried by field.
func (s *Storage) InsertBidFeedbackReport(ctx context.Context, r storage.BidFeedbackReport) error {
	const op = "storage.mysql.InsertBidFeedbackReport"

	findings, err := json.Marshal(r.KeyFindings)
	if err != nil {
		return fmt.Errorf("%s: marshal findings: %w", op, err)
	}
	adjustments, err := json.Marshal(r.AdjustmentRecommendations)
	if err != nil {
		return fmt.Errorf("%s: marshal adjustments: %w", op, err)
	}

	query := `
		INSERT INTO fo_bid_feedback_reports
		(id, project_id, project_name, generated_date, key_findings, adjustment_recommendations)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		r.ID, r.ProjectID, r.ProjectName, r.GeneratedDate, string(findings), string(adjustments))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) GetBidFeedbackReports(ctx context.Context, projectID string) ([]storage.BidFeedbackReport, error) {
	const op = "storage.mysql.GetBidFeedbackReports"

	query := `
		SELECT id, project_id, project_name, generated_date, key_findings, adjustment_recommendations
		FROM fo_bid_feedback_reports
		WHERE project_id = ?
		ORDER BY generated_date DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var reports []storage.BidFeedbackReport
	for rows.Next() {
		var r storage.BidFeedbackReport
		var findings, adjustments string

		if err := rows.Scan(&r.ID, &r.ProjectID, &r.ProjectName, &r.GeneratedDate, &findings, &adjustments); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if err := json.Unmarshal([]byte(findings), &r.KeyFindings); err != nil {
			return nil, fmt.Errorf("%s: unmarshal findings for %s: %w", op, r.ID, err)
		}
		if err := json.Unmarshal([]byte(adjustments), &r.AdjustmentRecommendations); err != nil {
			return nil, fmt.Errorf("%s: unmarshal adjustments for %s: %w", op, r.ID, err)
		}
		reports = append(reports, r)
	}

	return reports, rows.Err()
}
