package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldops/internal/storage"
)

func (s *Storage) GetProjectOrg(ctx context.Context, projectID string) (string, error) {
	const op = "storage.mysql.GetProjectOrg"

	var orgID string
	err := s.db.QueryRowContext(ctx,
		`SELECT org_id FROM fo_projects WHERE id = ?`, projectID).Scan(&orgID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: project %s not found", op, projectID)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return orgID, nil
}

// UpsertUnitPrice keeps one price book row per (org, code): a newer
// observation from any project replaces the previous one.
func (s *Storage) UpsertUnitPrice(ctx context.Context, e storage.UnitPriceEntry) error {
	const op = "storage.mysql.UpsertUnitPrice"

	query := `
		INSERT INTO fo_unit_price_library
		(id, org_id, code, csi_division, activity, unit_of_measure, bid_rate, observed_rate,
		 recommended_rate, sample_size, source_project_id, source_project_name, updated_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			csi_division = VALUES(csi_division),
			activity = VALUES(activity),
			unit_of_measure = VALUES(unit_of_measure),
			bid_rate = VALUES(bid_rate),
			observed_rate = VALUES(observed_rate),
			recommended_rate = VALUES(recommended_rate),
			sample_size = VALUES(sample_size),
			source_project_id = VALUES(source_project_id),
			source_project_name = VALUES(source_project_name),
			updated_date = VALUES(updated_date)`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.OrgID, e.Code, e.CSIDivision, e.Activity, e.UnitOfMeasure, e.BidRate,
		e.ObservedRate, e.RecommendedRate, e.SampleSize, e.SourceProjectID,
		e.SourceProjectName, e.UpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) GetUnitPriceBook(ctx context.Context, orgID string) ([]storage.UnitPriceEntry, error) {
	const op = "storage.mysql.GetUnitPriceBook"

	query := `
		SELECT id, org_id, code, csi_division, activity, unit_of_measure, bid_rate, observed_rate,
		       recommended_rate, sample_size, source_project_id, source_project_name, updated_date
		FROM fo_unit_price_library
		WHERE org_id = ?
		ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var book []storage.UnitPriceEntry
	for rows.Next() {
		var e storage.UnitPriceEntry
		err := rows.Scan(
			&e.ID, &e.OrgID, &e.Code, &e.CSIDivision, &e.Activity, &e.UnitOfMeasure, &e.BidRate,
			&e.ObservedRate, &e.RecommendedRate, &e.SampleSize, &e.SourceProjectID,
			&e.SourceProjectName, &e.UpdatedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		book = append(book, e)
	}

	return book, rows.Err()
}
