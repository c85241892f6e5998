package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldops/internal/storage"
)

const costCodeColumns = `id, project_id, code, csi_division, activity, unit_of_measure,
		budgeted_quantity, budgeted_unit_price, budgeted_labor_hours_per_unit,
		budgeted_crew_size, budgeted_journeymen, budgeted_apprentices, budgeted_foremen, is_active`

func scanCostCode(row interface{ Scan(...any) error }) (*storage.CostCode, error) {
	var c storage.CostCode
	err := row.Scan(
		&c.ID, &c.ProjectID, &c.Code, &c.CSIDivision, &c.Activity, &c.UnitOfMeasure,
		&c.BudgetedQuantity, &c.BudgetedUnitPrice, &c.BudgetedLaborHoursPerUnit,
		&c.BudgetedCrewSize, &c.BudgetedCrewMix.Journeymen, &c.BudgetedCrewMix.Apprentices,
		&c.BudgetedCrewMix.Foremen, &c.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCostCodeByID returns (nil, nil) when the id is unknown: an unresolved
// cost code degrades the derived entry, it does not fail the request.
func (s *Storage) GetCostCodeByID(ctx context.Context, projectID, costCodeID string) (*storage.CostCode, error) {
	const op = "storage.mysql.GetCostCodeByID"

	query := `SELECT ` + costCodeColumns + ` FROM fo_cost_codes WHERE project_id = ? AND id = ?`

	costCode, err := scanCostCode(s.db.QueryRowContext(ctx, query, projectID, costCodeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return costCode, nil
}

// FindCostCodeByActivity is the fallback lookup for work items that carry
// no usable cost code id.
func (s *Storage) FindCostCodeByActivity(ctx context.Context, projectID, csiDivision, activity string) (*storage.CostCode, error) {
	const op = "storage.mysql.FindCostCodeByActivity"

	query := `SELECT ` + costCodeColumns + `
		FROM fo_cost_codes
		WHERE project_id = ? AND csi_division = ? AND activity = ?
		LIMIT 1`

	costCode, err := scanCostCode(s.db.QueryRowContext(ctx, query, projectID, csiDivision, activity))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return costCode, nil
}

func (s *Storage) GetCostCodes(ctx context.Context, projectID string, activeOnly bool) ([]storage.CostCode, error) {
	const op = "storage.mysql.GetCostCodes"

	query := `SELECT ` + costCodeColumns + ` FROM fo_cost_codes WHERE project_id = ?`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var costCodes []storage.CostCode
	for rows.Next() {
		c, err := scanCostCode(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		costCodes = append(costCodes, *c)
	}

	return costCodes, rows.Err()
}

// SaveCostCode inserts or replaces a reference record. Admin surface only,
// the engine never writes here.
func (s *Storage) SaveCostCode(ctx context.Context, c storage.CostCode) error {
	const op = "storage.mysql.SaveCostCode"

	query := `
		INSERT INTO fo_cost_codes
		(id, project_id, code, csi_division, activity, unit_of_measure,
		 budgeted_quantity, budgeted_unit_price, budgeted_labor_hours_per_unit,
		 budgeted_crew_size, budgeted_journeymen, budgeted_apprentices, budgeted_foremen, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			code = VALUES(code),
			csi_division = VALUES(csi_division),
			activity = VALUES(activity),
			unit_of_measure = VALUES(unit_of_measure),
			budgeted_quantity = VALUES(budgeted_quantity),
			budgeted_unit_price = VALUES(budgeted_unit_price),
			budgeted_labor_hours_per_unit = VALUES(budgeted_labor_hours_per_unit),
			budgeted_crew_size = VALUES(budgeted_crew_size),
			budgeted_journeymen = VALUES(budgeted_journeymen),
			budgeted_apprentices = VALUES(budgeted_apprentices),
			budgeted_foremen = VALUES(budgeted_foremen),
			is_active = VALUES(is_active)`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.ProjectID, c.Code, c.CSIDivision, c.Activity, c.UnitOfMeasure,
		c.BudgetedQuantity, c.BudgetedUnitPrice, c.BudgetedLaborHoursPerUnit,
		c.BudgetedCrewSize, c.BudgetedCrewMix.Journeymen, c.BudgetedCrewMix.Apprentices,
		c.BudgetedCrewMix.Foremen, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
