package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"fieldops/internal/storage"
)

func (s *Storage) InsertProductivityEntry(ctx context.Context, e storage.ProductivityEntry) error {
	const op = "storage.mysql.InsertProductivityEntry"

	query := `
		INSERT INTO fo_productivity_entries
		(id, project_id, daily_log_id, entry_date, cost_code_id, csi_division, activity, takt_zone,
		 quantity_installed, unit_of_measure, crew_size, crew_journeymen, crew_apprentices, crew_foremen,
		 labor_hours_expended, equipment_hours_expended, overtime_hours_included, rework_included,
		 computed_unit_rate, computed_productivity_index, computed_labor_cost_per_unit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var equipmentHours sql.NullFloat64
	if e.EquipmentHoursExpended != nil {
		equipmentHours = sql.NullFloat64{Float64: *e.EquipmentHoursExpended, Valid: true}
	}
	var productivityIndex sql.NullFloat64
	if e.ComputedProductivityIndex != nil {
		productivityIndex = sql.NullFloat64{Float64: *e.ComputedProductivityIndex, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.ProjectID, e.DailyLogID, e.Date, e.CostCodeID, e.CSIDivision, e.Activity, e.TaktZone,
		e.QuantityInstalled, e.UnitOfMeasure, e.CrewSize, e.CrewComposition.Journeymen,
		e.CrewComposition.Apprentices, e.CrewComposition.Foremen,
		e.LaborHoursExpended, equipmentHours, e.OvertimeHoursIncluded, e.ReworkIncluded,
		e.ComputedUnitRate, productivityIndex, e.ComputedLaborCostPerUnit,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) GetProductivityEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.ProductivityEntry, error) {
	const op = "storage.mysql.GetProductivityEntries"

	query := `
		SELECT id, project_id, daily_log_id, entry_date, cost_code_id, csi_division, activity, takt_zone,
		       quantity_installed, unit_of_measure, crew_size, crew_journeymen, crew_apprentices, crew_foremen,
		       labor_hours_expended, equipment_hours_expended, overtime_hours_included, rework_included,
		       computed_unit_rate, computed_productivity_index, computed_labor_cost_per_unit
		FROM fo_productivity_entries
		WHERE project_id = ?`
	args := []any{filter.ProjectID}

	if filter.CostCodeID != "" {
		query += ` AND cost_code_id = ?`
		args = append(args, filter.CostCodeID)
	}
	if filter.DateFrom != "" {
		query += ` AND entry_date >= ?`
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		query += ` AND entry_date <= ?`
		args = append(args, filter.DateTo)
	}
	query += ` ORDER BY entry_date ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.ProductivityEntry
	for rows.Next() {
		var e storage.ProductivityEntry
		var equipmentHours, productivityIndex sql.NullFloat64

		err := rows.Scan(
			&e.ID, &e.ProjectID, &e.DailyLogID, &e.Date, &e.CostCodeID, &e.CSIDivision, &e.Activity, &e.TaktZone,
			&e.QuantityInstalled, &e.UnitOfMeasure, &e.CrewSize, &e.CrewComposition.Journeymen,
			&e.CrewComposition.Apprentices, &e.CrewComposition.Foremen,
			&e.LaborHoursExpended, &equipmentHours, &e.OvertimeHoursIncluded, &e.ReworkIncluded,
			&e.ComputedUnitRate, &productivityIndex, &e.ComputedLaborCostPerUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if equipmentHours.Valid {
			v := equipmentHours.Float64
			e.EquipmentHoursExpended = &v
		}
		if productivityIndex.Valid {
			v := productivityIndex.Float64
			e.ComputedProductivityIndex = &v
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
