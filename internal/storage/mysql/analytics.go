package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"fieldops/internal/storage"
)

func (s *Storage) InsertAnalytics(ctx context.Context, a storage.ProductivityAnalytics) error {
	const op = "storage.mysql.InsertAnalytics"

	impactFactors, err := json.Marshal(a.ImpactFactors)
	if err != nil {
		return fmt.Errorf("%s: marshal impact factors: %w", op, err)
	}

	var equipmentHours sql.NullFloat64
	if a.TotalEquipmentHours != nil {
		equipmentHours = sql.NullFloat64{Float64: *a.TotalEquipmentHours, Valid: true}
	}

	query := `
		INSERT INTO fo_productivity_analytics
		(id, project_id, cost_code_id, period_type, period_start, period_end,
		 average_unit_rate, peak_unit_rate, low_unit_rate, standard_deviation,
		 trend_direction, trend_magnitude, total_quantity_installed, total_labor_hours,
		 total_equipment_hours, planned_vs_actual_variance, cost_variance, schedule_variance,
		 impact_factors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		a.ID, a.ProjectID, a.CostCodeID, a.PeriodType, a.PeriodStart, a.PeriodEnd,
		a.AverageUnitRate, a.PeakUnitRate, a.LowUnitRate, a.StandardDeviation,
		a.TrendDirection, a.TrendMagnitude, a.TotalQuantityInstalled, a.TotalLaborHours,
		equipmentHours, a.PlannedVsActualVariance, a.CostVariance, a.ScheduleVariance,
		string(impactFactors),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetAnalytics returns the analytics history for a project, oldest first,
// optionally narrowed to one cost code.
func (s *Storage) GetAnalytics(ctx context.Context, projectID, costCodeID string) ([]storage.ProductivityAnalytics, error) {
	const op = "storage.mysql.GetAnalytics"

	query := `
		SELECT id, project_id, cost_code_id, period_type, period_start, period_end,
		       average_unit_rate, peak_unit_rate, low_unit_rate, standard_deviation,
		       trend_direction, trend_magnitude, total_quantity_installed, total_labor_hours,
		       total_equipment_hours, planned_vs_actual_variance, cost_variance, schedule_variance,
		       impact_factors
		FROM fo_productivity_analytics
		WHERE project_id = ?`
	args := []any{projectID}

	if costCodeID != "" {
		query += ` AND cost_code_id = ?`
		args = append(args, costCodeID)
	}
	query += ` ORDER BY period_end ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []storage.ProductivityAnalytics
	for rows.Next() {
		var a storage.ProductivityAnalytics
		var equipmentHours sql.NullFloat64
		var impactFactors string

		err := rows.Scan(
			&a.ID, &a.ProjectID, &a.CostCodeID, &a.PeriodType, &a.PeriodStart, &a.PeriodEnd,
			&a.AverageUnitRate, &a.PeakUnitRate, &a.LowUnitRate, &a.StandardDeviation,
			&a.TrendDirection, &a.TrendMagnitude, &a.TotalQuantityInstalled, &a.TotalLaborHours,
			&equipmentHours, &a.PlannedVsActualVariance, &a.CostVariance, &a.ScheduleVariance,
			&impactFactors,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if equipmentHours.Valid {
			v := equipmentHours.Float64
			a.TotalEquipmentHours = &v
		}
		if impactFactors != "" {
			if err := json.Unmarshal([]byte(impactFactors), &a.ImpactFactors); err != nil {
				return nil, fmt.Errorf("%s: unmarshal impact factors: %w", op, err)
			}
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
