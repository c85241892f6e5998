package compute

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"fieldops/internal/storage"
)

type AnalyticsComputer interface {
	ComputeAnalytics(ctx context.Context, projectID, costCodeID string, periodType storage.PeriodType) (*storage.ProductivityAnalytics, error)
}

type Response struct {
	Analytics *storage.ProductivityAnalytics `json:"analytics,omitempty"`
	Status    string                         `json:"status"`
}

func ComputeAnalytics(log *slog.Logger, computer AnalyticsComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.compute.ComputeAnalytics"

		var req struct {
			ProjectID  string `json:"project_id"`
			CostCodeID string `json:"cost_code_id"`
			PeriodType string `json:"period_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		periodType := storage.PeriodType(req.PeriodType)
		switch periodType {
		case storage.PeriodDaily, storage.PeriodWeekly, storage.PeriodMonthly:
		default:
			http.Error(w, "Unknown period type", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		analytics, err := computer.ComputeAnalytics(ctx, req.ProjectID, req.CostCodeID, periodType)
		if err != nil {
			log.Error("failed to compute analytics", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if analytics == nil {
			render.JSON(w, r, Response{Status: "no_data"})
			return
		}
		render.JSON(w, r, Response{Analytics: analytics, Status: "ok"})
	}
}
