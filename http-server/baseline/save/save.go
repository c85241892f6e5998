package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"fieldops/internal/storage"
)

type BaselineEstablisher interface {
	EstablishBaseline(ctx context.Context, projectID, costCodeID, startDate, endDate string) (*storage.ProductivityBaseline, error)
}

type Response struct {
	Baseline *storage.ProductivityBaseline `json:"baseline,omitempty"`
	Status   string                        `json:"status"`
}

// EstablishBaseline freezes a new baseline for a cost code. Too few data
// points is a 200 with status "insufficient_data", not an error: the UI
// shows it as a hint, not a failure.
func EstablishBaseline(log *slog.Logger, estimator BaselineEstablisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.baseline.save.EstablishBaseline"

		var req struct {
			ProjectID  string `json:"project_id"`
			CostCodeID string `json:"cost_code_id"`
			StartDate  string `json:"start_date"`
			EndDate    string `json:"end_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ProjectID == "" || req.CostCodeID == "" {
			http.Error(w, "Missing project or cost code id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		baseline, err := estimator.EstablishBaseline(ctx, req.ProjectID, req.CostCodeID, req.StartDate, req.EndDate)
		if err != nil {
			log.Error("failed to establish baseline", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if baseline == nil {
			render.JSON(w, r, Response{Status: "insufficient_data"})
			return
		}
		render.JSON(w, r, Response{Baseline: baseline, Status: "ok"})
	}
}
