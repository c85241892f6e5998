package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"fieldops/internal/storage"
)

type BaselineReader interface {
	GetBaselines(ctx context.Context, projectID, costCodeID string, activeOnly bool) ([]storage.ProductivityBaseline, error)
}

func GetBaselines(log *slog.Logger, reader BaselineReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.baseline.get.GetBaselines"

		projectID := chi.URLParam(r, "projectID")
		costCodeID := r.URL.Query().Get("cost_code_id")
		activeOnly := r.URL.Query().Get("active") == "true"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		baselines, err := reader.GetBaselines(ctx, projectID, costCodeID, activeOnly)
		if err != nil {
			log.Error("failed to fetch baselines", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, baselines)
	}
}
