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

type AnalyticsReader interface {
	GetAnalytics(ctx context.Context, projectID, costCodeID string) ([]storage.ProductivityAnalytics, error)
}

func GetAnalytics(log *slog.Logger, reader AnalyticsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.get.GetAnalytics"

		projectID := chi.URLParam(r, "projectID")
		costCodeID := r.URL.Query().Get("cost_code_id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := reader.GetAnalytics(ctx, projectID, costCodeID)
		if err != nil {
			log.Error("failed to fetch analytics", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, records)
	}
}
