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

type CostCodeReader interface {
	GetCostCodes(ctx context.Context, projectID string, activeOnly bool) ([]storage.CostCode, error)
}

func GetCostCodes(log *slog.Logger, reader CostCodeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.costcodes.get.GetCostCodes"

		projectID := chi.URLParam(r, "projectID")
		activeOnly := r.URL.Query().Get("active") == "true"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		costCodes, err := reader.GetCostCodes(ctx, projectID, activeOnly)
		if err != nil {
			log.Error("failed to fetch cost codes", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, costCodes)
	}
}
