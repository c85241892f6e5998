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

type CostCodeSaver interface {
	SaveCostCode(ctx context.Context, costCode storage.CostCode) error
}

type Response struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SaveCostCode is the admin upsert for the project's reference data. New
// records get an id here; updates keep the one they came with.
func SaveCostCode(log *slog.Logger, saver CostCodeSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.costcodes.save.SaveCostCode"

		var req storage.CostCode
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ProjectID == "" || req.Code == "" {
			http.Error(w, "Missing project id or code", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = storage.GenerateID("cc")
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveCostCode(ctx, req); err != nil {
			log.Error("failed to save cost code", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: req.ID, Status: "ok"})
	}
}
