package derive

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"fieldops/internal/storage"
)

type EntryDeriver interface {
	DeriveProductivityEntries(ctx context.Context, dailyLog storage.DailyLog, projectID string) ([]storage.ProductivityEntry, error)
}

type Response struct {
	Entries []storage.ProductivityEntry `json:"entries"`
	Skipped int                         `json:"skipped"`
}

// DeriveEntries accepts a daily log from the mobile app and turns it into
// productivity entries.
func DeriveEntries(log *slog.Logger, deriver EntryDeriver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.productivity.derive.DeriveEntries"

		var req struct {
			ProjectID string           `json:"project_id"`
			DailyLog  storage.DailyLog `json:"daily_log"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ProjectID == "" {
			req.ProjectID = req.DailyLog.ProjectID
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := deriver.DeriveProductivityEntries(ctx, req.DailyLog, req.ProjectID)
		if err != nil {
			log.Error("failed to derive productivity entries", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			Entries: entries,
			Skipped: len(req.DailyLog.WorkPerformed) - len(entries),
		})
	}
}
