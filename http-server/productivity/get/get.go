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

type EntryReader interface {
	GetProductivityEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.ProductivityEntry, error)
}

type SummaryBuilder interface {
	GetProductivitySummary(ctx context.Context, projectID string) (*storage.ProjectProductivitySummary, error)
}

func GetEntries(log *slog.Logger, reader EntryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.productivity.get.GetEntries"

		filter := storage.EntryFilter{
			ProjectID:  chi.URLParam(r, "projectID"),
			CostCodeID: r.URL.Query().Get("cost_code_id"),
			DateFrom:   r.URL.Query().Get("from"),
			DateTo:     r.URL.Query().Get("to"),
		}
		if filter.ProjectID == "" {
			http.Error(w, "Missing project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := reader.GetProductivityEntries(ctx, filter)
		if err != nil {
			log.Error("failed to fetch productivity entries", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, entries)
	}
}

func GetSummary(log *slog.Logger, builder SummaryBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.productivity.get.GetSummary"

		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			http.Error(w, "Missing project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := builder.GetProductivitySummary(ctx, projectID)
		if err != nil {
			log.Error("failed to build productivity summary", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}
