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

type ReportReader interface {
	GetBidFeedbackReports(ctx context.Context, projectID string) ([]storage.BidFeedbackReport, error)
}

type PriceBookReader interface {
	GetUnitPriceBook(ctx context.Context, orgID string) ([]storage.UnitPriceEntry, error)
}

func GetReports(log *slog.Logger, reader ReportReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bidfeedback.get.GetReports"

		projectID := chi.URLParam(r, "projectID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reports, err := reader.GetBidFeedbackReports(ctx, projectID)
		if err != nil {
			log.Error("failed to fetch bid feedback reports", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, reports)
	}
}

func GetUnitPriceBook(log *slog.Logger, reader PriceBookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bidfeedback.get.GetUnitPriceBook"

		orgID := chi.URLParam(r, "orgID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		book, err := reader.GetUnitPriceBook(ctx, orgID)
		if err != nil {
			log.Error("failed to fetch unit price book", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, book)
	}
}
