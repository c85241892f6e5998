package generate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"fieldops/internal/storage"
)

type ReportGenerator interface {
	GenerateBidFeedbackReport(ctx context.Context, projectID, projectName string) (*storage.BidFeedbackReport, error)
}

type LibraryUpdater interface {
	UpdateUnitPriceLibrary(ctx context.Context, projectID, projectName string) ([]storage.UnitPriceEntry, error)
}

type request struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
}

func GenerateReport(log *slog.Logger, generator ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bidfeedback.generate.GenerateReport"

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ProjectID == "" {
			http.Error(w, "Missing project id", http.StatusBadRequest)
			return
		}

		// Report generation walks every cost code of the project, give it
		// more room than the usual reads.
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		report, err := generator.GenerateBidFeedbackReport(ctx, req.ProjectID, req.ProjectName)
		if err != nil {
			log.Error("failed to generate bid feedback report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, report)
	}
}

func UpdateUnitPriceLibrary(log *slog.Logger, updater LibraryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bidfeedback.generate.UpdateUnitPriceLibrary"

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ProjectID == "" {
			http.Error(w, "Missing project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		updated, err := updater.UpdateUnitPriceLibrary(ctx, req.ProjectID, req.ProjectName)
		if err != nil {
			log.Error("failed to update unit price library", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, updated)
	}
}
