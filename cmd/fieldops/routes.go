package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	computeanalytics "fieldops/http-server/analytics/compute"
	getanalytics "fieldops/http-server/analytics/get"
	getbaseline "fieldops/http-server/baseline/get"
	savebaseline "fieldops/http-server/baseline/save"
	generatebid "fieldops/http-server/bidfeedback/generate"
	getbid "fieldops/http-server/bidfeedback/get"
	getcostcodes "fieldops/http-server/costcodes/get"
	savecostcodes "fieldops/http-server/costcodes/save"
	deriveentries "fieldops/http-server/productivity/derive"
	getproductivity "fieldops/http-server/productivity/get"
	"fieldops/internal/config"
	"fieldops/internal/middleware/auth"
	"fieldops/internal/service/bidfeedback"
	"fieldops/internal/service/productivity"
	"fieldops/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage,
	productivityService *productivity.ProductivityService,
	bidFeedbackService *bidfeedback.BidFeedbackService) *chi.Mux {

	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Derivation: daily logs come in, productivity entries come out.
	router.Post("/api/productivity/derive", deriveentries.DeriveEntries(log, productivityService))
	router.Get("/api/projects/{projectID}/productivity/entries", getproductivity.GetEntries(log, storage))
	router.Get("/api/projects/{projectID}/productivity/summary", getproductivity.GetSummary(log, productivityService))

	// Baselines.
	router.Post("/api/baselines", savebaseline.EstablishBaseline(log, productivityService))
	router.Get("/api/projects/{projectID}/baselines", getbaseline.GetBaselines(log, storage))

	// Trend/variance analytics.
	router.Post("/api/analytics/compute", computeanalytics.ComputeAnalytics(log, productivityService))
	router.Get("/api/projects/{projectID}/analytics", getanalytics.GetAnalytics(log, storage))

	// Bid feedback and the org price book.
	router.Post("/api/bid-feedback/generate", generatebid.GenerateReport(log, bidFeedbackService))
	router.Post("/api/bid-feedback/unit-price-library", generatebid.UpdateUnitPriceLibrary(log, bidFeedbackService))
	router.Get("/api/projects/{projectID}/bid-feedback", getbid.GetReports(log, storage))
	router.Get("/api/orgs/{orgID}/unit-price-book", getbid.GetUnitPriceBook(log, storage))

	// Cost code registry.
	router.Get("/api/projects/{projectID}/cost-codes", getcostcodes.GetCostCodes(log, storage))

	// Admin: reference data maintenance.
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/cost-codes", savecostcodes.SaveCostCode(log, storage))
	adminRouter.Put("/cost-codes", savecostcodes.SaveCostCode(log, storage))
	adminRouter.Get("/projects/{projectID}/cost-codes", getcostcodes.GetCostCodes(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
