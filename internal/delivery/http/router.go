package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/metrics"
	"github.com/prithvinet/backend/internal/service"
)

// Services are the dependencies wired into the routes
type Services struct {
	Auth         *service.AuthService
	Monitoring   *service.MonitoringService
	Intelligence *service.IntelligenceService
	Simulator    *service.SimulatorService
	Economy      *service.EconomyService
	Reports      *service.ReportService
	Awareness    *service.AwarenessService
	MLBridge     *service.MLBridge
	Repo         service.DataRepository
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, s Services) {
	handler := NewHandler(s)
	can := RequireCapability
	authed := RequireSession(s.Auth)

	if s.Metrics != nil {
		app.Use(Metrics(s.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Public
		api.Get("/awareness", handler.GetAwareness)
		api.Post("/auth/login", handler.Login)
		api.Get("/aqi/classify", handler.Classify)
		api.Post("/aqi/evaluate", handler.Evaluate)

		// Session
		api.Post("/auth/logout", authed, handler.Logout)
		api.Get("/me", authed, can(domain.CapManageSettings), handler.Me)

		// Dashboard & monitoring
		api.Get("/dashboard", authed, can(domain.CapViewDashboard), handler.GetDashboard)
		api.Get("/map", authed, can(domain.CapViewDashboard), handler.GetMap)
		api.Get("/cities", authed, can(domain.CapViewMonitoring), handler.GetCities)
		api.Get("/cities/nearest", authed, can(domain.CapViewMonitoring), handler.GetNearestCity)
		api.Get("/monitoring/:city", authed, can(domain.CapViewMonitoring), handler.GetCityDetail)
		api.Get("/monitoring/:city/history", authed, can(domain.CapViewMonitoring), handler.GetHistory)
		api.Get("/monitoring/:city/export", authed, can(domain.CapExportData), handler.ExportCity)

		// Intelligence (forecast proxies to the ML service)
		api.Get("/intelligence/:city", authed, can(domain.CapViewIntelligence), handler.GetIntelligence)
		api.Get("/intelligence/:city/report", authed, can(domain.CapExportData), handler.DownloadIntelligence)

		// Simulator
		api.Get("/simulator/parameters", authed, can(domain.CapRunSimulation), handler.GetSimulatorParameters)
		api.Post("/simulator/run", authed, can(domain.CapRunSimulation), handler.RunSimulation)

		// Circular economy & reports
		api.Get("/economy", authed, can(domain.CapUseMarketplace), handler.GetEconomy)
		api.Get("/reports", authed, can(domain.CapViewReports), handler.GetReports)
		api.Get("/reports/:id/download", authed, can(domain.CapExportData), handler.DownloadReport)
	}
}

// ErrorHandler renders every error as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
