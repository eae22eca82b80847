package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/export"
	"github.com/prithvinet/backend/internal/geo"
	"github.com/prithvinet/backend/internal/service"
)

const (
	serviceName = "prithvi-net-backend"
	version     = "1.0.0"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeText = "text/plain; charset=utf-8"
)

// Handler contains all HTTP handlers
type Handler struct {
	auth         *service.AuthService
	monitoring   *service.MonitoringService
	intelligence *service.IntelligenceService
	simulator    *service.SimulatorService
	economy      *service.EconomyService
	reports      *service.ReportService
	awareness    *service.AwarenessService
	mlBridge     *service.MLBridge
	repo         service.DataRepository
	logger       *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(s Services) *Handler {
	return &Handler{
		auth:         s.Auth,
		monitoring:   s.Monitoring,
		intelligence: s.Intelligence,
		simulator:    s.Simulator,
		economy:      s.Economy,
		reports:      s.Reports,
		awareness:    s.Awareness,
		mlBridge:     s.MLBridge,
		repo:         s.Repo,
		logger:       s.Logger,
	}
}

func respond(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func download(c *fiber.Ctx, filename, contentType string, body []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}

// serviceError maps service errors to HTTP errors
func (h *Handler) serviceError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCityNotFound), errors.Is(err, service.ErrReportNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidHours),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidReportType):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	h.logger.Error(fallback, zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, fallback)
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status := "ok"
	database := "ok"
	if err := h.repo.Health(ctx); err != nil {
		status, database = "degraded", "unavailable"
	}
	ml := "ok"
	if err := h.mlBridge.Health(ctx); err != nil {
		ml = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":     status,
		"service":    serviceName,
		"version":    version,
		"database":   database,
		"ml_service": ml,
	})
}

type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login opens a session for any email with a valid role
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.auth.Login(c.UserContext(), req.Email, req.Role)
	if err != nil {
		return h.serviceError(err, "Failed to log in")
	}

	return respond(c, fiber.Map{
		"token":      res.Token,
		"user":       res.Session.User,
		"expires_at": res.Session.ExpiresAt,
	})
}

// Logout closes the current session
func (h *Handler) Logout(c *fiber.Ctx) error {
	sess, found := SessionFrom(c)
	if !found {
		return fiber.NewError(fiber.StatusUnauthorized, "Login required")
	}
	if err := h.auth.Logout(c.UserContext(), sess); err != nil {
		return h.serviceError(err, "Failed to log out")
	}
	return respond(c, fiber.Map{"logged_out": true})
}

// Me returns the current user's profile and capabilities
func (h *Handler) Me(c *fiber.Ctx) error {
	sess, _ := SessionFrom(c)
	return respond(c, fiber.Map{
		"user":         sess.User,
		"role_label":   sess.User.Role.Label(),
		"capabilities": sess.User.Role.Capabilities(),
		"expires_at":   sess.ExpiresAt,
	})
}

// Classify maps ?value= to its AQI bucket
func (h *Handler) Classify(c *fiber.Ctx) error {
	raw := c.Query("value")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "value is required")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "value must be a number")
	}

	return respond(c, fiber.Map{
		"value":          value,
		"classification": aqi.Classify(value),
		"headline":       aqi.Headline(value),
	})
}

// Evaluate checks a reading's pollutants against WHO limits
func (h *Handler) Evaluate(c *fiber.Ctx) error {
	var reading domain.AirQualityReading
	if err := c.BodyParser(&reading); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	assessments := aqi.Evaluate(reading)
	return respond(c, fiber.Map{
		"pollutants": assessments,
		"compliance": aqi.Summarize(assessments),
	})
}

// GetDashboard returns aggregated live data
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	return respond(c, h.monitoring.Dashboard(c.UserContext()))
}

// GetMap returns the pollution map markers as GeoJSON
func (h *Handler) GetMap(c *fiber.Ctx) error {
	return respond(c, geo.Markers(h.monitoring.Snapshot(c.UserContext())))
}

// GetCities lists monitored cities
func (h *Handler) GetCities(c *fiber.Ctx) error {
	return respond(c, h.monitoring.Cities())
}

// GetNearestCity resolves ?lat=&lng= to the closest city
func (h *Handler) GetNearestCity(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return fiber.NewError(fiber.StatusBadRequest, "lat and lng must be numbers")
	}

	nearest, err := h.monitoring.NearestCity(lat, lng)
	if err != nil {
		return h.serviceError(err, "Failed to find nearest city")
	}
	return respond(c, nearest)
}

// GetCityDetail returns the monitoring view for one city
func (h *Handler) GetCityDetail(c *fiber.Ctx) error {
	detail, err := h.monitoring.CityDetail(c.UserContext(), c.Params("city"))
	if err != nil {
		return h.serviceError(err, "Failed to fetch city data")
	}
	return respond(c, detail)
}

// GetHistory returns stored readings within a time range
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", service.DefaultHistoryHours)

	data, err := h.monitoring.History(c.UserContext(), c.Params("city"), hours)
	if err != nil {
		return h.serviceError(err, "Failed to fetch reading history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// ExportCity downloads a city's pollutant table as CSV or XLSX
func (h *Handler) ExportCity(c *fiber.Ctx) error {
	city := c.Params("city")
	format := c.Query("format", "csv")
	if format != "csv" && format != "xlsx" {
		return fiber.NewError(fiber.StatusBadRequest, "format must be csv or xlsx")
	}

	detail, err := h.monitoring.CityDetail(c.UserContext(), city)
	if err != nil {
		return h.serviceError(err, "Failed to fetch city data")
	}

	var (
		body        []byte
		contentType string
	)
	if format == "xlsx" {
		body, err = export.PollutantXLSX(city, detail.Pollutants)
		contentType = mimeXLSX
	} else {
		body, err = export.PollutantCSV(detail.Pollutants)
		contentType = mimeCSV
	}
	if err != nil {
		return h.serviceError(err, "Failed to export city data")
	}

	return download(c, export.PollutantFilename(city, format, time.Now()), contentType, body)
}

// GetIntelligence returns forecast, trend and recommendations for a city
func (h *Handler) GetIntelligence(c *fiber.Ctx) error {
	in, err := h.intelligence.Insights(c.UserContext(), c.Params("city"))
	if err != nil {
		return h.serviceError(err, "Failed to build insights")
	}
	return respond(c, in)
}

// DownloadIntelligence returns the AI report as a text file
func (h *Handler) DownloadIntelligence(c *fiber.Ctx) error {
	name, body, err := h.intelligence.Report(c.UserContext(), c.Params("city"))
	if err != nil {
		return h.serviceError(err, "Failed to build report")
	}
	return download(c, name, mimeText, body)
}

// GetSimulatorParameters returns slider defaults and bounds
func (h *Handler) GetSimulatorParameters(c *fiber.Ctx) error {
	return respond(c, h.simulator.Parameters())
}

// RunSimulation runs a what-if scenario for the current user
func (h *Handler) RunSimulation(c *fiber.Ctx) error {
	var params domain.ScenarioParameters
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	var out service.SimulationOutcome
	if sess, found := SessionFrom(c); found {
		out = h.simulator.Run(c.UserContext(), &sess, params)
	} else {
		out = h.simulator.Run(c.UserContext(), nil, params)
	}
	return respond(c, out)
}

// GetEconomy returns the circular economy hub
func (h *Handler) GetEconomy(c *fiber.Ctx) error {
	return respond(c, h.economy.Marketplace())
}

// GetReports lists reports, optionally filtered by ?type=
func (h *Handler) GetReports(c *fiber.Ctx) error {
	listing, err := h.reports.List(c.Query("type"))
	if err != nil {
		return h.serviceError(err, "Failed to list reports")
	}
	return respond(c, listing)
}

// DownloadReport returns a catalog report as a text file
func (h *Handler) DownloadReport(c *fiber.Ctx) error {
	name, body, err := h.reports.Download(c.Params("id"))
	if err != nil {
		return h.serviceError(err, "Failed to download report")
	}
	return download(c, name, mimeText, body)
}

// GetAwareness returns public rankings and education content
func (h *Handler) GetAwareness(c *fiber.Ctx) error {
	return respond(c, h.awareness.Content())
}
