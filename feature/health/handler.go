package health

import (
	"asset-sorter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/host", h.HandleHostCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleHealth runs all checks.
// @Summary Health
// @Description Checks host reachability, the snapshot bucket and the history table schema. Responds 503 while the host is offline.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "Health Report"
// @Failure 503 {object} health.Report "Host Offline"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.Run(c.Context())
	if report.Status != StatusOK {
		l.Warn("Health check degraded",
			zap.String("host", report.Host.Status),
			zap.String("storage", report.Storage.Status),
			zap.String("database", report.Database.Status))
	}
	if report.Host.Status != "online" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleHostCheck pings the host.
// @Summary Check Host
// @Tags health
// @Produce json
// @Success 200 {object} checks.HostReport "Host Report"
// @Failure 503 {object} checks.HostReport "Host Offline"
// @Router /health/host [get]
func (h *Handler) HandleHostCheck(c *fiber.Ctx) error {
	report := h.service.CheckHost(c.Context())
	if report.Status != "online" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the snapshot bucket.
// @Summary Check Storage
// @Tags health
// @Produce json
// @Success 200 {object} checks.BucketReport "Storage Report"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckStorage(c.Context()))
}

// HandleDatabaseCheck checks the history table schema.
// @Summary Check Database
// @Tags health
// @Produce json
// @Success 200 {object} health.DatabaseReport "Database Report"
// @Router /health/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckDatabase())
}
