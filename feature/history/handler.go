package history

import (
	"asset-sorter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reorder history.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history", h.HandleList)
}

// HandleList returns the newest reorder events.
// @Summary List Reorder History
// @Description Lists the newest position writes, optionally filtered by folder.
// @Tags history
// @Produce json
// @Param folder query string false "Folder path"
// @Param limit query int false "Maximum number of events (default 50)"
// @Success 200 {array} history.Event "Events"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	events, err := h.repo.List(c.Context(), c.Query("folder"), c.QueryInt("limit", defaultLimit))
	if err != nil {
		l.Error("History listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(events)
}
