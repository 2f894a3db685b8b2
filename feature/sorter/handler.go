package sorter

import (
	"errors"
	"strings"

	"asset-sorter/core/logger"
	"asset-sorter/core/middleware/rayid"
	"asset-sorter/core/reconcile"
	"asset-sorter/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for folder ordering.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// FolderRequest names a folder.
type FolderRequest struct {
	Folder string `json:"folder"`
}

// MoveRequest describes a drag from OldIndex to NewIndex.
type MoveRequest struct {
	Folder   string `json:"folder"`
	OldIndex *int   `json:"old_index"`
	NewIndex *int   `json:"new_index"`
}

// StatusRequest sets a status on a folder tree.
type StatusRequest struct {
	Folder string `json:"folder"`
	Status string `json:"status"`
}

// ItemsResponse is the current list of a folder.
type ItemsResponse struct {
	Folder string           `json:"folder"`
	Items  []reconcile.Item `json:"items"`
}

// FailureView is one failed position write.
type FailureView struct {
	ItemID string `json:"item_id"`
	Error  string `json:"error"`
}

// ReportResponse is the outcome of a reconciliation.
type ReportResponse struct {
	Folder  string             `json:"folder"`
	OK      bool               `json:"ok"`
	Updated int                `json:"updated"`
	Changes []reconcile.Change `json:"changes"`
	Failed  []FailureView      `json:"failed"`
}

func newReportResponse(r *reconcile.Report) ReportResponse {
	resp := ReportResponse{
		Folder:  r.Folder,
		OK:      r.OK(),
		Updated: r.Updated(),
		Changes: r.Changes,
		Failed:  make([]FailureView, 0, len(r.Failures)),
	}
	for _, f := range r.Failures {
		resp.Failed = append(resp.Failed, FailureView{ItemID: f.ItemID, Error: f.Err.Error()})
	}
	return resp
}

// RegisterRoutes registers the folder routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/folders")
	group.Get("/", h.HandleList)
	group.Post("/open", h.HandleOpen)
	group.Get("/items", h.HandleItems)
	group.Post("/refresh", h.HandleRefresh)
	group.Delete("/", h.HandleClose)
	group.Post("/move", h.HandleMove)
	group.Get("/plan", h.HandlePlan)
	group.Post("/reconcile", h.HandleReconcile)
	group.Post("/restore", h.HandleRestore)
	group.Post("/status", h.HandleStatus)
}

// HandleList lists the open folders.
// @Summary List Open Folders
// @Tags folders
// @Produce json
// @Success 200 {object} map[string]interface{} "Open folders and host state"
// @Router /folders [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"folders": h.service.Folders(),
		"online":  h.service.Online(),
	})
}

// HandleOpen opens a folder.
// @Summary Open Folder
// @Description Fetches the direct children of a folder in host sort order. Subsequent calls return the open session.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body FolderRequest true "Folder"
// @Success 200 {object} ItemsResponse "Items"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Fetch Failed"
// @Failure 503 {object} map[string]string "Host Offline"
// @Router /folders/open [post]
func (h *Handler) HandleOpen(c *fiber.Ctx) error {
	folder, msg := parseFolder(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	items, err := h.service.Open(c.Context(), folder)
	if err != nil {
		return h.fail(c, "Open failed", err)
	}
	return c.JSON(ItemsResponse{Folder: folder, Items: items})
}

// HandleItems returns the list of an open folder.
// @Summary Folder Items
// @Tags folders
// @Produce json
// @Param folder query string true "Folder path"
// @Success 200 {object} ItemsResponse "Items"
// @Failure 404 {object} map[string]string "Folder Not Open"
// @Router /folders/items [get]
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	folder := c.Query("folder")
	items, err := h.service.Items(folder)
	if err != nil {
		return h.fail(c, "Items failed", err)
	}
	return c.JSON(ItemsResponse{Folder: folder, Items: items})
}

// HandleRefresh refetches an open folder.
// @Summary Refresh Folder
// @Description Refetches a folder from the host, discarding unsaved order.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body FolderRequest true "Folder"
// @Success 200 {object} ItemsResponse "Items"
// @Failure 409 {object} map[string]string "Reconciliation In Progress"
// @Failure 502 {object} map[string]string "Fetch Failed"
// @Router /folders/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	folder, msg := parseFolder(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	items, err := h.service.Refresh(c.Context(), folder)
	if err != nil {
		return h.fail(c, "Refresh failed", err)
	}
	return c.JSON(ItemsResponse{Folder: folder, Items: items})
}

// HandleClose drops an open folder.
// @Summary Close Folder
// @Tags folders
// @Param folder query string true "Folder path"
// @Success 204 "Closed"
// @Failure 404 {object} map[string]string "Folder Not Open"
// @Router /folders [delete]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	if err := h.service.Close(c.Query("folder")); err != nil {
		return h.fail(c, "Close failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMove applies a drag and persists the new order.
// @Summary Move Item
// @Description Moves the item at old_index to new_index and writes the changed positions to the host. Partial failures are reported in the body.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move"
// @Success 200 {object} ReportResponse "Reconcile Report"
// @Failure 400 {object} map[string]string "Invalid Index"
// @Failure 404 {object} map[string]string "Folder Not Open"
// @Failure 409 {object} map[string]string "Reconciliation In Progress"
// @Router /folders/move [post]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Folder) == "" || req.OldIndex == nil || req.NewIndex == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "folder, old_index and new_index are required"})
	}

	report, err := h.service.Move(c.Context(), req.Folder, *req.OldIndex, *req.NewIndex, rayID(c))
	if err != nil {
		return h.fail(c, "Move failed", err)
	}
	return c.JSON(newReportResponse(report))
}

// HandlePlan shows the changed set without writing anything.
// @Summary Pending Changes
// @Tags folders
// @Produce json
// @Param folder query string true "Folder path"
// @Success 200 {object} map[string]interface{} "Pending changes"
// @Failure 404 {object} map[string]string "Folder Not Open"
// @Router /folders/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	folder := c.Query("folder")
	changes, err := h.service.Plan(folder)
	if err != nil {
		return h.fail(c, "Plan failed", err)
	}
	return c.JSON(fiber.Map{"folder": folder, "changes": changes})
}

// HandleReconcile pushes pending changes again.
// @Summary Retry Reconcile
// @Description Re-sends every position that is not yet persisted, typically after a partial failure.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body FolderRequest true "Folder"
// @Success 200 {object} ReportResponse "Reconcile Report"
// @Failure 409 {object} map[string]string "Reconciliation In Progress"
// @Router /folders/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	folder, msg := parseFolder(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	report, err := h.service.Reconcile(c.Context(), folder, rayID(c))
	if err != nil {
		return h.fail(c, "Reconcile failed", err)
	}
	return c.JSON(newReportResponse(report))
}

// HandleRestore restores the newest snapshot of a folder.
// @Summary Restore Snapshot
// @Tags folders
// @Accept json
// @Produce json
// @Param request body FolderRequest true "Folder"
// @Success 200 {object} ReportResponse "Reconcile Report"
// @Failure 404 {object} map[string]string "No Snapshot"
// @Router /folders/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	folder, msg := parseFolder(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	report, err := h.service.Restore(c.Context(), folder, rayID(c))
	if err != nil {
		return h.fail(c, "Restore failed", err)
	}
	return c.JSON(newReportResponse(report))
}

// HandleStatus sets a status on every asset below a folder.
// @Summary Set Status
// @Tags folders
// @Accept json
// @Produce json
// @Param request body StatusRequest true "Status"
// @Success 200 {object} map[string]interface{} "Processed count"
// @Failure 400 {object} map[string]string "Unknown Status"
// @Router /folders/status [post]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Folder) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "folder is required"})
	}

	n, err := h.service.SetStatus(c.Context(), req.Folder, req.Status)
	if err != nil {
		return h.fail(c, "Status update failed", err)
	}
	return c.JSON(fiber.Map{"folder": req.Folder, "status": req.Status, "processed": n})
}

// parseFolder reads a FolderRequest body. msg is non-empty when the body is unusable.
func parseFolder(c *fiber.Ctx) (folder, msg string) {
	var req FolderRequest
	if err := c.BodyParser(&req); err != nil {
		return "", "invalid request body"
	}
	if strings.TrimSpace(req.Folder) == "" {
		return "", "folder is required"
	}
	return req.Folder, ""
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := StatusFor(err)
	l := logger.WithRayID(h.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps a service error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrInvalidIndex), errors.Is(err, ErrUnknownStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotOpen), errors.Is(err, snapshot.ErrNoSnapshot):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrInProgress):
		return fiber.StatusConflict
	case errors.Is(err, reconcile.ErrFetchFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrOffline):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func rayID(c *fiber.Ctx) string {
	if s, ok := c.Locals(rayid.LocalsKey).(string); ok {
		return s
	}
	return ""
}
