package matcher

import (
	"bytes"
	"errors"

	"item-matcher/core/catalog"
	"item-matcher/core/logger"
	"item-matcher/core/reconcile"
	"item-matcher/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConfirmRequest is the body of a confirm call.
type ConfirmRequest struct {
	// CandidateID accepts a number or a string.
	CandidateID utils.ID `json:"candidate_id" swaggertype:"string"`
}

// StatsResponse wraps the counters returned after a change.
type StatsResponse struct {
	Stats reconcile.Stats `json:"stats"`
}

// AutoMatchResponse is returned by auto-match and reload.
type AutoMatchResponse struct {
	Result reconcile.AutoMatchResult `json:"result"`
	Stats  reconcile.Stats           `json:"stats"`
}

// Handler handles HTTP requests for the matching session.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the matcher routes. Static paths come before /:sourceId.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/matches")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleClear)
	group.Get("/stats", h.HandleStats)
	group.Post("/auto", h.HandleAutoMatch)
	group.Post("/reload", h.HandleReload)
	group.Get("/export.json", h.HandleExportJSON)
	group.Get("/export.csv", h.HandleExportCSV)
	group.Post("/import", h.HandleImport)
	group.Get("/:sourceId", h.HandleGet)
	group.Get("/:sourceId/suggestions", h.HandleSuggestions)
	group.Put("/:sourceId", h.HandleConfirm)
	group.Post("/:sourceId/reject", h.HandleReject)
	group.Post("/:sourceId/reset", h.HandleReset)
}

// errorStatus maps a service error to an HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrUnknownSource), errors.Is(err, reconcile.ErrUnknownCandidate):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrImportParse),
		errors.Is(err, reconcile.ErrUnknownFilter),
		errors.Is(err, reconcile.ErrUnknownLayout),
		errors.Is(err, utils.ErrInvalidID):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrReloadUnavailable):
		return fiber.StatusNotImplemented
	case errors.Is(err, catalog.ErrLoadFailure):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := errorStatus(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists items with their decisions.
// @Summary List Items
// @Description Lists source items in catalog order with their match status.
// @Tags matches
// @Produce json
// @Param status query string false "Status filter (all, pending, matched, no-match)"
// @Success 200 {array} reconcile.View "Items"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /matches [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	views, err := h.service.List(c.Query("status"))
	if err != nil {
		return h.fail(c, "List failed", err)
	}
	return c.JSON(views)
}

// HandleStats returns the counters.
// @Summary Get Statistics
// @Description Returns total, matched, rejected and pending counts over the source catalog.
// @Tags matches
// @Produce json
// @Success 200 {object} reconcile.Stats "Statistics"
// @Router /matches/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleGet returns one item.
// @Summary Get Item
// @Description Returns a source item with its status and resolved candidate.
// @Tags matches
// @Produce json
// @Param sourceId path string true "Source item identifier"
// @Success 200 {object} reconcile.View "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{sourceId} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	view, err := h.service.View(c.Params("sourceId"))
	if err != nil {
		return h.fail(c, "Get item failed", err)
	}
	return c.JSON(view)
}

// HandleSuggestions returns the shortlist of an item.
// @Summary Get Suggestions
// @Description Returns the ranked candidate shortlist for a source item.
// @Tags matches
// @Produce json
// @Param sourceId path string true "Source item identifier"
// @Param limit query int false "Maximum number of suggestions"
// @Success 200 {array} reconcile.Suggestion "Suggestions"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{sourceId}/suggestions [get]
func (h *Handler) HandleSuggestions(c *fiber.Ctx) error {
	suggestions, err := h.service.Suggestions(c.Params("sourceId"), c.QueryInt("limit", 0))
	if err != nil {
		return h.fail(c, "Suggest failed", err)
	}
	return c.JSON(suggestions)
}

// HandleConfirm confirms a candidate.
// @Summary Confirm Match
// @Description Matches a source item to a candidate, replacing any previous decision.
// @Tags matches
// @Accept json
// @Produce json
// @Param sourceId path string true "Source item identifier"
// @Param body body ConfirmRequest true "Candidate"
// @Success 200 {object} StatsResponse "Updated statistics"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{sourceId} [put]
func (h *Handler) HandleConfirm(c *fiber.Ctx) error {
	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, "Confirm failed", errors.Join(utils.ErrInvalidID, err))
	}

	stats, err := h.service.Confirm(c.Context(), c.Params("sourceId"), req.CandidateID)
	if err != nil {
		return h.fail(c, "Confirm failed", err)
	}
	return c.JSON(StatsResponse{Stats: stats})
}

// HandleReject records a no-match.
// @Summary Reject Item
// @Description Records that no candidate matches the source item.
// @Tags matches
// @Produce json
// @Param sourceId path string true "Source item identifier"
// @Success 200 {object} StatsResponse "Updated statistics"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{sourceId}/reject [post]
func (h *Handler) HandleReject(c *fiber.Ctx) error {
	stats, err := h.service.Reject(c.Context(), c.Params("sourceId"))
	if err != nil {
		return h.fail(c, "Reject failed", err)
	}
	return c.JSON(StatsResponse{Stats: stats})
}

// HandleReset returns an item to pending.
// @Summary Reset Item
// @Description Removes the decision of a source item.
// @Tags matches
// @Produce json
// @Param sourceId path string true "Source item identifier"
// @Success 200 {object} StatsResponse "Updated statistics"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{sourceId}/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	stats, err := h.service.Reset(c.Context(), c.Params("sourceId"))
	if err != nil {
		return h.fail(c, "Reset failed", err)
	}
	return c.JSON(StatsResponse{Stats: stats})
}

// HandleAutoMatch reruns auto-match.
// @Summary Run Auto-Match
// @Description Decides every pending item using exact and prefix evidence. Existing decisions are kept.
// @Tags matches
// @Produce json
// @Success 200 {object} AutoMatchResponse "Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /matches/auto [post]
func (h *Handler) HandleAutoMatch(c *fiber.Ctx) error {
	result, err := h.service.AutoMatch(c.Context())
	if err != nil {
		return h.fail(c, "Auto-match failed", err)
	}
	return c.JSON(AutoMatchResponse{Result: result, Stats: h.service.Stats()})
}

// HandleReload reloads the catalogs.
// @Summary Reload Catalogs
// @Description Fetches both catalogs again and auto-matches new source items.
// @Tags matches
// @Produce json
// @Success 200 {object} AutoMatchResponse "Result"
// @Failure 502 {object} map[string]string "Catalog load failure"
// @Router /matches/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	result, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, "Reload failed", err)
	}
	return c.JSON(AutoMatchResponse{Result: result, Stats: h.service.Stats()})
}

// HandleExportJSON downloads the ledger.
// @Summary Export JSON
// @Description Downloads the ledger as {"sourceId": candidateId | null}.
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Ledger"
// @Router /matches/export.json [get]
func (h *Handler) HandleExportJSON(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportJSON(&buf); err != nil {
		return h.fail(c, "Export failed", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Attachment("matches.json")
	return c.Send(buf.Bytes())
}

// HandleExportCSV downloads the CSV export.
// @Summary Export CSV
// @Description Downloads one row per source item.
// @Tags matches
// @Produce text/csv
// @Param layout query string false "Column layout (full, reduced)"
// @Success 200 {string} string "CSV"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /matches/export.csv [get]
func (h *Handler) HandleExportCSV(c *fiber.Ctx) error {
	layout, err := h.service.ParseCSVLayout(c.Query("layout"))
	if err != nil {
		return h.fail(c, "Export failed", err)
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(&buf, layout); err != nil {
		return h.fail(c, "Export failed", err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Attachment("matches.csv")
	return c.Send(buf.Bytes())
}

// HandleImport replaces the ledger.
// @Summary Import Ledger
// @Description Replaces the whole ledger with a previously exported JSON file. Nothing changes on a parse error.
// @Tags matches
// @Accept json
// @Produce json
// @Param body body object true "Ledger"
// @Success 200 {object} StatsResponse "Updated statistics"
// @Failure 400 {object} map[string]string "Parse error"
// @Router /matches/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	stats, err := h.service.Import(c.Context(), bytes.NewReader(c.Body()))
	if err != nil {
		return h.fail(c, "Import failed", err)
	}
	return c.JSON(StatsResponse{Stats: stats})
}

// HandleClear removes all progress.
// @Summary Clear Ledger
// @Description Removes every decision. Requires confirm=true.
// @Tags matches
// @Produce json
// @Param confirm query boolean true "Must be true"
// @Success 200 {object} StatsResponse "Updated statistics"
// @Failure 400 {object} map[string]string "Confirmation required"
// @Router /matches [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "clearing all progress requires confirm=true",
		})
	}

	stats, err := h.service.Clear(c.Context())
	if err != nil {
		return h.fail(c, "Clear failed", err)
	}
	return c.JSON(StatsResponse{Stats: stats})
}
