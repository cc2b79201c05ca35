package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/dto"
	"github.com/turma62/fundraiser/internal/middleware"
	"github.com/turma62/fundraiser/internal/realtime"
	"github.com/turma62/fundraiser/internal/utils"
)

const (
	msgAdjustmentFailed = "Erro ao ajustar o total. Tente novamente."
	msgReceiptFailed    = "Erro ao abrir comprovante"
	msgAdminLoadFailed  = "Não foi possível carregar o painel."
)

// adminHandler serves the administrator panel.
type adminHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	adminGate     portssvc.AdminGateSvc
	hub           realtime.Subscriber
	analytics     *utils.PosthogClientWrapper
	now           func() time.Time
}

func newAdminHandler(ledgerService portssvc.LedgerSvcFacade, adminGate portssvc.AdminGateSvc, hub realtime.Subscriber, analytics *utils.PosthogClientWrapper) *adminHandler {
	return &adminHandler{
		ledgerService: ledgerService,
		adminGate:     adminGate,
		hub:           hub,
		analytics:     analytics,
		now:           time.Now,
	}
}

// RegisterAdminRoutes registers the admin panel routes. rg must already be
// behind AuthMiddleware; everything except /me is also behind the admin gate.
// analytics may be nil.
func RegisterAdminRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, adminGate portssvc.AdminGateSvc, hub realtime.Subscriber, analytics *utils.PosthogClientWrapper) {
	h := newAdminHandler(ledgerService, adminGate, hub, analytics)

	admin := rg.Group("/admin")
	admin.GET("/me", h.getMe)

	gated := admin.Group("", middleware.AdminGate(adminGate))
	{
		gated.GET("/summary", h.getSummary)
		gated.GET("/donations", h.listDonations)
		gated.GET("/donations/:recordID/receipt", h.getReceipt)
		gated.POST("/adjustments", h.createAdjustment)
		gated.GET("/stream", h.streamAdmin)
	}
}

// getMe godoc
// @Summary Admin gate check
// @Description Reports whether the signed-in user is an active administrator.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminMeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/me [get]
func (h *adminHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	access, err := h.adminGate.CheckAdmin(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Admin check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Could not verify administrator access"})
		return
	}
	c.JSON(http.StatusOK, dto.AdminMeResponse{Authorized: access.Authorized, Name: access.Name})
}

// getSummary godoc
// @Summary Campaign overview
// @Description Total, record count and unique donors.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminSummaryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/summary [get]
func (h *adminHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.ledgerService.GetAdminSummary(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, msgAdminLoadFailed)
		return
	}
	c.JSON(http.StatusOK, dto.ToAdminSummaryResponse(*summary))
}

// listDonations godoc
// @Summary List ledger records
// @Description Newest first, paginated with nextToken.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/donations [get]
func (h *adminHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	records, next, err := h.ledgerService.ListAdminPage(c.Request.Context(), limit, c.Query("nextToken"))
	if err != nil {
		writeServiceError(c, logger, err, msgAdminLoadFailed)
		return
	}
	c.JSON(http.StatusOK, dto.ListRecordsResponse{
		Records:   dto.ToAdminRecordResponses(records, h.now()),
		NextToken: next,
	})
}

// getReceipt godoc
// @Summary Open a payment proof
// @Description Returns a time-limited URL for the proof attached to a record.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.SignedURLResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/donations/{recordID}/receipt [get]
func (h *adminHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	signedURL, expiresAt, err := h.ledgerService.GetReceiptURL(c.Request.Context(), recordID)
	if err != nil {
		logger.Warn("Failed to open receipt", slog.String("record_id", recordID), slog.String("error", err.Error()))
		writeServiceError(c, logger, err, msgReceiptFailed)
		return
	}
	c.JSON(http.StatusOK, dto.SignedURLResponse{SignedURL: signedURL, ExpiresAt: expiresAt})
}

// createAdjustment godoc
// @Summary Adjust the total
// @Description Appends a signed correction record. Past records are never edited.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adjustment body dto.AdjustmentRequest true "Direction and amount"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/adjustments [post]
func (h *adminHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind adjustment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
		return
	}

	record, err := h.ledgerService.ApplyAdjustment(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, msgAdjustmentFailed)
		return
	}

	logger.Info("Adjustment applied", slog.String("admin", middleware.GetAdminNameFromContext(c)), slog.String("record_id", record.ID), slog.String("amount", record.Amount.String()))
	middleware.PosthogEvent(c, h.analytics, "adjustment_applied", map[string]any{
		"direction": req.Direction,
		"amount":    record.Amount.InexactFloat64(),
	})
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record, h.now()))
}

// streamAdmin godoc
// @Summary Live admin panel
// @Description Server-sent events. Emits "summary" and "records" on connect and after every ledger change.
// @Tags admin
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /admin/stream [get]
func (h *adminHandler) streamAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	prepareEventStream(c)

	err := realtime.Watch(c.Request.Context(), h.hub, "admin-panel", func(ctx context.Context) error {
		summary, err := h.ledgerService.GetAdminSummary(ctx)
		if err != nil {
			logger.Warn("Live admin summary refresh failed", slog.String("error", err.Error()))
			c.SSEvent("error", ErrorResponse{Error: msgAdminLoadFailed})
			c.Writer.Flush()
			return nil
		}
		records, next, err := h.ledgerService.ListAdminPage(ctx, 0, "")
		if err != nil {
			logger.Warn("Live admin records refresh failed", slog.String("error", err.Error()))
			c.SSEvent("error", ErrorResponse{Error: msgAdminLoadFailed})
			c.Writer.Flush()
			return nil
		}
		c.SSEvent("summary", dto.ToAdminSummaryResponse(*summary))
		c.SSEvent("records", dto.ListRecordsResponse{Records: dto.ToAdminRecordResponses(records, h.now()), NextToken: next})
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		logger.Warn("Admin panel stream ended", slog.String("error", err.Error()))
	}
}
