package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/dto"
	"github.com/turma62/fundraiser/internal/middleware"
	"github.com/turma62/fundraiser/internal/platform/config"
	"github.com/turma62/fundraiser/internal/realtime"
	"github.com/turma62/fundraiser/internal/utils"
	"github.com/ulule/limiter/v3"
)

const (
	msgDonationFailed  = "Erro ao registrar doação. Tente novamente."
	msgDonationSuccess = "Doação registrada com sucesso! Muito obrigado! 🎉"
	msgLedgerFailed    = "Não foi possível carregar os dados da campanha."
)

// multipart overhead allowed on top of the proof size limit
const formOverheadBytes = 1 << 20

// donationBodyLimit caps the whole form at twice the proof limit. Oversized
// proofs below it still reach the service, which reports the first failing
// check in order; readProof keeps at most maxProofBytes+1 in memory.
func donationBodyLimit(maxProofBytes int64) int64 {
	return 2*maxProofBytes + formOverheadBytes
}

// ledgerHandler serves the public donor page.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	hub           realtime.Subscriber
	cfg           *config.Config
	analytics     *utils.PosthogClientWrapper
	now           func() time.Time
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade, hub realtime.Subscriber, cfg *config.Config, analytics *utils.PosthogClientWrapper) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		hub:           hub,
		cfg:           cfg,
		analytics:     analytics,
		now:           time.Now,
	}
}

// RegisterLedgerRoutes registers the public campaign routes. donationLimiter and analytics may be nil.
func RegisterLedgerRoutes(rg *gin.RouterGroup, cfg *config.Config, ledgerService portssvc.LedgerSvcFacade, hub realtime.Subscriber, donationLimiter *limiter.Limiter, analytics *utils.PosthogClientWrapper) {
	h := newLedgerHandler(ledgerService, hub, cfg, analytics)

	campaign := rg.Group("/campaign")
	{
		campaign.GET("", h.getCampaign)
		campaign.GET("/pix-qr.png", h.getPixQRCode)
	}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/summary", h.getSummary)
		ledger.GET("/history", h.getHistory)
		ledger.GET("/stream", h.streamLedger)
	}

	donations := rg.Group("/donations")
	if donationLimiter != nil {
		donations.Use(middleware.RateLimit(donationLimiter))
	}
	donations.POST("", h.submitDonation)
}

// getCampaign godoc
// @Summary Campaign info
// @Description Returns the campaign name, goal, PIX key and proof policy.
// @Tags campaign
// @Produce json
// @Success 200 {object} dto.CampaignResponse
// @Router /campaign [get]
func (h *ledgerHandler) getCampaign(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CampaignResponse{
		Name:          h.cfg.CampaignName,
		Goal:          h.cfg.CampaignGoal,
		GoalFormatted: utils.FormatCurrency(h.cfg.CampaignGoal),
		PixKey:        h.cfg.PixKey,
		ProofRequired: h.cfg.ProofRequired,
		MaxProofBytes: h.cfg.MaxProofBytes,
	})
}

// getPixQRCode godoc
// @Summary PIX key QR code
// @Description PNG QR code encoding the campaign PIX key.
// @Tags campaign
// @Produce png
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /campaign/pix-qr.png [get]
func (h *ledgerHandler) getPixQRCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	png, err := qrcode.Encode(h.cfg.PixKey, qrcode.Medium, 256)
	if err != nil {
		logger.Error("Failed to encode PIX QR code", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível gerar o QR code"})
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}

// getSummary godoc
// @Summary Campaign progress
// @Description Total raised, goal, progress percentage and participant count.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 503 {object} ErrorResponse
// @Router /ledger/summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.ledgerService.GetCampaignSummary(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, msgLedgerFailed)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(*summary))
}

// getHistory godoc
// @Summary Recent donations
// @Description Most recent ledger records by occurrence time.
// @Tags ledger
// @Produce json
// @Param limit query int false "Number of records"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /ledger/history [get]
func (h *ledgerHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	records, err := h.ledgerService.ListHistory(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, logger, err, msgLedgerFailed)
		return
	}
	c.JSON(http.StatusOK, dto.HistoryResponse{Records: dto.ToRecordResponses(records, h.now())})
}

// streamLedger godoc
// @Summary Live donor page
// @Description Server-sent events. Emits "summary" and "history" on connect and after every ledger change.
// @Tags ledger
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /ledger/stream [get]
func (h *ledgerHandler) streamLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	prepareEventStream(c)

	err := realtime.Watch(c.Request.Context(), h.hub, "donor-page", func(ctx context.Context) error {
		summary, err := h.ledgerService.GetCampaignSummary(ctx)
		if err != nil {
			// keep the last rendered state; the next change retries
			logger.Warn("Live summary refresh failed", slog.String("error", err.Error()))
			c.SSEvent("error", ErrorResponse{Error: msgLedgerFailed})
			c.Writer.Flush()
			return nil
		}
		records, err := h.ledgerService.ListHistory(ctx, 0)
		if err != nil {
			logger.Warn("Live history refresh failed", slog.String("error", err.Error()))
			c.SSEvent("error", ErrorResponse{Error: msgLedgerFailed})
			c.Writer.Flush()
			return nil
		}
		c.SSEvent("summary", dto.ToSummaryResponse(*summary))
		c.SSEvent("history", dto.HistoryResponse{Records: dto.ToRecordResponses(records, h.now())})
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		logger.Warn("Donor page stream ended", slog.String("error", err.Error()))
	}
}

// submitDonation godoc
// @Summary Register a donation
// @Description Multipart form with donorName (optional), amount and proof (image).
// @Tags donations
// @Accept multipart/form-data
// @Produce json
// @Param donorName formData string false "Donor name, blank for anonymous"
// @Param amount formData string true "Amount in BRL"
// @Param proof formData file false "Payment proof image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /donations [post]
func (h *ledgerHandler) submitDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, donationBodyLimit(h.cfg.MaxProofBytes))

	var req dto.SubmitDonationRequest
	if err := c.ShouldBind(&req); err != nil {
		if isBodyTooLarge(err) {
			writeServiceError(c, logger, apperrors.NewValidationError(apperrors.CodeFileTooLarge, "O arquivo excede o tamanho máximo permitido"), msgDonationFailed)
			return
		}
		logger.Warn("Failed to bind donation form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Formulário inválido"})
		return
	}

	proof, err := h.readProof(c)
	if err != nil {
		if isBodyTooLarge(err) {
			writeServiceError(c, logger, apperrors.NewValidationError(apperrors.CodeFileTooLarge, "O arquivo excede o tamanho máximo permitido"), msgDonationFailed)
			return
		}
		logger.Warn("Failed to read proof upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Não foi possível ler o comprovante"})
		return
	}
	req.Proof = proof

	record, err := h.ledgerService.SubmitDonation(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, msgDonationFailed)
		return
	}

	logger.Info("Donation registered", slog.String("record_id", record.ID), slog.String("amount", record.Amount.String()))
	middleware.PosthogEvent(c, h.analytics, "donation_registered", map[string]any{
		"amount":    record.Amount.InexactFloat64(),
		"has_proof": record.HasProof(),
		"anonymous": record.DonorName == domain.AnonymousDonor,
	})
	c.JSON(http.StatusCreated, gin.H{
		"message": msgDonationSuccess,
		"record":  dto.ToRecordResponse(record, h.now()),
	})
}

// readProof returns nil when no file was sent. Reading stops one byte past the
// limit so the service can still report the oversize.
func (h *ledgerHandler) readProof(c *gin.Context) (*domain.ProofFile, error) {
	header, err := c.FormFile("proof")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return openProof(header, h.cfg.MaxProofBytes)
}

func openProof(header *multipart.FileHeader, maxBytes int64) (*domain.ProofFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, err
	}
	return &domain.ProofFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// queryLimit reads ?limit=; 0 means the service default.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit query parameter"})
		return 0, false
	}
	return limit, true
}

func prepareEventStream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
}
