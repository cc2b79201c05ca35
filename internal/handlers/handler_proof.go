package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turma62/fundraiser/internal/apperrors"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	"github.com/turma62/fundraiser/internal/middleware"
)

// proofHandler serves stored proofs behind signed URLs.
type proofHandler struct {
	assets portsrepo.AssetStore
	bucket string
}

// RegisterProofRoutes registers GET /proofs/:bucket/:name.
func RegisterProofRoutes(r gin.IRouter, assets portsrepo.AssetStore, bucket string) {
	h := &proofHandler{assets: assets, bucket: bucket}
	r.GET("/proofs/:bucket/:name", h.getProof)
}

// getProof godoc
// @Summary Download a payment proof
// @Description Requires the token issued with the signed URL.
// @Tags proofs
// @Produce image/png,image/jpeg
// @Param bucket path string true "Bucket"
// @Param name path string true "Object name"
// @Param token query string true "Signed URL token"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /proofs/{bucket}/{name} [get]
func (h *proofHandler) getProof(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if c.Param("bucket") != h.bucket {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Não encontrado"})
		return
	}
	name := c.Param("name")

	rc, contentType, err := h.assets.Open(c.Request.Context(), name, c.Query("token"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Link expirado ou inválido"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Não encontrado"})
		default:
			logger.Error("Failed to open proof", slog.String("name", name), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgReceiptFailed})
		}
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "private, no-store")
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Warn("Proof stream interrupted", slog.String("name", name), slog.String("error", err.Error()))
	}
}
