package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turma62/fundraiser/internal/apperrors"
)

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeServiceError maps a service error onto a status code. fallback is the
// user-facing message for storage and unexpected failures.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		logger.Info("Request rejected by validation", slog.String("code", vErr.Code))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Code: vErr.Code})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Info("Request rejected by validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Requisição inválida"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Não encontrado"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Não autorizado"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error("Storage failure", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: fallback})
	default:
		logger.Error("Unexpected failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
