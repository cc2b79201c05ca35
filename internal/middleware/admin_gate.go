package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turma62/fundraiser/internal/core/ports/services"
)

// AdminGate lets the request through only when the authenticated principal is an
// active administrator. It must run after AuthMiddleware.
func AdminGate(gate services.AdminGateSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		access, err := gate.CheckAdmin(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Admin check failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Could not verify administrator access"})
			return
		}
		if !access.Authorized {
			// privileged content stays hidden; no detail on why
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set(string(adminNameKey), access.Name)
		c.Next()
	}
}
