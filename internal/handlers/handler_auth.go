package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turma62/fundraiser/internal/apperrors"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/dto"
	"github.com/turma62/fundraiser/internal/middleware"
	"github.com/ulule/limiter/v3"
)

const oauthStateCookie = "oauth_state"

// ExchangeCodeRequest is the body the frontend posts after Google redirects back.
type ExchangeCodeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state" binding:"required"`
}

// authHandler handles session creation and inspection.
type authHandler struct {
	authService   portssvc.AuthSvc
	googleService portssvc.GoogleOAuthSvc
	adminGate     portssvc.AdminGateSvc
	secureCookies bool
}

// AuthRouteDeps bundles what the auth routes need.
type AuthRouteDeps struct {
	JWTSecret     string
	SecureCookies bool
	Auth          portssvc.AuthSvc
	GoogleOAuth   portssvc.GoogleOAuthSvc // nil disables the Google routes
	AdminGate     portssvc.AdminGateSvc
	LoginLimiter  *limiter.Limiter // nil disables rate limiting
}

// RegisterAuthRoutes registers /auth under rg.
func RegisterAuthRoutes(rg *gin.RouterGroup, deps AuthRouteDeps) {
	h := &authHandler{
		authService:   deps.Auth,
		googleService: deps.GoogleOAuth,
		adminGate:     deps.AdminGate,
		secureCookies: deps.SecureCookies,
	}

	auth := rg.Group("/auth")

	public := auth.Group("")
	if deps.LoginLimiter != nil {
		public.Use(middleware.RateLimit(deps.LoginLimiter))
	}
	public.POST("/login", h.login)
	if deps.GoogleOAuth != nil {
		public.GET("/google/login", h.googleLogin)
		public.POST("/google/exchange-code", h.exchangeCodeGoogle)
	}

	session := auth.Group("", middleware.AuthMiddleware(deps.JWTSecret))
	{
		session.GET("/session", h.getSession)
		session.POST("/logout", h.logout)
	}
}

// login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email e senha são obrigatórios"})
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Email ou senha inválidos"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível entrar. Tente novamente."})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// googleLogin godoc
// @Summary Start Google sign-in
// @Description Sets a CSRF state cookie and redirects to Google.
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível iniciar o login"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.GetGoogleLoginURL(c.Request.Context(), state))
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a session token
// @Description Only users already registered may sign in.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code and state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind exchange code request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required."})
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != req.State {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	user, err := h.googleService.ResolveUser(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Conta não autorizada"})
			return
		}
		logger.Error("Google sign-in failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google OAuth service."})
		return
	}

	token, expiresAt, err := h.authService.IssueToken(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível entrar. Tente novamente."})
		return
	}

	logger.Info("Google sign-in succeeded", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// getSession godoc
// @Summary Current principal
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (h *authHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	user, err := h.authService.GetPrincipal(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// token outlived its user
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Sessão inválida"})
			return
		}
		logger.Error("Failed to load session principal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load session"})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{UserID: user.UserID, Email: user.Email, Name: user.Name})
}

// logout godoc
// @Summary Sign out
// @Description Drops the cached admin decision. The client discards its token.
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok && h.adminGate != nil {
		h.adminGate.Forget(userID)
	}
	c.Status(http.StatusNoContent)
}
