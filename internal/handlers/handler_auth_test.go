package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/dto"
	"github.com/turma62/fundraiser/internal/handlers"
	"github.com/turma62/fundraiser/internal/middleware"
)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockAuth   *MockAuthService
	mockGoogle *MockGoogleOAuthService
	mockGate   *MockAdminGate
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAuth = new(MockAuthService)
	suite.mockGoogle = new(MockGoogleOAuthService)
	suite.mockGate = new(MockAdminGate)

	handlers.RegisterAuthRoutes(suite.router.Group("/api/v1"), handlers.AuthRouteDeps{
		JWTSecret:   testJWTSecret,
		Auth:        suite.mockAuth,
		GoogleOAuth: suite.mockGoogle,
		AdminGate:   suite.mockGate,
	})
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	expires := time.Now().Add(12 * time.Hour).UTC().Truncate(time.Second)
	suite.mockAuth.On("Login", mock.Anything, "admin@turma62.com", "s3cret").Return("session-token", expires, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", `{"email":"admin@turma62.com","password":"s3cret"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("session-token", resp.Token)
	suite.True(resp.ExpiresAt.Equal(expires))
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongCredentials() {
	suite.mockAuth.On("Login", mock.Anything, "admin@turma62.com", "nope").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/api/v1/auth/login", `{"email":"admin@turma62.com","password":"nope"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.postJSON("/api/v1/auth/login", `{"email":"not-an-email"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	lim, err := middleware.NewMemoryLimiter("1-M")
	suite.Require().NoError(err)
	router := gin.New()
	handlers.RegisterAuthRoutes(router.Group("/api/v1"), handlers.AuthRouteDeps{
		JWTSecret:    testJWTSecret,
		Auth:         suite.mockAuth,
		LoginLimiter: lim,
	})
	suite.mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	var codes []int
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"a@b.com","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	suite.Equal([]int{http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func (suite *AuthHandlerTestSuite) TestGetSession_Success() {
	userID := uuid.NewString()
	suite.mockAuth.On("GetPrincipal", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Email: "admin@turma62.com", Name: "Comissão"}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SessionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.Equal("admin@turma62.com", resp.Email)
}

func (suite *AuthHandlerTestSuite) TestGetSession_UserGone() {
	userID := uuid.NewString()
	suite.mockAuth.On("GetPrincipal", mock.Anything, userID).
		Return(nil, fmt.Errorf("failed to get principal: %w", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestGetSession_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogout_ForgetsAdminDecision() {
	userID := uuid.NewString()
	suite.mockGate.On("Forget", userID).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockGate.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestGoogleLogin_SetsStateAndRedirects() {
	suite.mockGoogle.On("GenerateStateString", mock.Anything).Return("state-123", nil).Once()
	suite.mockGoogle.On("GetGoogleLoginURL", mock.Anything, "state-123").
		Return("https://accounts.google.com/o/oauth2/auth?state=state-123").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://accounts.google.com/o/oauth2/auth?state=state-123", w.Header().Get("Location"))
	var stateCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "oauth_state" {
			stateCookie = c
		}
	}
	suite.Require().NotNil(stateCookie)
	suite.Equal("state-123", stateCookie.Value)
	suite.True(stateCookie.HttpOnly)
}

func (suite *AuthHandlerTestSuite) TestExchangeCode_StateMismatch() {
	w := suite.postJSON("/api/v1/auth/google/exchange-code", `{"code":"c","state":"other"}`,
		&http.Cookie{Name: "oauth_state", Value: "state-123"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGoogle.AssertNotCalled(suite.T(), "ResolveUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestExchangeCode_Success() {
	user := &domain.User{UserID: uuid.NewString(), Email: "admin@turma62.com"}
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockGoogle.On("ResolveUser", mock.Anything, "auth-code").Return(user, nil).Once()
	suite.mockAuth.On("IssueToken", mock.Anything, user).Return("session-token", expires, nil).Once()

	w := suite.postJSON("/api/v1/auth/google/exchange-code", `{"code":"auth-code","state":"state-123"}`,
		&http.Cookie{Name: "oauth_state", Value: "state-123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("session-token", resp.Token)
	suite.mockGoogle.AssertExpectations(suite.T())
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestExchangeCode_UnregisteredUser() {
	suite.mockGoogle.On("ResolveUser", mock.Anything, "auth-code").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/api/v1/auth/google/exchange-code", `{"code":"auth-code","state":"s"}`,
		&http.Cookie{Name: "oauth_state", Value: "s"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuth.AssertNotCalled(suite.T(), "IssueToken", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
