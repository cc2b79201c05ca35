package handlers_test

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/turma62/fundraiser/internal/core/domain"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/dto"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) SubmitDonation(ctx context.Context, req dto.SubmitDonationRequest) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRecord), args.Error(1)
}

func (m *MockLedgerService) ApplyAdjustment(ctx context.Context, req dto.AdjustmentRequest, adminUserID string) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, req, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRecord), args.Error(1)
}

func (m *MockLedgerService) GetCampaignSummary(ctx context.Context) (*domain.CampaignSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CampaignSummary), args.Error(1)
}

func (m *MockLedgerService) GetAdminSummary(ctx context.Context) (*domain.AdminSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminSummary), args.Error(1)
}

func (m *MockLedgerService) ListHistory(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRecord), args.Error(1)
}

func (m *MockLedgerService) ListAdminPage(ctx context.Context, limit int, nextToken string) ([]domain.LedgerRecord, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerRecord), next, args.Error(2)
}

func (m *MockLedgerService) GetReceiptURL(ctx context.Context, recordID string) (string, time.Time, error) {
	args := m.Called(ctx, recordID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockLedgerService) SeedOpeningBalance(ctx context.Context, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, amount)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock AdminGate ---
type MockAdminGate struct {
	mock.Mock
}

func (m *MockAdminGate) CheckAdmin(ctx context.Context, userID string) (domain.AdminAccess, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.AdminAccess), args.Error(1)
}

func (m *MockAdminGate) Forget(userID string) {
	m.Called(userID)
}

var _ portssvc.AdminGateSvc = (*MockAdminGate)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) GetPrincipal(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuthService) ResolveUser(ctx context.Context, code string) (*domain.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.GoogleOAuthSvc = (*MockGoogleOAuthService)(nil)

// generateTestToken creates a session JWT signed with testJWTSecret.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fundraiser-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

func strPtr(s string) *string {
	return &s
}
