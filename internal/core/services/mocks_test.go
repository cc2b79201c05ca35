package services_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) InsertRecord(ctx context.Context, record domain.LedgerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListRecords(ctx context.Context) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx)
	var records []domain.LedgerRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.LedgerRecord)
	}
	return records, args.Error(1)
}

func (m *MockLedgerRepository) ListRecent(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx, limit)
	var records []domain.LedgerRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.LedgerRecord)
	}
	return records, args.Error(1)
}

func (m *MockLedgerRepository) ListPage(ctx context.Context, limit int, after *portsrepo.RecordCursor) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx, limit, after)
	var records []domain.LedgerRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.LedgerRecord)
	}
	return records, args.Error(1)
}

func (m *MockLedgerRepository) CountRecords(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) FindRecordByID(ctx context.Context, id string) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, id)
	var record *domain.LedgerRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.LedgerRecord)
	}
	return record, args.Error(1)
}

// --- Mock AssetStore ---
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, name, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) PublicURL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *MockAssetStore) CreateSignedURL(ctx context.Context, name string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, name, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAssetStore) Open(ctx context.Context, name string, token string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, name, token)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.String(1), args.Error(2)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindActiveAdmin(ctx context.Context, userID string) (*domain.AdminUser, error) {
	args := m.Called(ctx, userID)
	var admin *domain.AdminUser
	if args.Get(0) != nil {
		admin = args.Get(0).(*domain.AdminUser)
	}
	return admin, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}
