package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
)

const adminGateCacheSize = 256

// adminGateService answers "is this principal an active administrator" for every
// privileged route and view. Decisions are cached for a short TTL.
type adminGateService struct {
	BaseService
	adminRepo portsrepo.AdminReader
	cache     *expirable.LRU[string, domain.AdminAccess]
}

// NewAdminGateService creates the admin gate. A non-positive ttl disables caching.
func NewAdminGateService(adminRepo portsrepo.AdminReader, ttl time.Duration) portssvc.AdminGateSvc {
	svc := &adminGateService{adminRepo: adminRepo}
	if ttl > 0 {
		svc.cache = expirable.NewLRU[string, domain.AdminAccess](adminGateCacheSize, nil, ttl)
	}
	return svc
}

var _ portssvc.AdminGateSvc = (*adminGateService)(nil)

func (s *adminGateService) CheckAdmin(ctx context.Context, userID string) (domain.AdminAccess, error) {
	if userID == "" {
		return domain.AdminAccess{}, nil
	}
	if s.cache != nil {
		if access, ok := s.cache.Get(userID); ok {
			return access, nil
		}
	}

	admin, err := s.adminRepo.FindActiveAdmin(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			access := domain.AdminAccess{UserID: userID}
			s.remember(access)
			s.LogDebug(ctx, "Principal is not an active admin", slog.String("user_id", userID))
			return access, nil
		}
		// lookup failures are not cached so the next request retries
		s.LogError(ctx, err, "Failed to check admin status", slog.String("user_id", userID))
		return domain.AdminAccess{}, apperrors.NewStorageError("find admin", err)
	}

	access := domain.AdminAccess{UserID: userID, Authorized: admin.IsActive, Name: admin.Name}
	if !admin.IsActive {
		access.Name = ""
	}
	s.remember(access)
	return access, nil
}

func (s *adminGateService) Forget(userID string) {
	if s.cache != nil {
		s.cache.Remove(userID)
	}
}

func (s *adminGateService) remember(access domain.AdminAccess) {
	if s.cache != nil {
		s.cache.Add(access.UserID, access)
	}
}
