package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/dto"
	"github.com/turma62/fundraiser/internal/utils"
	"github.com/turma62/fundraiser/internal/utils/accounting"
	"github.com/turma62/fundraiser/internal/utils/pagination"
)

const (
	defaultMaxProofBytes = 5 * 1024 * 1024
	defaultHistoryLimit  = 5
	maxPageLimit         = 100
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	assets     portsrepo.AssetStore
	validate   *validator.Validate

	goal          decimal.Decimal
	proofRequired bool
	maxProofBytes int64
	historyLimit  int
	signedURLTTL  time.Duration
	now           func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithGoal sets the campaign goal used for the progress percentage.
func WithGoal(goal decimal.Decimal) LedgerServiceOption {
	return func(s *ledgerService) {
		s.goal = goal
	}
}

// WithProofPolicy sets whether donations need a proof and how large it may be.
func WithProofPolicy(required bool, maxBytes int64) LedgerServiceOption {
	return func(s *ledgerService) {
		s.proofRequired = required
		if maxBytes > 0 {
			s.maxProofBytes = maxBytes
		}
	}
}

// WithHistoryLimit sets the default length of the public history.
func WithHistoryLimit(limit int) LedgerServiceOption {
	return func(s *ledgerService) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// WithSignedURLTTL sets how long receipt URLs stay valid.
func WithSignedURLTTL(ttl time.Duration) LedgerServiceOption {
	return func(s *ledgerService) {
		if ttl > 0 {
			s.signedURLTTL = ttl
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, assets portsrepo.AssetStore, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:    repo,
		assets:        assets,
		validate:      validator.New(),
		goal:          decimal.NewFromInt(5000),
		proofRequired: true,
		maxProofBytes: defaultMaxProofBytes,
		historyLimit:  defaultHistoryLimit,
		signedURLTTL:  time.Hour,
		now:           time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) SubmitDonation(ctx context.Context, req dto.SubmitDonationRequest) (*domain.LedgerRecord, error) {
	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		s.LogDebug(ctx, "Donation rejected: invalid amount", slog.String("amount", req.Amount))
		return nil, err
	}

	proof := req.Proof
	if proof != nil && proof.Size == 0 && len(proof.Data) == 0 {
		// an empty file input is the same as no file
		proof = nil
	}
	if s.proofRequired && proof == nil {
		return nil, apperrors.NewValidationError(apperrors.CodeProofRequired, "Por favor, anexe o comprovante de pagamento")
	}
	if proof != nil {
		if err := s.validateProof(proof); err != nil {
			s.LogDebug(ctx, "Donation rejected: invalid proof",
				slog.String("content_type", proof.ContentType),
				slog.Int64("size", proofSize(proof)))
			return nil, err
		}
	}

	if err := s.validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return nil, apperrors.NewValidationError(apperrors.CodeDonorNameTooLong, "O nome informado é muito longo")
		}
		return nil, fmt.Errorf("failed to validate donation: %w", err)
	}

	now := s.now()

	var proofURL *string
	if proof != nil {
		name, err := proofObjectName(now, proof.Filename)
		if err != nil {
			s.LogError(ctx, err, "Failed to generate proof object name")
			return nil, err
		}
		key, err := s.assets.Upload(ctx, name, proof.ContentType, proof.Data)
		if err != nil {
			s.LogError(ctx, err, "Failed to upload proof", slog.String("object", name))
			return nil, apperrors.NewStorageError("upload proof", err)
		}
		u := s.assets.PublicURL(key)
		proofURL = &u
	}

	record := domain.LedgerRecord{
		ID:         uuid.NewString(),
		DonorName:  donorNameOrAnonymous(req.DonorName),
		Amount:     amount,
		Method:     domain.MethodPix,
		ProofURL:   proofURL,
		Kind:       domain.KindDonation,
		OccurredAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
		},
	}

	if err := s.ledgerRepo.InsertRecord(ctx, record); err != nil {
		// an uploaded proof is left orphaned here; it is not cleaned up
		s.LogError(ctx, err, "Failed to insert donation record", slog.String("record_id", record.ID))
		return nil, apperrors.NewStorageError("insert donation", err)
	}

	s.LogInfo(ctx, "Donation recorded",
		slog.String("record_id", record.ID),
		slog.String("amount", record.Amount.StringFixed(2)),
		slog.Bool("has_proof", record.HasProof()))
	return &record, nil
}

func (s *ledgerService) validateProof(proof *domain.ProofFile) error {
	if !strings.HasPrefix(strings.ToLower(proof.ContentType), "image/") {
		return apperrors.NewValidationError(apperrors.CodeUnsupportedFileType, "Por favor, envie apenas arquivos de imagem")
	}
	if proofSize(proof) > s.maxProofBytes {
		return apperrors.NewValidationError(apperrors.CodeFileTooLarge,
			fmt.Sprintf("O arquivo deve ter no máximo %dMB", s.maxProofBytes/(1024*1024)))
	}
	return nil
}

func proofSize(proof *domain.ProofFile) int64 {
	if n := int64(len(proof.Data)); n > proof.Size {
		return n
	}
	return proof.Size
}

var safeExt = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// proofObjectName is "<unix millis>-<random><original extension>".
func proofObjectName(now time.Time, filename string) (string, error) {
	suffix, err := utils.RandomHex(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate proof name: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !safeExt.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext), nil
}

func donorNameOrAnonymous(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return domain.AnonymousDonor
}

func (s *ledgerService) ApplyAdjustment(ctx context.Context, req dto.AdjustmentRequest, adminUserID string) (*domain.LedgerRecord, error) {
	direction := domain.AdjustmentDirection(strings.ToLower(strings.TrimSpace(req.Direction)))
	if !direction.Valid() {
		return nil, apperrors.NewValidationError(apperrors.CodeDirectionInvalid, "Selecione adicionar ou subtrair")
	}

	magnitude, err := parsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := domain.LedgerRecord{
		ID:         uuid.NewString(),
		DonorName:  direction.Label(),
		Amount:     direction.Apply(magnitude),
		Method:     domain.MethodPix,
		Kind:       domain.KindAdjustment,
		OccurredAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: adminUserID,
		},
	}

	if err := s.ledgerRepo.InsertRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to insert adjustment record", slog.String("admin_user_id", adminUserID))
		return nil, apperrors.NewStorageError("insert adjustment", err)
	}

	s.LogInfo(ctx, "Manual adjustment recorded",
		slog.String("record_id", record.ID),
		slog.String("direction", string(direction)),
		slog.String("amount", record.Amount.StringFixed(2)),
		slog.String("admin_user_id", adminUserID))
	return &record, nil
}

// seedDonorName labels the opening balance record.
const seedDonorName = "Saldo inicial"

func (s *ledgerService) SeedOpeningBalance(ctx context.Context, amount decimal.Decimal) (bool, error) {
	if !amount.Round(2).IsPositive() {
		return false, nil
	}
	n, err := s.ledgerRepo.CountRecords(ctx)
	if err != nil {
		return false, apperrors.NewStorageError("count records", err)
	}
	if n > 0 {
		return false, nil
	}

	now := s.now()
	record := domain.LedgerRecord{
		ID:          uuid.NewString(),
		DonorName:   seedDonorName,
		Amount:      amount.Round(2),
		Method:      domain.MethodPix,
		Kind:        domain.KindSeed,
		OccurredAt:  now,
		AuditFields: domain.AuditFields{CreatedAt: now},
	}
	if err := s.ledgerRepo.InsertRecord(ctx, record); err != nil {
		return false, apperrors.NewStorageError("insert seed", err)
	}
	s.LogInfo(ctx, "Opening balance seeded", slog.String("amount", record.Amount.StringFixed(2)))
	return true, nil
}

func (s *ledgerService) snapshot(ctx context.Context) ([]domain.LedgerRecord, error) {
	records, err := s.ledgerRepo.ListRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot")
		return nil, apperrors.NewStorageError("list records", err)
	}
	return records, nil
}

func (s *ledgerService) GetCampaignSummary(ctx context.Context) (*domain.CampaignSummary, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := accounting.BuildCampaignSummary(records, s.goal)
	return &summary, nil
}

func (s *ledgerService) GetAdminSummary(ctx context.Context) (*domain.AdminSummary, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := accounting.BuildAdminSummary(records)
	return &summary, nil
}

func (s *ledgerService) ListHistory(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	records, err := s.ledgerRepo.ListRecent(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent records", slog.Int("limit", limit))
		return nil, apperrors.NewStorageError("list recent records", err)
	}
	if records == nil {
		records = []domain.LedgerRecord{}
	}
	return records, nil
}

func (s *ledgerService) ListAdminPage(ctx context.Context, limit int, nextToken string) ([]domain.LedgerRecord, *string, error) {
	if limit <= 0 || limit > maxPageLimit {
		limit = maxPageLimit
	}

	var cursor *portsrepo.RecordCursor
	if nextToken != "" {
		createdAt, id, err := pagination.DecodeRecordToken(nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.RecordCursor{CreatedAt: createdAt, ID: id}
	}

	// one extra row tells us whether another page exists
	records, err := s.ledgerRepo.ListPage(ctx, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list admin page", slog.Int("limit", limit))
		return nil, nil, apperrors.NewStorageError("list records page", err)
	}

	var next *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeRecordToken(last.CreatedAt, last.ID)
		next = &token
	}
	if records == nil {
		records = []domain.LedgerRecord{}
	}
	return records, next, nil
}

func (s *ledgerService) GetReceiptURL(ctx context.Context, recordID string) (string, time.Time, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return "", time.Time{}, fmt.Errorf("record %q: %w", recordID, apperrors.ErrNotFound)
	}
	record, err := s.ledgerRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, err
		}
		s.LogError(ctx, err, "Failed to load record for receipt", slog.String("record_id", recordID))
		return "", time.Time{}, apperrors.NewStorageError("find record", err)
	}
	if !record.HasProof() {
		return "", time.Time{}, fmt.Errorf("record %s has no proof: %w", recordID, apperrors.ErrNotFound)
	}

	name := objectNameFromURL(*record.ProofURL)
	signed, expiresAt, err := s.assets.CreateSignedURL(ctx, name, s.signedURLTTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign receipt URL", slog.String("record_id", recordID))
		return "", time.Time{}, apperrors.NewStorageError("sign receipt url", err)
	}
	return signed, expiresAt, nil
}

// objectNameFromURL is the last path segment of a stored proof URL.
func objectNameFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(raw)
}
