package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/dto"
)

// DonationSvc is the public donation submission flow.
type DonationSvc interface {
	// SubmitDonation validates, uploads the proof (if any) and appends one record.
	SubmitDonation(ctx context.Context, req dto.SubmitDonationRequest) (*domain.LedgerRecord, error)
}

// AdjustmentSvc is the privileged manual adjustment flow.
type AdjustmentSvc interface {
	// ApplyAdjustment appends a signed correction record; history is never edited.
	ApplyAdjustment(ctx context.Context, req dto.AdjustmentRequest, adminUserID string) (*domain.LedgerRecord, error)
}

// LedgerReaderSvc derives view models from a fresh snapshot of the ledger.
type LedgerReaderSvc interface {
	GetCampaignSummary(ctx context.Context) (*domain.CampaignSummary, error)
	GetAdminSummary(ctx context.Context) (*domain.AdminSummary, error)
	ListHistory(ctx context.Context, limit int) ([]domain.LedgerRecord, error)
	// ListAdminPage returns one page of the admin listing and the token of the next page, if any.
	ListAdminPage(ctx context.Context, limit int, nextToken string) ([]domain.LedgerRecord, *string, error)
	// GetReceiptURL returns a time-limited URL for the proof attached to a record.
	GetReceiptURL(ctx context.Context, recordID string) (string, time.Time, error)
}

// LedgerSeederSvc bootstraps an empty ledger.
type LedgerSeederSvc interface {
	// SeedOpeningBalance writes one seed record if the ledger is empty. It reports whether it wrote.
	SeedOpeningBalance(ctx context.Context, amount decimal.Decimal) (bool, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	DonationSvc
	AdjustmentSvc
	LedgerReaderSvc
	LedgerSeederSvc
}
