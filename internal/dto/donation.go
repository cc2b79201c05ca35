package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/utils"
)

// SubmitDonationRequest is the donor form. Amount stays a raw string so the
// service can report "valor inválido" the same way for every malformed input.
type SubmitDonationRequest struct {
	DonorName string            `form:"donorName" validate:"max=120"`
	Amount    string            `form:"amount"`
	Proof     *domain.ProofFile `form:"-"`
}

// AdjustmentRequest is the admin "Ajustar Total" form.
type AdjustmentRequest struct {
	Direction string `json:"direction"`
	Amount    string `json:"amount"`
}

// RecordResponse defines the data returned for a ledger record.
type RecordResponse struct {
	ID              string          `json:"id"`
	DonorName       string          `json:"donorName"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	Method          string          `json:"method"`
	Kind            string          `json:"kind"`
	HasProof        bool            `json:"hasProof"`
	OccurredAt      time.Time       `json:"occurredAt"`
	CreatedAt       time.Time       `json:"createdAt"`
	TimeAgo         string          `json:"timeAgo"`
}

// ToRecordResponse converts a domain record; timeAgo is relative to now.
func ToRecordResponse(r *domain.LedgerRecord, now time.Time) RecordResponse {
	return RecordResponse{
		ID:              r.ID,
		DonorName:       r.DonorName,
		Amount:          r.Amount,
		AmountFormatted: utils.FormatCurrency(r.Amount),
		Method:          string(r.Method),
		Kind:            string(r.Kind),
		HasProof:        r.HasProof(),
		OccurredAt:      r.OccurredAt,
		CreatedAt:       r.CreatedAt,
		TimeAgo:         utils.FormatRelativeTime(r.OccurredAt, now),
	}
}

// ToRecordResponses converts a slice, never returning nil.
func ToRecordResponses(records []domain.LedgerRecord, now time.Time) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i := range records {
		res[i] = ToRecordResponse(&records[i], now)
	}
	return res
}

// ToAdminRecordResponses is ToRecordResponses with timeAgo measured from creation,
// which is what the admin table shows.
func ToAdminRecordResponses(records []domain.LedgerRecord, now time.Time) []RecordResponse {
	res := ToRecordResponses(records, now)
	for i := range res {
		res[i].TimeAgo = utils.FormatRelativeTime(records[i].CreatedAt, now)
	}
	return res
}

// ListRecordsResponse wraps a page of the admin listing.
type ListRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// HistoryResponse wraps the public "Últimas Doações" list.
type HistoryResponse struct {
	Records []RecordResponse `json:"records"`
}

// SignedURLResponse is returned when an admin opens a receipt.
type SignedURLResponse struct {
	SignedURL string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
