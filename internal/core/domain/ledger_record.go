package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod tags the channel a record was paid through.
type PaymentMethod string

const (
	MethodPix PaymentMethod = "pix"
)

// RecordKind separates real donations from corrections and the bootstrap row.
type RecordKind string

const (
	KindDonation   RecordKind = "donation"
	KindAdjustment RecordKind = "adjustment"
	KindSeed       RecordKind = "seed"
)

// AnonymousDonor is stored when the donor leaves the name blank.
const AnonymousDonor = "Anônimo"

// AdjustmentDirection is the sign of a manual correction.
type AdjustmentDirection string

const (
	AdjustAdd      AdjustmentDirection = "add"
	AdjustSubtract AdjustmentDirection = "subtract"
)

// Label returns the donor-name label written on adjustment records.
func (d AdjustmentDirection) Label() string {
	if d == AdjustSubtract {
		return "Ajuste Manual (Subtração)"
	}
	return "Ajuste Manual (Adição)"
}

// Valid reports whether d is one of the known directions.
func (d AdjustmentDirection) Valid() bool {
	return d == AdjustAdd || d == AdjustSubtract
}

// Apply signs a positive magnitude according to the direction.
func (d AdjustmentDirection) Apply(magnitude decimal.Decimal) decimal.Decimal {
	if d == AdjustSubtract {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}

// LedgerRecord is one persisted donation or adjustment entry. Records are append-only.
type LedgerRecord struct {
	ID         string          `json:"id"`
	DonorName  string          `json:"donorName"`
	Amount     decimal.Decimal `json:"amount"` // Signed; never zero
	Method     PaymentMethod   `json:"method"`
	ProofURL   *string         `json:"proofUrl,omitempty"`
	Kind       RecordKind      `json:"kind"`
	OccurredAt time.Time       `json:"occurredAt"`
	AuditFields
}

// HasProof reports whether a proof-of-payment reference is attached.
func (r LedgerRecord) HasProof() bool {
	return r.ProofURL != nil && *r.ProofURL != ""
}

// IsContribution reports whether the record counts as a real participant contribution.
func (r LedgerRecord) IsContribution() bool {
	return r.Kind == KindDonation
}
