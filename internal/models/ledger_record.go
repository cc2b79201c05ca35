package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is the row shape of the ledger_records table.
type LedgerRecord struct {
	ID         string          `db:"id"`
	DonorName  string          `db:"donor_name"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	ProofURL   sql.NullString  `db:"proof_url"`
	Kind       string          `db:"kind"`
	OccurredAt time.Time       `db:"occurred_at"`
	CreatedAt  time.Time       `db:"created_at"`
	CreatedBy  sql.NullString  `db:"created_by"`
}
