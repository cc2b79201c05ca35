package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignSummary is the public aggregation shown on the donor page.
type CampaignSummary struct {
	Total        decimal.Decimal `json:"total"`
	Goal         decimal.Decimal `json:"goal"`
	Progress     decimal.Decimal `json:"progress"` // Percentage in [0, 100]
	Participants int             `json:"participants"`
}

// AdminSummary is the aggregation shown on the admin panel.
type AdminSummary struct {
	Total        decimal.Decimal `json:"total"`
	RecordCount  int             `json:"recordCount"`
	UniqueDonors int             `json:"uniqueDonors"`
}

// ChangeOp is the kind of row change the record store reported.
type ChangeOp string

const (
	ChangeInsert ChangeOp = "INSERT"
	ChangeUpdate ChangeOp = "UPDATE"
	ChangeDelete ChangeOp = "DELETE"
)

// ChangeEvent is a change notification on the ledger collection.
// Consumers treat it as a refetch trigger only; the payload is informational.
type ChangeEvent struct {
	Op         ChangeOp  `json:"op"`
	RecordID   string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ProofFile is an uploaded proof-of-payment image held in memory.
type ProofFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
