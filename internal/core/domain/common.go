package domain

import "time"

// AuditFields holds creation information for domain entities.
// Ledger records are never updated, so only the creation side is tracked.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty"` // UserID Reference, empty for public submissions
}
