package repositories

import (
	"context"
	"time"

	"github.com/turma62/fundraiser/internal/core/domain"
)

// RecordCursor positions a page in the admin listing (created_at desc, id desc).
type RecordCursor struct {
	CreatedAt time.Time
	ID        string
}

// LedgerReader defines read operations for ledger records
type LedgerReader interface {
	// ListRecords returns the full snapshot, newest first by creation time.
	ListRecords(ctx context.Context) ([]domain.LedgerRecord, error)

	// ListRecent returns the latest records by occurrence time.
	ListRecent(ctx context.Context, limit int) ([]domain.LedgerRecord, error)

	// ListPage returns up to limit records strictly after the cursor (nil for the first page).
	ListPage(ctx context.Context, limit int, after *RecordCursor) ([]domain.LedgerRecord, error)

	// CountRecords is a count-only projection of the collection.
	CountRecords(ctx context.Context) (int, error)

	// FindRecordByID retrieves a single record.
	FindRecordByID(ctx context.Context, id string) (*domain.LedgerRecord, error)
}

// LedgerWriter defines write operations for ledger records.
// The ledger is append-only: there is no update or delete.
type LedgerWriter interface {
	InsertRecord(ctx context.Context, record domain.LedgerRecord) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
