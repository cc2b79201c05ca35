package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	"github.com/turma62/fundraiser/internal/models"
	"github.com/turma62/fundraiser/internal/utils/mapping"
)

const ledgerColumns = `id, donor_name, amount, method, proof_url, kind, occurred_at, created_at, created_by`

// PgxLedgerRepository stores ledger records. It only ever inserts.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) InsertRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := mapping.ToModelLedgerRecord(record)
	query := `
		INSERT INTO ledger_records (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.DonorName,
		m.Amount,
		m.Method,
		m.ProofURL,
		m.Kind,
		m.OccurredAt,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return mapWriteError("failed to insert ledger record", err)
	}
	return nil
}

func (r *PgxLedgerRepository) ListRecords(ctx context.Context) ([]domain.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_records ORDER BY created_at DESC, id DESC;`
	return r.queryRecords(ctx, "list ledger records", query)
}

func (r *PgxLedgerRepository) ListRecent(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_records ORDER BY occurred_at DESC, id DESC LIMIT $1;`
	return r.queryRecords(ctx, "list recent ledger records", query, limit)
}

func (r *PgxLedgerRepository) ListPage(ctx context.Context, limit int, after *portsrepo.RecordCursor) ([]domain.LedgerRecord, error) {
	if after == nil {
		query := `SELECT ` + ledgerColumns + ` FROM ledger_records ORDER BY created_at DESC, id DESC LIMIT $1;`
		return r.queryRecords(ctx, "list ledger page", query, limit)
	}
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_records
		WHERE (created_at, id) < ($1, $2::uuid)
		ORDER BY created_at DESC, id DESC
		LIMIT $3;
	`
	return r.queryRecords(ctx, "list ledger page", query, after.CreatedAt, after.ID, limit)
}

func (r *PgxLedgerRepository) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_records;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count ledger records: %w", err)
	}
	return n, nil
}

func (r *PgxLedgerRepository) FindRecordByID(ctx context.Context, id string) (*domain.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_records WHERE id = $1;`
	var m models.LedgerRecord
	err := scanRecord(r.Pool.QueryRow(ctx, query, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger record %s: %w", id, err)
	}
	d := mapping.ToDomainLedgerRecord(m)
	return &d, nil
}

func (r *PgxLedgerRepository) queryRecords(ctx context.Context, op, query string, args ...any) ([]domain.LedgerRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	var ms []models.LedgerRecord
	for rows.Next() {
		var m models.LedgerRecord
		if err := scanRecord(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan ledger record: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger records: %w", err)
	}
	return mapping.ToDomainLedgerRecordSlice(ms), nil
}

func scanRecord(row pgx.Row, m *models.LedgerRecord) error {
	return row.Scan(
		&m.ID,
		&m.DonorName,
		&m.Amount,
		&m.Method,
		&m.ProofURL,
		&m.Kind,
		&m.OccurredAt,
		&m.CreatedAt,
		&m.CreatedBy,
	)
}
