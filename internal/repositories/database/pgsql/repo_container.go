package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the Postgres-backed repositories. The asset store
// is not database-backed and is supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, assets portsrepo.AssetStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: newPgxLedgerRepository(dbPool),
		UserRepo:   newPgxUserRepository(dbPool),
		AdminRepo:  newPgxAdminRepository(dbPool),
		AssetStore: assets,
	}
}
