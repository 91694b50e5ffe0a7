package pgsql

import (
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		AccountRepo:  newPgxAccountRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
	}
}
