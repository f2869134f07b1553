package pgsql

import (
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories. Reference
// data readers are filled in by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PracticeRepo: NewPracticeRepository(dbPool),
	}
}
