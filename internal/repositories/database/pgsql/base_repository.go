package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/apperrors"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// notFoundOr maps pgx.ErrNoRows to apperrors.ErrNotFound and wraps anything else.
func (r *BaseRepository) notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// entryTables maps each ledger to its table.
var entryTables = map[domain.PracticeKind]string{
	domain.KindRemembrance: "azkar_entries",
	domain.KindCharity:     "charity_entries",
}

func tableFor(kind domain.PracticeKind) (string, error) {
	table, ok := entryTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, kind)
	}
	return table, nil
}
