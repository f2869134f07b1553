package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	"github.com/SscSPs/alsabqon_app/internal/models"
	"github.com/SscSPs/alsabqon_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPracticeRepository struct {
	BaseRepository
}

// NewPracticeRepository creates a new repository for both ledgers.
func NewPracticeRepository(pool *pgxpool.Pool) portsrepo.PracticeEntryRepositoryFacade {
	return &PgxPracticeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PracticeEntryRepositoryFacade = (*PgxPracticeRepository)(nil)

const entryColumns = `id, user_id, category_id, count, entry_date, recorded_at, comments, edit_notes`

func scanEntry(kind domain.PracticeKind, row pgx.Row) (domain.PracticeEntry, error) {
	var m models.PracticeEntry
	var categoryID int
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&categoryID,
		&m.Count,
		&m.Date,
		&m.Timestamp,
		&m.Comments,
		&m.EditNotes,
	)
	if err != nil {
		return domain.PracticeEntry{}, err
	}
	if kind == domain.KindCharity {
		m.CharityID = &categoryID
	} else {
		m.ZikrID = &categoryID
	}
	return mapping.ToDomainPracticeEntry(kind, m), nil
}

func (r *PgxPracticeRepository) collectEntries(ctx context.Context, kind domain.PracticeKind, query string, args ...any) ([]domain.PracticeEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s entries: %w", kind, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PracticeEntry, error) {
		return scanEntry(kind, row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s entries: %w", kind, err)
	}
	if entries == nil {
		entries = []domain.PracticeEntry{}
	}
	return entries, nil
}

// SaveEntry inserts a new ledger entry.
func (r *PgxPracticeRepository) SaveEntry(ctx context.Context, entry domain.PracticeEntry) error {
	table, err := tableFor(entry.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelPracticeEntry(entry)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, table, entryColumns)

	_, err = r.Pool.Exec(ctx, query,
		m.ID,
		m.UserID,
		entry.CategoryID,
		m.Count,
		m.Date,
		m.Timestamp,
		m.Comments,
		m.EditNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s entry %s: %w", entry.Kind, entry.ID, err)
	}
	return nil
}

// FindEntryByID retrieves one entry owned by userID.
func (r *PgxPracticeRepository) FindEntryByID(ctx context.Context, kind domain.PracticeKind, userID, entryID string) (*domain.PracticeEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2;`, entryColumns, table)

	entry, err := scanEntry(kind, r.Pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		return nil, r.notFoundOr(err, "failed to find %s entry %s", kind, entryID)
	}
	return &entry, nil
}

// UpdateEntry applies the patch in a single statement so the note append
// cannot lose a concurrent append.
func (r *PgxPracticeRepository) UpdateEntry(ctx context.Context, kind domain.PracticeKind, userID, entryID string, patch domain.EntryPatch) (*domain.PracticeEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE %s SET
			count = $1,
			comments = COALESCE($2::text, comments),
			edit_notes = CASE WHEN $3::text IS NULL THEN edit_notes ELSE array_append(edit_notes, $3::text) END
		WHERE id = $4 AND user_id = $5
		RETURNING %s;
	`, table, entryColumns)

	entry, err := scanEntry(kind, r.Pool.QueryRow(ctx, query, patch.Count, patch.Comments, patch.AppendNote, entryID, userID))
	if err != nil {
		return nil, r.notFoundOr(err, "failed to update %s entry %s", kind, entryID)
	}
	return &entry, nil
}

// ListEntriesByCategory returns a newest-first page, resuming strictly after the cursor.
func (r *PgxPracticeRepository) ListEntriesByCategory(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int, limit int, after *domain.HistoryCursor) ([]domain.PracticeEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	args := []any{userID, categoryID}
	cursorClause := ""
	if after != nil {
		args = append(args, after.Timestamp, after.ID)
		cursorClause = "AND (recorded_at, id) < ($3, $4)"
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1 AND category_id = $2 %s
		ORDER BY recorded_at DESC, id DESC
		LIMIT $%d;
	`, entryColumns, table, cursorClause, len(args))

	return r.collectEntries(ctx, kind, query, args...)
}

// ListEntriesByDateRange returns entries whose date string lies in [startDate, endDate], oldest first.
func (r *PgxPracticeRepository) ListEntriesByDateRange(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) ([]domain.PracticeEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY recorded_at ASC, id ASC;
	`, entryColumns, table)

	return r.collectEntries(ctx, kind, query, userID, startDate, endDate)
}

// GetCategoryStats aggregates a category. An empty category yields zero totals.
func (r *PgxPracticeRepository) GetCategoryStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(count), 0), COUNT(*), MAX(recorded_at)
		FROM %s
		WHERE user_id = $1 AND category_id = $2;
	`, table)

	var m models.CategoryStats
	if err := r.Pool.QueryRow(ctx, query, userID, categoryID).Scan(&m.TotalCount, &m.TotalSessions, &m.LastEntry); err != nil {
		return nil, fmt.Errorf("failed to aggregate %s stats for category %d: %w", kind, categoryID, err)
	}
	stats := mapping.ToDomainCategoryStats(categoryID, m)
	return &stats, nil
}
