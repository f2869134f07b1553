package repositories

import (
	"context"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

// PracticeEntryReader defines read operations for ledger entries.
type PracticeEntryReader interface {
	// FindEntryByID retrieves one entry owned by userID. Returns apperrors.ErrNotFound when absent.
	FindEntryByID(ctx context.Context, kind domain.PracticeKind, userID, entryID string) (*domain.PracticeEntry, error)

	// ListEntriesByCategory returns up to limit entries of a category, newest first,
	// strictly older than the cursor when one is given.
	ListEntriesByCategory(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int, limit int, after *domain.HistoryCursor) ([]domain.PracticeEntry, error)

	// ListEntriesByDateRange returns entries whose date lies in [startDate, endDate].
	ListEntriesByDateRange(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) ([]domain.PracticeEntry, error)

	// GetCategoryStats aggregates count, sessions and last timestamp for a category.
	GetCategoryStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error)
}

// PracticeEntryWriter defines write operations for ledger entries.
type PracticeEntryWriter interface {
	// SaveEntry appends a new entry.
	SaveEntry(ctx context.Context, entry domain.PracticeEntry) error

	// UpdateEntry applies patch in place and returns the stored result.
	// Returns apperrors.ErrNotFound when no such entry exists for userID.
	UpdateEntry(ctx context.Context, kind domain.PracticeKind, userID, entryID string, patch domain.EntryPatch) (*domain.PracticeEntry, error)
}

// PracticeEntryRepositoryFacade combines all ledger repository interfaces.
type PracticeEntryRepositoryFacade interface {
	PracticeEntryReader
	PracticeEntryWriter
}
