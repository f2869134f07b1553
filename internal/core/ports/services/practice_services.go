package services

import (
	"context"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/SscSPs/alsabqon_app/internal/dto"
)

// PracticeReaderSvc defines read and aggregation operations over a ledger.
type PracticeReaderSvc interface {
	// GetHistory returns a newest-first page of a category's entries.
	GetHistory(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int, params dto.HistoryParams) (*domain.HistoryPage, error)

	// GetStats returns the running totals of a category. Never ErrNotFound.
	GetStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error)

	// GetDailySummary groups a single day's entries by category.
	GetDailySummary(ctx context.Context, kind domain.PracticeKind, userID, date string) (*domain.PracticeSummary, error)

	// GetRangeSummary groups the entries of an inclusive date range by category.
	GetRangeSummary(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) (*domain.PracticeSummary, error)
}

// PracticeWriterSvc defines write operations over a ledger.
type PracticeWriterSvc interface {
	// CreateEntry appends a new entry.
	CreateEntry(ctx context.Context, kind domain.PracticeKind, userID string, req dto.CreateEntryRequest) (*domain.PracticeEntry, error)

	// UpdateEntry overwrites the count, optionally the comments, and appends an edit note.
	UpdateEntry(ctx context.Context, kind domain.PracticeKind, userID, entryID string, req dto.UpdateEntryRequest) (*domain.PracticeEntry, error)
}

// PracticeSvcFacade combines all ledger service interfaces.
type PracticeSvcFacade interface {
	PracticeReaderSvc
	PracticeWriterSvc
}
