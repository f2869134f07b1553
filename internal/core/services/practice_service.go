package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/apperrors"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/SscSPs/alsabqon_app/internal/utils/pagination"
	"github.com/SscSPs/alsabqon_app/internal/utils/tally"
	"github.com/SscSPs/alsabqon_app/internal/utils/timestamps"
	"github.com/google/uuid"
)

// practiceService implements the PracticeSvcFacade interface for both ledgers.
type practiceService struct {
	BaseService
	repo  portsrepo.PracticeEntryRepositoryFacade
	clock timestamps.Clock
	newID func() string
}

// PracticeServiceOption is a functional option for configuring the practice service
type PracticeServiceOption func(*practiceService)

// WithClock replaces the wall clock used for timestamp fallbacks and edit notes.
func WithClock(clock timestamps.Clock) PracticeServiceOption {
	return func(s *practiceService) {
		s.clock = clock
	}
}

// WithIDGenerator replaces the entry id generator.
func WithIDGenerator(fn func() string) PracticeServiceOption {
	return func(s *practiceService) {
		s.newID = fn
	}
}

// NewPracticeService creates a new practice service with the provided options
func NewPracticeService(repo portsrepo.PracticeEntryRepositoryFacade, options ...PracticeServiceOption) portssvc.PracticeSvcFacade {
	svc := &practiceService{
		repo:  repo,
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PracticeSvcFacade = (*practiceService)(nil)

func validateKind(kind domain.PracticeKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, kind)
	}
	return nil
}

func validateDate(field, value string) error {
	if !timestamps.IsDate(value) {
		return fmt.Errorf("%w: %s must be a YYYY-MM-DD date, got %q", apperrors.ErrValidation, field, value)
	}
	return nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func (s *practiceService) CreateEntry(ctx context.Context, kind domain.PracticeKind, userID string, req dto.CreateEntryRequest) (*domain.PracticeEntry, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", apperrors.ErrValidation)
	}
	if err := validateDate("date", req.Date); err != nil {
		return nil, err
	}

	entry := domain.PracticeEntry{
		ID:         s.newID(),
		Kind:       kind,
		UserID:     userID,
		CategoryID: req.CategoryID,
		Count:      req.Count,
		Date:       req.Date,
		Timestamp:  timestamps.Resolve(req.ClientTimestamp, req.Timezone, s.clock()),
		EditNotes:  []string{},
	}
	if hasText(req.Comment) {
		entry.EditNotes = append(entry.EditNotes, *req.Comment)
	}
	if kind == domain.KindCharity {
		comments := ""
		if req.Comment != nil {
			comments = *req.Comment
		}
		entry.Comments = &comments
	}

	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("kind", string(kind)),
			slog.Int("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to create %s entry: %w", kind, err)
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("kind", string(kind)),
		slog.String("entry_id", entry.ID),
		slog.Int("category_id", entry.CategoryID),
		slog.Int("count", entry.Count))
	return &entry, nil
}

func (s *practiceService) UpdateEntry(ctx context.Context, kind domain.PracticeKind, userID, entryID string, req dto.UpdateEntryRequest) (*domain.PracticeEntry, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", apperrors.ErrValidation)
	}

	patch := domain.EntryPatch{Count: req.Count}
	if kind == domain.KindCharity && req.Comments != nil {
		comments := *req.Comments
		patch.Comments = &comments
	}
	if hasText(req.EditNote) {
		at := timestamps.Resolve(req.ClientTimestamp, req.Timezone, s.clock())
		note := timestamps.EditNote(at, *req.EditNote)
		patch.AppendNote = &note
	}

	updated, err := s.repo.UpdateEntry(ctx, kind, userID, entryID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Ledger entry not found for update", slog.String("entry_id", entryID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update ledger entry",
			slog.String("kind", string(kind)),
			slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update %s entry: %w", kind, err)
	}

	s.LogInfo(ctx, "Ledger entry updated",
		slog.String("kind", string(kind)),
		slog.String("entry_id", entryID),
		slog.Bool("note_appended", patch.AppendNote != nil))
	return updated, nil
}

func (s *practiceService) GetHistory(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int, params dto.HistoryParams) (*domain.HistoryPage, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	limit := params.Limit
	switch {
	case limit <= 0:
		limit = domain.DefaultHistoryLimit
	case limit > domain.MaxHistoryLimit:
		limit = domain.MaxHistoryLimit
	}

	var after *domain.HistoryCursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeHistoryToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &cursor
	}

	// One extra row tells us whether another page exists.
	entries, err := s.repo.ListEntriesByCategory(ctx, kind, userID, categoryID, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger history",
			slog.String("kind", string(kind)),
			slog.Int("category_id", categoryID))
		return nil, fmt.Errorf("failed to list %s history: %w", kind, err)
	}

	page := &domain.HistoryPage{Entries: entries}
	if page.Entries == nil {
		page.Entries = []domain.PracticeEntry{}
	}
	if len(page.Entries) > limit {
		page.Entries = page.Entries[:limit]
		last := page.Entries[limit-1]
		token := pagination.EncodeHistoryToken(domain.HistoryCursor{Timestamp: last.Timestamp, ID: last.ID})
		page.NextToken = &token
	}

	s.LogDebug(ctx, "Ledger history listed",
		slog.String("kind", string(kind)),
		slog.Int("category_id", categoryID),
		slog.Int("count", len(page.Entries)))
	return page, nil
}

func (s *practiceService) GetStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	stats, err := s.repo.GetCategoryStats(ctx, kind, userID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate category stats",
			slog.String("kind", string(kind)),
			slog.Int("category_id", categoryID))
		return nil, fmt.Errorf("failed to get %s stats: %w", kind, err)
	}
	if stats == nil {
		stats = &domain.CategoryStats{}
	}
	stats.CategoryID = categoryID
	return stats, nil
}

func (s *practiceService) GetDailySummary(ctx context.Context, kind domain.PracticeKind, userID, date string) (*domain.PracticeSummary, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateDate("date", date); err != nil {
		return nil, err
	}
	return s.summarise(ctx, kind, userID, date, date)
}

func (s *practiceService) GetRangeSummary(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) (*domain.PracticeSummary, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateDate("start_date", startDate); err != nil {
		return nil, err
	}
	if err := validateDate("end_date", endDate); err != nil {
		return nil, err
	}
	if startDate > endDate {
		return nil, fmt.Errorf("%w: start_date %s is after end_date %s", apperrors.ErrValidation, startDate, endDate)
	}
	return s.summarise(ctx, kind, userID, startDate, endDate)
}

func (s *practiceService) summarise(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) (*domain.PracticeSummary, error) {
	entries, err := s.repo.ListEntriesByDateRange(ctx, kind, userID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries by date",
			slog.String("kind", string(kind)),
			slog.String("start_date", startDate),
			slog.String("end_date", endDate))
		return nil, fmt.Errorf("failed to summarise %s: %w", kind, err)
	}
	return tally.Summarise(startDate, endDate, entries), nil
}
