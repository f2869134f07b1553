package services_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/apperrors"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/SscSPs/alsabqon_app/internal/core/services"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// memoryPracticeRepository is a map-backed repository used to exercise the
// service end to end without a database.
type memoryPracticeRepository struct {
	mu      sync.Mutex
	entries map[string]domain.PracticeEntry
}

func newMemoryPracticeRepository() *memoryPracticeRepository {
	return &memoryPracticeRepository{entries: make(map[string]domain.PracticeEntry)}
}

func (r *memoryPracticeRepository) FindEntryByID(_ context.Context, kind domain.PracticeKind, userID, entryID string) (*domain.PracticeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryID]
	if !ok || e.Kind != kind || e.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *memoryPracticeRepository) ListEntriesByCategory(_ context.Context, kind domain.PracticeKind, userID string, categoryID int, limit int, after *domain.HistoryCursor) ([]domain.PracticeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PracticeEntry
	for _, e := range r.entries {
		if e.Kind != kind || e.UserID != userID || e.CategoryID != categoryID {
			continue
		}
		if after != nil && !(e.Timestamp.Before(after.Timestamp) || (e.Timestamp.Equal(after.Timestamp) && e.ID < after.ID)) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryPracticeRepository) ListEntriesByDateRange(_ context.Context, kind domain.PracticeKind, userID, startDate, endDate string) ([]domain.PracticeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PracticeEntry
	for _, e := range r.entries {
		if e.Kind == kind && e.UserID == userID && e.Date >= startDate && e.Date <= endDate {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memoryPracticeRepository) GetCategoryStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error) {
	entries, _ := r.ListEntriesByCategory(ctx, kind, userID, categoryID, domain.MaxHistoryLimit, nil)
	stats := &domain.CategoryStats{CategoryID: categoryID}
	for _, e := range entries {
		stats.TotalCount += e.Count
		stats.TotalSessions++
		if stats.LastEntry == nil || e.Timestamp.After(*stats.LastEntry) {
			ts := e.Timestamp
			stats.LastEntry = &ts
		}
	}
	return stats, nil
}

func (r *memoryPracticeRepository) SaveEntry(_ context.Context, entry domain.PracticeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.EditNotes = append([]string{}, entry.EditNotes...)
	r.entries[entry.ID] = entry
	return nil
}

func (r *memoryPracticeRepository) UpdateEntry(_ context.Context, kind domain.PracticeKind, userID, entryID string, patch domain.EntryPatch) (*domain.PracticeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryID]
	if !ok || e.Kind != kind || e.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	e.Count = patch.Count
	if patch.Comments != nil {
		e.Comments = patch.Comments
	}
	if patch.AppendNote != nil {
		e.EditNotes = append(append([]string{}, e.EditNotes...), *patch.AppendNote)
	}
	r.entries[entryID] = e
	return &e, nil
}

func TestPracticeRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)
	svc := services.NewPracticeService(newMemoryPracticeRepository(), services.WithClock(func() time.Time { return now }))

	first, err := svc.CreateEntry(ctx, domain.KindRemembrance, "u1", dto.CreateEntryRequest{CategoryID: 1, Count: 33, Date: "2025-01-15", Comment: strPtr("first")})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, domain.KindRemembrance, "u1", dto.CreateEntryRequest{CategoryID: 2, Count: 67, Date: "2025-01-15"})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, domain.KindRemembrance, "someone-else", dto.CreateEntryRequest{CategoryID: 1, Count: 500, Date: "2025-01-15"})
	require.NoError(t, err)

	daily, err := svc.GetDailySummary(ctx, domain.KindRemembrance, "u1", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 100, daily.Total)
	assert.Equal(t, "33", daily.ByCategory[1].Percentage.String())
	assert.Equal(t, "67", daily.ByCategory[2].Percentage.String())

	updated, err := svc.UpdateEntry(ctx, domain.KindRemembrance, "u1", first.ID, dto.UpdateEntryRequest{Count: 50, EditNote: strPtr("recount")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.True(t, first.Timestamp.Equal(updated.Timestamp))
	assert.Equal(t, []string{"first", "2025-01-16T11:00:00+00:00: recount"}, updated.EditNotes)

	_, err = svc.UpdateEntry(ctx, domain.KindRemembrance, "someone-else", first.ID, dto.UpdateEntryRequest{Count: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.UpdateEntry(ctx, domain.KindCharity, "u1", first.ID, dto.UpdateEntryRequest{Count: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	ranged, err := svc.GetRangeSummary(ctx, domain.KindRemembrance, "u1", "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, 117, ranged.Total)

	stats, err := svc.GetStats(ctx, domain.KindRemembrance, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.TotalCount)
	assert.Equal(t, 1, stats.TotalSessions)
}

func TestHistoryPagesCoverEveryEntryOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		repo := newMemoryPracticeRepository()
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		offsets := rapid.SliceOfN(rapid.IntRange(0, 20), 0, 40).Draw(t, "offsets")
		svc := services.NewPracticeService(repo)

		for _, off := range offsets {
			ts := base.Add(time.Duration(off) * time.Minute).Format(time.RFC3339)
			_, err := svc.CreateEntry(ctx, domain.KindCharity, "u1", dto.CreateEntryRequest{CategoryID: 1, Count: 1, Date: "2025-01-01", ClientTimestamp: &ts})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
		}

		limit := rapid.IntRange(1, 7).Draw(t, "limit")
		seen := make(map[string]bool)
		var previous *domain.PracticeEntry
		token := ""
		for pages := 0; pages <= len(offsets)+1; pages++ {
			page, err := svc.GetHistory(ctx, domain.KindCharity, "u1", 1, dto.HistoryParams{Limit: limit, NextToken: token})
			if err != nil {
				t.Fatalf("history: %v", err)
			}
			if len(page.Entries) > limit {
				t.Fatalf("page of %d exceeds limit %d", len(page.Entries), limit)
			}
			for i := range page.Entries {
				e := page.Entries[i]
				if seen[e.ID] {
					t.Fatalf("entry %s returned twice", e.ID)
				}
				seen[e.ID] = true
				if previous != nil && e.Timestamp.After(previous.Timestamp) {
					t.Fatalf("entries not newest first")
				}
				previous = &e
			}
			if page.NextToken == nil {
				break
			}
			token = *page.NextToken
		}
		if len(seen) != len(offsets) {
			t.Fatalf("saw %d of %d entries", len(seen), len(offsets))
		}
	})
}

func TestSameCategoryEntriesAccumulate(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	svc := services.NewPracticeService(newMemoryPracticeRepository(), services.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	first, err := svc.CreateEntry(ctx, domain.KindRemembrance, domain.DefaultUserID, dto.CreateEntryRequest{CategoryID: 1, Count: 33, Date: "2024-01-15"})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx, domain.KindRemembrance, domain.DefaultUserID, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalSessions, 1)
	assert.GreaterOrEqual(t, stats.TotalCount, 33)

	_, err = svc.CreateEntry(ctx, domain.KindRemembrance, domain.DefaultUserID, dto.CreateEntryRequest{CategoryID: 1, Count: 67, Date: "2024-01-15"})
	require.NoError(t, err)

	stats, err = svc.GetStats(ctx, domain.KindRemembrance, domain.DefaultUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.TotalCount)
	assert.Equal(t, 2, stats.TotalSessions)

	daily, err := svc.GetDailySummary(ctx, domain.KindRemembrance, domain.DefaultUserID, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 100, daily.ByCategory[1].Count)
	assert.Equal(t, 2, daily.ByCategory[1].Sessions)
	assert.Equal(t, "100", daily.ByCategory[1].Percentage.String())

	ranged, err := svc.GetRangeSummary(ctx, domain.KindRemembrance, domain.DefaultUserID, "2024-01-10", "2024-01-20")
	require.NoError(t, err)
	assert.Len(t, ranged.Entries, 2)

	other, err := svc.GetDailySummary(ctx, domain.KindRemembrance, domain.DefaultUserID, "2024-01-16")
	require.NoError(t, err)
	assert.Zero(t, other.Total)
	assert.Empty(t, other.ByCategory)
	assert.Empty(t, other.Entries)

	_, err = svc.UpdateEntry(ctx, domain.KindRemembrance, domain.DefaultUserID, first.ID, dto.UpdateEntryRequest{Count: 34, EditNote: strPtr("one")})
	require.NoError(t, err)
	updated, err := svc.UpdateEntry(ctx, domain.KindRemembrance, domain.DefaultUserID, first.ID, dto.UpdateEntryRequest{Count: 35, EditNote: strPtr("two")})
	require.NoError(t, err)
	require.Len(t, updated.EditNotes, 2)
	assert.Contains(t, updated.EditNotes[0], ": one")
	assert.Contains(t, updated.EditNotes[1], ": two")
	assert.Equal(t, 35, updated.Count)
}
