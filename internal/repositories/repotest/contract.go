// Package repotest holds behaviour checks shared by every ledger repository
// implementation. It is imported by the integration tests of each backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/apperrors"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newEntry(kind domain.PracticeKind, userID string, categoryID, count int, date string, ts time.Time) domain.PracticeEntry {
	e := domain.PracticeEntry{
		ID:         uuid.NewString(),
		Kind:       kind,
		UserID:     userID,
		CategoryID: categoryID,
		Count:      count,
		Date:       date,
		Timestamp:  ts,
		EditNotes:  []string{},
	}
	if kind == domain.KindCharity {
		e.Comments = strPtr("")
	}
	return e
}

// RunPracticeRepositoryContract exercises repo against the behaviour the
// services rely on. Every call uses a fresh user id so runs do not interfere.
func RunPracticeRepositoryContract(t *testing.T, repo portsrepo.PracticeEntryRepositoryFacade) {
	ctx := context.Background()
	base := time.Date(2025, 1, 15, 3, 30, 0, 0, time.UTC)

	t.Run("save and find", func(t *testing.T) {
		user := uuid.NewString()
		e := newEntry(domain.KindCharity, user, 26, 1, "2024-01-16", base)
		e.Comments = strPtr("كفالة يتيم شهرية")
		e.EditNotes = []string{"كفالة يتيم شهرية"}
		require.NoError(t, repo.SaveEntry(ctx, e))

		got, err := repo.FindEntryByID(ctx, domain.KindCharity, user, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
		assert.Equal(t, 26, got.CategoryID)
		assert.Equal(t, "2024-01-16", got.Date)
		assert.True(t, base.Equal(got.Timestamp))
		require.NotNil(t, got.Comments)
		assert.Equal(t, "كفالة يتيم شهرية", *got.Comments)
		assert.Equal(t, []string{"كفالة يتيم شهرية"}, got.EditNotes)

		_, err = repo.FindEntryByID(ctx, domain.KindRemembrance, user, e.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = repo.FindEntryByID(ctx, domain.KindCharity, uuid.NewString(), e.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("update appends notes in order and keeps identity", func(t *testing.T) {
		user := uuid.NewString()
		e := newEntry(domain.KindRemembrance, user, 1, 33, "2025-01-15", base)
		e.EditNotes = []string{"first"}
		require.NoError(t, repo.SaveEntry(ctx, e))

		_, err := repo.UpdateEntry(ctx, domain.KindRemembrance, user, e.ID, domain.EntryPatch{Count: 40, AppendNote: strPtr("second")})
		require.NoError(t, err)
		got, err := repo.UpdateEntry(ctx, domain.KindRemembrance, user, e.ID, domain.EntryPatch{Count: 50, AppendNote: strPtr("third")})
		require.NoError(t, err)

		assert.Equal(t, e.ID, got.ID)
		assert.Equal(t, 50, got.Count)
		assert.True(t, base.Equal(got.Timestamp))
		assert.Equal(t, []string{"first", "second", "third"}, got.EditNotes)

		unchanged, err := repo.UpdateEntry(ctx, domain.KindRemembrance, user, e.ID, domain.EntryPatch{Count: 51})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, unchanged.EditNotes)

		_, err = repo.UpdateEntry(ctx, domain.KindRemembrance, user, uuid.NewString(), domain.EntryPatch{Count: 1})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("charity comments only change when supplied", func(t *testing.T) {
		user := uuid.NewString()
		e := newEntry(domain.KindCharity, user, 6, 2, "2024-01-15", base)
		e.Comments = strPtr("وجبتان")
		require.NoError(t, repo.SaveEntry(ctx, e))

		got, err := repo.UpdateEntry(ctx, domain.KindCharity, user, e.ID, domain.EntryPatch{Count: 3})
		require.NoError(t, err)
		require.NotNil(t, got.Comments)
		assert.Equal(t, "وجبتان", *got.Comments)

		got, err = repo.UpdateEntry(ctx, domain.KindCharity, user, e.ID, domain.EntryPatch{Count: 3, Comments: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "", *got.Comments)
	})

	t.Run("history is newest first and pages by cursor", func(t *testing.T) {
		user := uuid.NewString()
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.SaveEntry(ctx, newEntry(domain.KindRemembrance, user, 2, i+1, "2025-01-15", base.Add(time.Duration(i)*time.Minute))))
		}
		require.NoError(t, repo.SaveEntry(ctx, newEntry(domain.KindRemembrance, user, 3, 9, "2025-01-15", base)))

		first, err := repo.ListEntriesByCategory(ctx, domain.KindRemembrance, user, 2, 3, nil)
		require.NoError(t, err)
		require.Len(t, first, 3)
		assert.Equal(t, []int{5, 4, 3}, counts(first))

		last := first[len(first)-1]
		rest, err := repo.ListEntriesByCategory(ctx, domain.KindRemembrance, user, 2, 3, &domain.HistoryCursor{Timestamp: last.Timestamp, ID: last.ID})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, counts(rest))

		none, err := repo.ListEntriesByCategory(ctx, domain.KindRemembrance, user, 99, 3, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("date range is inclusive and lexicographic", func(t *testing.T) {
		user := uuid.NewString()
		for i, date := range []string{"2024-12-31", "2025-01-01", "2025-01-15", "2025-01-31", "2025-02-01"} {
			require.NoError(t, repo.SaveEntry(ctx, newEntry(domain.KindCharity, user, 1, i+1, date, base.Add(time.Duration(i)*time.Hour))))
		}

		got, err := repo.ListEntriesByDateRange(ctx, domain.KindCharity, user, "2025-01-01", "2025-01-31")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 4}, counts(got))

		day, err := repo.ListEntriesByDateRange(ctx, domain.KindCharity, user, "2025-01-15", "2025-01-15")
		require.NoError(t, err)
		assert.Equal(t, []int{3}, counts(day))
	})

	t.Run("stats", func(t *testing.T) {
		user := uuid.NewString()
		empty, err := repo.GetCategoryStats(ctx, domain.KindRemembrance, user, 4)
		require.NoError(t, err)
		assert.Zero(t, empty.TotalCount)
		assert.Zero(t, empty.TotalSessions)
		assert.Nil(t, empty.LastEntry)

		require.NoError(t, repo.SaveEntry(ctx, newEntry(domain.KindRemembrance, user, 4, 33, "2025-01-15", base)))
		require.NoError(t, repo.SaveEntry(ctx, newEntry(domain.KindRemembrance, user, 4, 67, "2025-01-16", base.Add(24*time.Hour))))

		stats, err := repo.GetCategoryStats(ctx, domain.KindRemembrance, user, 4)
		require.NoError(t, err)
		assert.Equal(t, 100, stats.TotalCount)
		assert.Equal(t, 2, stats.TotalSessions)
		require.NotNil(t, stats.LastEntry)
		assert.True(t, base.Add(24*time.Hour).Equal(*stats.LastEntry))
	})
}

func counts(entries []domain.PracticeEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Count
	}
	return out
}
