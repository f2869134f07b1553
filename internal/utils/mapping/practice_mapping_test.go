package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/SscSPs/alsabqon_app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelPracticeEntryUsesKindField(t *testing.T) {
	ts := time.Date(2025, 1, 15, 3, 30, 0, 0, time.UTC)

	zikr := ToModelPracticeEntry(domain.PracticeEntry{ID: "z", Kind: domain.KindRemembrance, CategoryID: 4, Count: 33, Timestamp: ts})
	require.NotNil(t, zikr.ZikrID)
	assert.Equal(t, 4, *zikr.ZikrID)
	assert.Nil(t, zikr.CharityID)
	assert.NotNil(t, zikr.EditNotes)

	charity := ToModelPracticeEntry(domain.PracticeEntry{ID: "c", Kind: domain.KindCharity, CategoryID: 12, Count: 1, Timestamp: ts})
	require.NotNil(t, charity.CharityID)
	assert.Equal(t, 12, *charity.CharityID)
	assert.Nil(t, charity.ZikrID)
}

func TestToDomainPracticeEntryCharityComments(t *testing.T) {
	id := 3
	d := ToDomainPracticeEntry(domain.KindCharity, models.PracticeEntry{ID: "c", CharityID: &id, Count: 2})

	assert.Equal(t, 3, d.CategoryID)
	require.NotNil(t, d.Comments)
	assert.Equal(t, "", *d.Comments)
	assert.Equal(t, []string{}, d.EditNotes)
}

func TestToDomainCategoryStats(t *testing.T) {
	empty := ToDomainCategoryStats(5, models.CategoryStats{})
	assert.Equal(t, 5, empty.CategoryID)
	assert.Nil(t, empty.LastEntry)

	last := time.Date(2025, 1, 16, 15, 0, 0, 0, time.FixedZone("", 4*60*60))
	stats := ToDomainCategoryStats(5, models.CategoryStats{TotalCount: 100, TotalSessions: 2, LastEntry: &last})
	require.NotNil(t, stats.LastEntry)
	assert.True(t, last.Equal(*stats.LastEntry))
	assert.Equal(t, 100, stats.TotalCount)
}
