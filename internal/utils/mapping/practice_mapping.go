package mapping

import (
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/SscSPs/alsabqon_app/internal/models"
)

// ToModelPracticeEntry converts a domain PracticeEntry to a model PracticeEntry
func ToModelPracticeEntry(d domain.PracticeEntry) models.PracticeEntry {
	m := models.PracticeEntry{
		ID:        d.ID,
		UserID:    d.UserID,
		Count:     d.Count,
		Date:      d.Date,
		Timestamp: d.Timestamp,
		Comments:  d.Comments,
		EditNotes: d.EditNotes,
	}
	if m.EditNotes == nil {
		m.EditNotes = []string{}
	}
	categoryID := d.CategoryID
	switch d.Kind {
	case domain.KindCharity:
		m.CharityID = &categoryID
	default:
		m.ZikrID = &categoryID
	}
	return m
}

// ToDomainPracticeEntry converts a model PracticeEntry of the given kind to a domain PracticeEntry
func ToDomainPracticeEntry(kind domain.PracticeKind, m models.PracticeEntry) domain.PracticeEntry {
	d := domain.PracticeEntry{
		ID:        m.ID,
		Kind:      kind,
		UserID:    m.UserID,
		Count:     m.Count,
		Date:      m.Date,
		Timestamp: m.Timestamp,
		EditNotes: m.EditNotes,
	}
	if d.EditNotes == nil {
		d.EditNotes = []string{}
	}
	if kind == domain.KindCharity {
		if m.CharityID != nil {
			d.CategoryID = *m.CharityID
		}
		comments := ""
		if m.Comments != nil {
			comments = *m.Comments
		}
		d.Comments = &comments
	} else if m.ZikrID != nil {
		d.CategoryID = *m.ZikrID
	}
	return d
}

// ToDomainPracticeEntrySlice converts a slice of model entries to a slice of domain entries
func ToDomainPracticeEntrySlice(kind domain.PracticeKind, ms []models.PracticeEntry) []domain.PracticeEntry {
	ds := make([]domain.PracticeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPracticeEntry(kind, m)
	}
	return ds
}

// ToDomainCategoryStats converts a model CategoryStats to a domain CategoryStats
func ToDomainCategoryStats(categoryID int, m models.CategoryStats) domain.CategoryStats {
	d := domain.CategoryStats{
		CategoryID:    categoryID,
		TotalCount:    m.TotalCount,
		TotalSessions: m.TotalSessions,
	}
	if m.LastEntry != nil && !m.LastEntry.IsZero() {
		last := m.LastEntry.UTC()
		d.LastEntry = &last
	}
	return d
}
