package repositories

import "github.com/SscSPs/alsabqon_app/internal/core/domain"

// CorpusReader exposes the load-once scripture corpus. Implementations are
// immutable and safe for concurrent use.
type CorpusReader interface {
	// Surahs returns every surah in ascending number order.
	Surahs() []domain.Surah
}

// CatalogReader exposes the static category catalogs.
type CatalogReader interface {
	Categories(kind domain.PracticeKind) []domain.Category
}
