package services

import (
	"context"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

// ScriptureSvc answers listing and search queries against the corpus.
type ScriptureSvc interface {
	ListSurahs(ctx context.Context) []domain.SurahMeta
	Search(ctx context.Context, query string, include domain.IncludeField) []domain.SearchHit
}

// CatalogSvc serves the static category catalogs.
type CatalogSvc interface {
	ListCategories(ctx context.Context, kind domain.PracticeKind) ([]domain.Category, error)
}
