package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/apperrors"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
)

type catalogService struct {
	catalog portsrepo.CatalogReader
}

// NewCatalogService creates a catalog service over the static catalogs.
func NewCatalogService(catalog portsrepo.CatalogReader) portssvc.CatalogSvc {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListCategories(ctx context.Context, kind domain.PracticeKind) ([]domain.Category, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown catalog %q", apperrors.ErrValidation, kind)
	}
	return s.catalog.Categories(kind), nil
}
