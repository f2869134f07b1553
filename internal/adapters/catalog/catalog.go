// Package catalog serves the static remembrance and charity catalogs.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/azkar.yaml
	azkarYAML []byte
	//go:embed data/charities.yaml
	charitiesYAML []byte
)

// Catalog holds one ordered category list per ledger kind.
type Catalog struct {
	byKind map[domain.PracticeKind][]domain.Category
}

// Load decodes the embedded catalogs.
func Load() (*Catalog, error) {
	azkar, err := Parse(azkarYAML)
	if err != nil {
		return nil, fmt.Errorf("azkar catalog: %w", err)
	}
	charities, err := Parse(charitiesYAML)
	if err != nil {
		return nil, fmt.Errorf("charities catalog: %w", err)
	}
	return New(azkar, charities), nil
}

// New builds a catalog from already decoded lists.
func New(azkar, charities []domain.Category) *Catalog {
	return &Catalog{byKind: map[domain.PracticeKind][]domain.Category{
		domain.KindRemembrance: azkar,
		domain.KindCharity:     charities,
	}}
}

// Parse decodes a YAML list of categories, rejecting duplicate or non-positive ids.
func Parse(data []byte) ([]domain.Category, error) {
	var categories []domain.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	seen := make(map[int]struct{}, len(categories))
	for _, c := range categories {
		if c.ID <= 0 {
			return nil, fmt.Errorf("category %q has non-positive id %d", c.NameEn, c.ID)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %d", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return categories, nil
}

// Categories returns a copy of the catalog of kind, in file order.
func (c *Catalog) Categories(kind domain.PracticeKind) []domain.Category {
	src := c.byKind[kind]
	out := make([]domain.Category, len(src))
	copy(out, src)
	return out
}
