package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
)

// scriptureService answers queries over the in-memory corpus. It holds no
// mutable state and is safe for concurrent use.
type scriptureService struct {
	BaseService
	corpus portsrepo.CorpusReader
}

// NewScriptureService creates a scripture service over corpus.
func NewScriptureService(corpus portsrepo.CorpusReader) portssvc.ScriptureSvc {
	return &scriptureService{corpus: corpus}
}

var _ portssvc.ScriptureSvc = (*scriptureService)(nil)

func (s *scriptureService) ListSurahs(ctx context.Context) []domain.SurahMeta {
	surahs := s.corpus.Surahs()
	metas := make([]domain.SurahMeta, len(surahs))
	for i, surah := range surahs {
		metas[i] = domain.SurahMeta{Number: surah.Number, NameAr: surah.NameAr, NameEn: surah.NameEn}
	}
	return metas
}

// Search returns every verse matching all whitespace-separated tokens of query,
// in corpus order, stopping at domain.MaxSearchResults. Arabic matching is
// exact, so diacritics must match as well.
func (s *scriptureService) Search(ctx context.Context, query string, include domain.IncludeField) []domain.SearchHit {
	hits := []domain.SearchHit{}
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return hits
	}
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

scan:
	for _, surah := range s.corpus.Surahs() {
		for _, verse := range surah.Verses {
			if !matchesVerse(verse, tokens, lowered) {
				continue
			}
			hits = append(hits, toSearchHit(surah, verse, include))
			if len(hits) >= domain.MaxSearchResults {
				break scan
			}
		}
	}

	s.LogDebug(ctx, "Scripture search finished",
		slog.Int("tokens", len(tokens)),
		slog.Int("hits", len(hits)))
	return hits
}

func matchesVerse(v domain.Verse, tokens, lowered []string) bool {
	if containsAll(v.TextAr, tokens) {
		return true
	}
	for _, note := range v.Interpretation {
		if containsAll(note, tokens) {
			return true
		}
	}
	if v.En != "" && containsAll(strings.ToLower(v.En), lowered) {
		return true
	}
	return v.Es != "" && containsAll(strings.ToLower(v.Es), lowered)
}

func containsAll(haystack string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

func toSearchHit(surah domain.Surah, v domain.Verse, include domain.IncludeField) domain.SearchHit {
	hit := domain.SearchHit{
		SurahNumber: surah.Number,
		NameAr:      surah.NameAr,
		NameEn:      surah.NameEn,
		Ayah:        v.Number,
		TextAr:      v.TextAr,
	}
	switch include {
	case domain.IncludeInterpretation:
		if len(v.Interpretation) > 0 {
			note := v.Interpretation[0]
			hit.Tafseer = &note
		}
	case domain.IncludeEnglish:
		if v.En != "" {
			en := v.En
			hit.En = &en
		}
	case domain.IncludeSpanish:
		if v.Es != "" {
			es := v.Es
			hit.Es = &es
		}
	}
	return hit
}
