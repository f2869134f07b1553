// Package corpus loads the scripture corpus from JSON once at startup.
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

//go:embed data/quran_data.json
var embeddedCorpus []byte

// Corpus is an immutable, ordered set of surahs.
type Corpus struct {
	surahs []domain.Surah
}

// Load reads the corpus from path, or the embedded sample when path is empty.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Parse(embeddedCorpus)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a corpus document of the form {"surahs": [...]}.
func Parse(data []byte) (*Corpus, error) {
	var doc corpusDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}

	surahs := make([]domain.Surah, len(doc.Surahs))
	for i, s := range doc.Surahs {
		surahs[i] = s.toDomain()
	}
	return FromSurahs(surahs)
}

// FromSurahs validates and orders already decoded surahs.
func FromSurahs(surahs []domain.Surah) (*Corpus, error) {
	seen := make(map[int]struct{}, len(surahs))
	ordered := make([]domain.Surah, len(surahs))
	for i, s := range surahs {
		if s.Number <= 0 {
			return nil, fmt.Errorf("surah at position %d has non-positive number %d", i, s.Number)
		}
		if _, dup := seen[s.Number]; dup {
			return nil, fmt.Errorf("duplicate surah number %d", s.Number)
		}
		seen[s.Number] = struct{}{}

		if s.NameEn == "" {
			s.NameEn = fmt.Sprintf("Surah %d", s.Number)
		}
		verses := make([]domain.Verse, len(s.Verses))
		copy(verses, s.Verses)
		ayahs := make(map[int]struct{}, len(verses))
		for _, v := range verses {
			if v.Number <= 0 {
				return nil, fmt.Errorf("surah %d has verse with non-positive number %d", s.Number, v.Number)
			}
			if _, dup := ayahs[v.Number]; dup {
				return nil, fmt.Errorf("surah %d has duplicate verse number %d", s.Number, v.Number)
			}
			ayahs[v.Number] = struct{}{}
		}
		sort.Slice(verses, func(a, b int) bool { return verses[a].Number < verses[b].Number })
		s.Verses = verses
		ordered[i] = s
	}
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].Number < ordered[b].Number })
	return &Corpus{surahs: ordered}, nil
}

// Surahs returns every surah in ascending number order. Callers must not mutate the result.
func (c *Corpus) Surahs() []domain.Surah {
	return c.surahs
}

type corpusDocument struct {
	Surahs []surahRecord `json:"surahs"`
}

type surahRecord struct {
	Number int           `json:"number"`
	NameAr string        `json:"nameAr"`
	NameEn string        `json:"nameEn"`
	Ayahs  []verseRecord `json:"ayahs"`
}

type verseRecord struct {
	Ayah    int        `json:"ayah"`
	TextAr  string     `json:"textAr"`
	Tafseer notesField `json:"tafseer"`
	En      string     `json:"en"`
	Es      string     `json:"es"`
}

// notesField accepts either a single note or a list of notes.
type notesField []string

func (n *notesField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*n = nil
		} else {
			*n = notesField{single}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("tafseer must be a string or a list of strings: %w", err)
	}
	*n = list
	return nil
}

func (s surahRecord) toDomain() domain.Surah {
	verses := make([]domain.Verse, len(s.Ayahs))
	for i, a := range s.Ayahs {
		verses[i] = domain.Verse{
			Number:         a.Ayah,
			TextAr:         a.TextAr,
			Interpretation: []string(a.Tafseer),
			En:             a.En,
			Es:             a.Es,
		}
	}
	return domain.Surah{Number: s.Number, NameAr: s.NameAr, NameEn: s.NameEn, Verses: verses}
}
