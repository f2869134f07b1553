package domain

// MaxSearchResults caps the number of hits a single search may return.
const MaxSearchResults = 100

// Surah is a chapter of the corpus.
type Surah struct {
	Number int     `json:"number"`
	NameAr string  `json:"nameAr"`
	NameEn string  `json:"nameEn"`
	Verses []Verse `json:"ayahs"`
}

// Verse is a numbered ayah. TextAr is the primary searchable field.
type Verse struct {
	Number         int      `json:"ayah"`
	TextAr         string   `json:"textAr"`
	Interpretation []string `json:"tafseer,omitempty"`
	En             string   `json:"en,omitempty"`
	Es             string   `json:"es,omitempty"`
}

// SurahMeta is the listing view of a surah.
type SurahMeta struct {
	Number int    `json:"number"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
}

// IncludeField selects the extra snippet attached to each search hit.
type IncludeField string

const (
	IncludeNone           IncludeField = ""
	IncludeInterpretation IncludeField = "tafseer"
	IncludeEnglish        IncludeField = "en"
	IncludeSpanish        IncludeField = "es"
)

// ParseIncludeField maps a query value to an IncludeField. Unknown values
// select nothing.
func ParseIncludeField(v string) IncludeField {
	switch IncludeField(v) {
	case IncludeInterpretation, IncludeEnglish, IncludeSpanish:
		return IncludeField(v)
	case "interpretation":
		return IncludeInterpretation
	default:
		return IncludeNone
	}
}

// SearchHit is a matching verse with its surah context.
type SearchHit struct {
	SurahNumber int     `json:"surahNumber"`
	NameAr      string  `json:"nameAr"`
	NameEn      string  `json:"nameEn"`
	Ayah        int     `json:"ayah"`
	TextAr      string  `json:"textAr"`
	Tafseer     *string `json:"tafseer,omitempty"`
	En          *string `json:"en,omitempty"`
	Es          *string `json:"es,omitempty"`
}
