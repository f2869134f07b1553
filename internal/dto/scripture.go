package dto

import "github.com/SscSPs/alsabqon_app/internal/core/domain"

// SearchQuery binds the search query string. Bilingual is the original
// parameter name; Include is accepted as an alias.
type SearchQuery struct {
	Query     string `form:"query"`
	Bilingual string `form:"bilingual"`
	Include   string `form:"include"`
}

// IncludeField resolves the requested snippet.
func (q SearchQuery) IncludeField() domain.IncludeField {
	if q.Bilingual != "" {
		return domain.ParseIncludeField(q.Bilingual)
	}
	return domain.ParseIncludeField(q.Include)
}

// SurahResponse is a surah listing row.
type SurahResponse struct {
	Number int    `json:"number"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
}

func ToSurahResponses(metas []domain.SurahMeta) []SurahResponse {
	res := make([]SurahResponse, len(metas))
	for i, m := range metas {
		res[i] = SurahResponse{Number: m.Number, NameAr: m.NameAr, NameEn: m.NameEn}
	}
	return res
}

// SearchHitResponse is one matching verse.
type SearchHitResponse struct {
	SurahNumber int     `json:"surahNumber"`
	NameAr      string  `json:"nameAr"`
	NameEn      string  `json:"nameEn"`
	Ayah        int     `json:"ayah"`
	TextAr      string  `json:"textAr"`
	Tafseer     *string `json:"tafseer,omitempty"`
	En          *string `json:"en,omitempty"`
	Es          *string `json:"es,omitempty"`
}

// SearchResponse wraps the hits of a search.
type SearchResponse struct {
	Results []SearchHitResponse `json:"results"`
}

func ToSearchResponse(hits []domain.SearchHit) SearchResponse {
	res := SearchResponse{Results: make([]SearchHitResponse, len(hits))}
	for i, h := range hits {
		res.Results[i] = SearchHitResponse{
			SurahNumber: h.SurahNumber,
			NameAr:      h.NameAr,
			NameEn:      h.NameEn,
			Ayah:        h.Ayah,
			TextAr:      h.TextAr,
			Tafseer:     h.Tafseer,
			En:          h.En,
			Es:          h.Es,
		}
	}
	return res
}
