package dto

import (
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

// CreateCharityEntryRequest defines the data needed to log charitable acts.
type CreateCharityEntryRequest struct {
	CharityID       *int    `json:"charity_id" binding:"required"`
	Count           *int    `json:"count" binding:"required,min=1"`
	Date            string  `json:"date" binding:"required,isodate"`
	Comments        *string `json:"comments"`
	Timezone        *string `json:"timezone"`
	ClientTimestamp *string `json:"client_timestamp"`
}

func (r CreateCharityEntryRequest) ToCreateEntryRequest() CreateEntryRequest {
	return CreateEntryRequest{
		CategoryID:      *r.CharityID,
		Count:           *r.Count,
		Date:            r.Date,
		Comment:         r.Comments,
		Timezone:        r.Timezone,
		ClientTimestamp: r.ClientTimestamp,
	}
}

// UpdateCharityEntryRequest defines the data accepted when editing a charity entry.
// Omitting comments leaves the stored value untouched.
type UpdateCharityEntryRequest struct {
	Count           *int    `json:"count" binding:"required,min=1"`
	Comments        *string `json:"comments"`
	EditNote        *string `json:"edit_note"`
	Timezone        *string `json:"timezone"`
	ClientTimestamp *string `json:"client_timestamp"`
}

func (r UpdateCharityEntryRequest) ToUpdateEntryRequest() UpdateEntryRequest {
	return UpdateEntryRequest{
		Count:           *r.Count,
		Comments:        r.Comments,
		EditNote:        r.EditNote,
		Timezone:        r.Timezone,
		ClientTimestamp: r.ClientTimestamp,
	}
}

// CharityResponse is a charity catalog item.
type CharityResponse struct {
	ID          int    `json:"id"`
	NameAr      string `json:"nameAr"`
	NameEn      string `json:"nameEn"`
	NameEs      string `json:"nameEs"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// CharityListResponse wraps the charity catalog.
type CharityListResponse struct {
	Charities []CharityResponse `json:"charities"`
}

func ToCharityListResponse(categories []domain.Category) CharityListResponse {
	res := CharityListResponse{Charities: make([]CharityResponse, len(categories))}
	for i, c := range categories {
		res.Charities[i] = CharityResponse{
			ID:          c.ID,
			NameAr:      c.NameAr,
			NameEn:      c.NameEn,
			NameEs:      c.NameEs,
			Color:       c.Color,
			Description: c.Description,
		}
	}
	return res
}

// CharityEntryResponse defines the data returned for a charity entry.
type CharityEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CharityID int       `json:"charity_id"`
	Count     int       `json:"count"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Comments  string    `json:"comments"`
	EditNotes []string  `json:"edit_notes"`
}

func ToCharityEntryResponse(e *domain.PracticeEntry) CharityEntryResponse {
	res := CharityEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		CharityID: e.CategoryID,
		Count:     e.Count,
		Date:      e.Date,
		Timestamp: e.Timestamp,
		EditNotes: editNotesOrEmpty(e.EditNotes),
	}
	if e.Comments != nil {
		res.Comments = *e.Comments
	}
	return res
}

func ToCharityEntryResponses(entries []domain.PracticeEntry) []CharityEntryResponse {
	res := make([]CharityEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToCharityEntryResponse(&entries[i])
	}
	return res
}

// UpdateCharityEntryResponse is returned by a successful update.
type UpdateCharityEntryResponse struct {
	Success bool                 `json:"success"`
	Entry   CharityEntryResponse `json:"entry"`
}

// CharityHistoryResponse is a page of charity entries.
type CharityHistoryResponse struct {
	Entries   []CharityEntryResponse `json:"entries"`
	NextToken *string                `json:"next_token,omitempty"`
}

// CharityStatsResponse holds the totals of a charity type.
type CharityStatsResponse struct {
	CharityID     int        `json:"charity_id"`
	TotalCount    int        `json:"total_count"`
	TotalSessions int        `json:"total_sessions"`
	LastEntry     *time.Time `json:"last_entry"`
}

func ToCharityStatsResponse(s *domain.CategoryStats) CharityStatsResponse {
	return CharityStatsResponse{
		CharityID:     s.CategoryID,
		TotalCount:    s.TotalCount,
		TotalSessions: s.TotalSessions,
		LastEntry:     lastEntryOrNil(s.LastEntry),
	}
}

// DailyCharityResponse is the summary of one day.
type DailyCharityResponse struct {
	Date           string                          `json:"date"`
	TotalDaily     int                             `json:"total_daily"`
	CharitySummary map[int]CategorySummaryResponse `json:"charity_summary"`
	Entries        []CharityEntryResponse          `json:"entries"`
}

func ToDailyCharityResponse(s *domain.PracticeSummary) DailyCharityResponse {
	return DailyCharityResponse{
		Date:           s.StartDate,
		TotalDaily:     s.Total,
		CharitySummary: ToCategorySummaryResponses(s.ByCategory),
		Entries:        ToCharityEntryResponses(s.Entries),
	}
}

// RangeCharityResponse is the summary of an inclusive date range.
type RangeCharityResponse struct {
	StartDate      string                          `json:"start_date"`
	EndDate        string                          `json:"end_date"`
	Total          int                             `json:"total"`
	CharitySummary map[int]CategorySummaryResponse `json:"charity_summary"`
	Entries        []CharityEntryResponse          `json:"entries"`
}

func ToRangeCharityResponse(s *domain.PracticeSummary) RangeCharityResponse {
	return RangeCharityResponse{
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		Total:          s.Total,
		CharitySummary: ToCategorySummaryResponses(s.ByCategory),
		Entries:        ToCharityEntryResponses(s.Entries),
	}
}
