package dto

import (
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

// CreateZikrEntryRequest defines the data needed to log remembrance repetitions.
type CreateZikrEntryRequest struct {
	ZikrID          *int    `json:"zikr_id" binding:"required"`
	Count           *int    `json:"count" binding:"required,min=1"`
	Date            string  `json:"date" binding:"required,isodate"`
	Comment         *string `json:"comment"`
	Timezone        *string `json:"timezone"`
	ClientTimestamp *string `json:"client_timestamp"`
}

// ToCreateEntryRequest drops the wire naming.
func (r CreateZikrEntryRequest) ToCreateEntryRequest() CreateEntryRequest {
	return CreateEntryRequest{
		CategoryID:      *r.ZikrID,
		Count:           *r.Count,
		Date:            r.Date,
		Comment:         r.Comment,
		Timezone:        r.Timezone,
		ClientTimestamp: r.ClientTimestamp,
	}
}

// UpdateZikrEntryRequest defines the data accepted when editing a remembrance entry.
type UpdateZikrEntryRequest struct {
	Count           *int    `json:"count" binding:"required,min=1"`
	EditNote        *string `json:"edit_note"`
	Timezone        *string `json:"timezone"`
	ClientTimestamp *string `json:"client_timestamp"`
}

func (r UpdateZikrEntryRequest) ToUpdateEntryRequest() UpdateEntryRequest {
	return UpdateEntryRequest{
		Count:           *r.Count,
		EditNote:        r.EditNote,
		Timezone:        r.Timezone,
		ClientTimestamp: r.ClientTimestamp,
	}
}

// ZikrResponse is a remembrance catalog item.
type ZikrResponse struct {
	ID     int    `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Color  string `json:"color"`
}

// AzkarListResponse wraps the remembrance catalog.
type AzkarListResponse struct {
	Azkar []ZikrResponse `json:"azkar"`
}

// ToAzkarListResponse converts the catalog.
func ToAzkarListResponse(categories []domain.Category) AzkarListResponse {
	res := AzkarListResponse{Azkar: make([]ZikrResponse, len(categories))}
	for i, c := range categories {
		res.Azkar[i] = ZikrResponse{ID: c.ID, NameAr: c.NameAr, NameEn: c.NameEn, Color: c.Color}
	}
	return res
}

// ZikrEntryResponse defines the data returned for a remembrance entry.
type ZikrEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ZikrID    int       `json:"zikr_id"`
	Count     int       `json:"count"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	EditNotes []string  `json:"edit_notes"`
}

// ToZikrEntryResponse converts a domain entry.
func ToZikrEntryResponse(e *domain.PracticeEntry) ZikrEntryResponse {
	return ZikrEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		ZikrID:    e.CategoryID,
		Count:     e.Count,
		Date:      e.Date,
		Timestamp: e.Timestamp,
		EditNotes: editNotesOrEmpty(e.EditNotes),
	}
}

// ToZikrEntryResponses converts a slice of domain entries, never returning nil.
func ToZikrEntryResponses(entries []domain.PracticeEntry) []ZikrEntryResponse {
	res := make([]ZikrEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToZikrEntryResponse(&entries[i])
	}
	return res
}

// UpdateZikrEntryResponse is returned by a successful update.
type UpdateZikrEntryResponse struct {
	Success bool              `json:"success"`
	Entry   ZikrEntryResponse `json:"entry"`
}

// ZikrHistoryResponse is a page of remembrance entries.
type ZikrHistoryResponse struct {
	Entries   []ZikrEntryResponse `json:"entries"`
	NextToken *string             `json:"next_token,omitempty"`
}

// ZikrStatsResponse holds the totals of a remembrance phrase.
type ZikrStatsResponse struct {
	ZikrID        int        `json:"zikr_id"`
	TotalCount    int        `json:"total_count"`
	TotalSessions int        `json:"total_sessions"`
	LastEntry     *time.Time `json:"last_entry"`
}

func ToZikrStatsResponse(s *domain.CategoryStats) ZikrStatsResponse {
	return ZikrStatsResponse{
		ZikrID:        s.CategoryID,
		TotalCount:    s.TotalCount,
		TotalSessions: s.TotalSessions,
		LastEntry:     lastEntryOrNil(s.LastEntry),
	}
}

// DailyAzkarResponse is the summary of one day.
type DailyAzkarResponse struct {
	Date         string                          `json:"date"`
	TotalDaily   int                             `json:"total_daily"`
	AzkarSummary map[int]CategorySummaryResponse `json:"azkar_summary"`
	Entries      []ZikrEntryResponse             `json:"entries"`
}

func ToDailyAzkarResponse(s *domain.PracticeSummary) DailyAzkarResponse {
	return DailyAzkarResponse{
		Date:         s.StartDate,
		TotalDaily:   s.Total,
		AzkarSummary: ToCategorySummaryResponses(s.ByCategory),
		Entries:      ToZikrEntryResponses(s.Entries),
	}
}

// RangeAzkarResponse is the summary of an inclusive date range.
type RangeAzkarResponse struct {
	StartDate    string                          `json:"start_date"`
	EndDate      string                          `json:"end_date"`
	Total        int                             `json:"total"`
	AzkarSummary map[int]CategorySummaryResponse `json:"azkar_summary"`
	Entries      []ZikrEntryResponse             `json:"entries"`
}

func ToRangeAzkarResponse(s *domain.PracticeSummary) RangeAzkarResponse {
	return RangeAzkarResponse{
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Total:        s.Total,
		AzkarSummary: ToCategorySummaryResponses(s.ByCategory),
		Entries:      ToZikrEntryResponses(s.Entries),
	}
}
