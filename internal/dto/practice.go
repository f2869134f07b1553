package dto

import (
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

// CreateEntryRequest is the kind-neutral input of a ledger create.
type CreateEntryRequest struct {
	CategoryID      int
	Count           int
	Date            string
	Comment         *string
	Timezone        *string
	ClientTimestamp *string
}

// UpdateEntryRequest is the kind-neutral input of a ledger update.
// Comments is only honoured by the charity ledger.
type UpdateEntryRequest struct {
	Count           int
	Comments        *string
	EditNote        *string
	Timezone        *string
	ClientTimestamp *string
}

// HistoryParams holds the paging parameters of a history listing.
type HistoryParams struct {
	Limit     int
	NextToken string
}

// HistoryQuery binds the history query string. Days is the name the mobile
// client historically sent for the limit.
type HistoryQuery struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Days      int    `form:"days" binding:"omitempty,min=1,max=1000"`
	NextToken string `form:"next_token"`
}

// ToHistoryParams resolves the limit alias.
func (q HistoryQuery) ToHistoryParams() HistoryParams {
	limit := q.Limit
	if limit == 0 {
		limit = q.Days
	}
	return HistoryParams{Limit: limit, NextToken: q.NextToken}
}

// RangeQuery binds the range summary query string.
type RangeQuery struct {
	StartDate string `form:"start_date" binding:"required,isodate"`
	EndDate   string `form:"end_date" binding:"required,isodate"`
}

// CategorySummaryResponse is one group of a summary.
type CategorySummaryResponse struct {
	Count      int     `json:"count"`
	Sessions   int     `json:"sessions"`
	Percentage float64 `json:"percentage"`
}

// ToCategorySummaryResponses converts the grouped domain summary.
func ToCategorySummaryResponses(groups map[int]domain.CategorySummary) map[int]CategorySummaryResponse {
	res := make(map[int]CategorySummaryResponse, len(groups))
	for id, g := range groups {
		res[id] = CategorySummaryResponse{
			Count:      g.Count,
			Sessions:   g.Sessions,
			Percentage: g.Percentage.InexactFloat64(),
		}
	}
	return res
}

func editNotesOrEmpty(notes []string) []string {
	if notes == nil {
		return []string{}
	}
	return notes
}

// lastEntryOrNil keeps the zero-entry stats record serialising last_entry as null.
func lastEntryOrNil(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}
