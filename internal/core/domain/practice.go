package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PracticeKind selects one of the two ledgers. The value doubles as the
// URL segment under /api.
type PracticeKind string

const (
	KindRemembrance PracticeKind = "azkar"
	KindCharity     PracticeKind = "charities"
)

// Valid reports whether k names a known ledger.
func (k PracticeKind) Valid() bool {
	return k == KindRemembrance || k == KindCharity
}

// DefaultUserID is the owner of every entry while the deployment is single-user.
const DefaultUserID = "default_user"

// PracticeEntry is one dated log line in a ledger: a number of remembrance
// repetitions or charitable acts for a single category.
type PracticeEntry struct {
	ID         string       `json:"id"`
	Kind       PracticeKind `json:"kind"`
	UserID     string       `json:"userID"`
	CategoryID int          `json:"categoryID"`
	Count      int          `json:"count"`
	Date       string       `json:"date"`      // YYYY-MM-DD, the logical day of the entry
	Timestamp  time.Time    `json:"timestamp"` // creation instant
	Comments   *string      `json:"comments,omitempty"` // charity only
	EditNotes  []string     `json:"editNotes"`
}

// EntryPatch carries the mutable fields of an update. Nil pointers leave the
// stored value untouched; AppendNote is pushed onto EditNotes.
type EntryPatch struct {
	Count      int
	Comments   *string
	AppendNote *string
}

// HistoryCursor marks the last entry of a history page.
type HistoryCursor struct {
	Timestamp time.Time
	ID        string
}

// HistoryPage is a newest-first slice of a category's entries.
type HistoryPage struct {
	Entries   []PracticeEntry
	NextToken *string
}

// CategoryStats are the running totals of one category.
type CategoryStats struct {
	CategoryID    int        `json:"categoryID"`
	TotalCount    int        `json:"totalCount"`
	TotalSessions int        `json:"totalSessions"`
	LastEntry     *time.Time `json:"lastEntry,omitempty"`
}

// CategorySummary is one group of a daily or range summary.
type CategorySummary struct {
	Count      int             `json:"count"`
	Sessions   int             `json:"sessions"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PracticeSummary groups the entries of a day or an inclusive date range by category.
type PracticeSummary struct {
	StartDate  string                  `json:"startDate"`
	EndDate    string                  `json:"endDate"`
	Total      int                     `json:"total"`
	ByCategory map[int]CategorySummary `json:"byCategory"`
	Entries    []PracticeEntry         `json:"entries"`
}

const (
	// DefaultHistoryLimit is the page size used when a caller gives none.
	DefaultHistoryLimit = 30
	// MaxHistoryLimit bounds a single history page.
	MaxHistoryLimit = 1000
)
