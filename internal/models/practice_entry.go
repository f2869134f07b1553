package models

import "time"

// PracticeEntry is the stored shape of a ledger entry. Only the category
// field matching the ledger kind is set; the document store keeps the
// original per-kind field names.
type PracticeEntry struct {
	ID        string    `bson:"id"`
	UserID    string    `bson:"user_id"`
	ZikrID    *int      `bson:"zikr_id,omitempty"`
	CharityID *int      `bson:"charity_id,omitempty"`
	Count     int       `bson:"count"`
	Date      string    `bson:"date"`
	Timestamp time.Time `bson:"timestamp"`
	Comments  *string   `bson:"comments,omitempty"`
	EditNotes []string  `bson:"edit_notes"`
}

// CategoryStats is the aggregate row of one category.
type CategoryStats struct {
	TotalCount    int        `bson:"total_count"`
	TotalSessions int        `bson:"total_sessions"`
	LastEntry     *time.Time `bson:"last_entry"`
}
