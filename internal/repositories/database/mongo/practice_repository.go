// Package mongo stores ledger entries in MongoDB, one collection per ledger,
// using the field names the mobile client has always written.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/apperrors"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	"github.com/SscSPs/alsabqon_app/internal/models"
	"github.com/SscSPs/alsabqon_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ledgerCollection struct {
	name          string
	categoryField string
}

var ledgerCollections = map[domain.PracticeKind]ledgerCollection{
	domain.KindRemembrance: {name: "azkar_entries", categoryField: "zikr_id"},
	domain.KindCharity:     {name: "charity_entries", categoryField: "charity_id"},
}

// MongoPracticeRepository implements the ledger repository on a MongoDB database.
type MongoPracticeRepository struct {
	db *mongo.Database
}

// NewPracticeRepository creates a new repository over db.
func NewPracticeRepository(db *mongo.Database) *MongoPracticeRepository {
	return &MongoPracticeRepository{db: db}
}

var _ portsrepo.PracticeEntryRepositoryFacade = (*MongoPracticeRepository)(nil)

func (r *MongoPracticeRepository) collection(kind domain.PracticeKind) (*mongo.Collection, ledgerCollection, error) {
	lc, ok := ledgerCollections[kind]
	if !ok {
		return nil, ledgerCollection{}, fmt.Errorf("%w: unknown ledger %q", apperrors.ErrValidation, kind)
	}
	return r.db.Collection(lc.name), lc, nil
}

// EnsureIndexes creates the lookup indexes used by history, summaries and updates.
func (r *MongoPracticeRepository) EnsureIndexes(ctx context.Context) error {
	for kind, lc := range ledgerCollections {
		_, err := r.db.Collection(lc.name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: lc.categoryField, Value: 1}, {Key: "timestamp", Value: -1}, {Key: "id", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", kind, err)
		}
	}
	return nil
}

// SaveEntry inserts a new ledger entry.
func (r *MongoPracticeRepository) SaveEntry(ctx context.Context, entry domain.PracticeEntry) error {
	col, _, err := r.collection(entry.Kind)
	if err != nil {
		return err
	}
	if _, err := col.InsertOne(ctx, mapping.ToModelPracticeEntry(entry)); err != nil {
		return fmt.Errorf("failed to save %s entry %s: %w", entry.Kind, entry.ID, err)
	}
	return nil
}

// FindEntryByID retrieves one entry owned by userID.
func (r *MongoPracticeRepository) FindEntryByID(ctx context.Context, kind domain.PracticeKind, userID, entryID string) (*domain.PracticeEntry, error) {
	col, _, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	var m models.PracticeEntry
	if err := col.FindOne(ctx, bson.M{"id": entryID, "user_id": userID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s entry %s: %w", kind, entryID, err)
	}
	entry := mapping.ToDomainPracticeEntry(kind, m)
	return &entry, nil
}

// UpdateEntry applies the patch atomically and returns the updated document.
func (r *MongoPracticeRepository) UpdateEntry(ctx context.Context, kind domain.PracticeKind, userID, entryID string, patch domain.EntryPatch) (*domain.PracticeEntry, error) {
	col, _, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	set := bson.M{"count": patch.Count}
	if patch.Comments != nil {
		set["comments"] = *patch.Comments
	}
	update := bson.M{"$set": set}
	if patch.AppendNote != nil {
		update["$push"] = bson.M{"edit_notes": *patch.AppendNote}
	}

	var m models.PracticeEntry
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := col.FindOneAndUpdate(ctx, bson.M{"id": entryID, "user_id": userID}, update, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s entry %s: %w", kind, entryID, err)
	}
	entry := mapping.ToDomainPracticeEntry(kind, m)
	return &entry, nil
}

func (r *MongoPracticeRepository) findEntries(ctx context.Context, kind domain.PracticeKind, col *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]domain.PracticeEntry, error) {
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s entries: %w", kind, err)
	}
	defer cur.Close(ctx)

	var out []models.PracticeEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s entries: %w", kind, err)
	}
	return mapping.ToDomainPracticeEntrySlice(kind, out), nil
}

// ListEntriesByCategory returns a newest-first page, resuming strictly after the cursor.
func (r *MongoPracticeRepository) ListEntriesByCategory(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int, limit int, after *domain.HistoryCursor) ([]domain.PracticeEntry, error) {
	col, lc, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": userID, lc.categoryField: categoryID}
	if after != nil {
		filter["$or"] = bson.A{
			bson.M{"timestamp": bson.M{"$lt": after.Timestamp}},
			bson.M{"timestamp": after.Timestamp, "id": bson.M{"$lt": after.ID}},
		}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "id", Value: -1}}).
		SetLimit(int64(limit))

	return r.findEntries(ctx, kind, col, filter, opts)
}

// ListEntriesByDateRange returns entries whose date string lies in [startDate, endDate], oldest first.
func (r *MongoPracticeRepository) ListEntriesByDateRange(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) ([]domain.PracticeEntry, error) {
	col, _, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"user_id": userID, "date": bson.M{"$gte": startDate, "$lte": endDate}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "id", Value: 1}})

	return r.findEntries(ctx, kind, col, filter, opts)
}

// GetCategoryStats aggregates a category server side.
func (r *MongoPracticeRepository) GetCategoryStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error) {
	col, lc, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID, lc.categoryField: categoryID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total_count":    bson.M{"$sum": "$count"},
			"total_sessions": bson.M{"$sum": 1},
			"last_entry":     bson.M{"$max": "$timestamp"},
		}}},
	}

	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s stats for category %d: %w", kind, categoryID, err)
	}
	defer cur.Close(ctx)

	var m models.CategoryStats
	if cur.Next(ctx) {
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode %s stats: %w", kind, err)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s stats: %w", kind, err)
	}
	stats := mapping.ToDomainCategoryStats(categoryID, m)
	return &stats, nil
}
