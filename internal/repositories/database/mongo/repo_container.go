package mongo

import (
	"context"

	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires the MongoDB-backed repositories and makes sure
// their indexes exist. Reference data readers are filled in by the caller.
func NewRepositoryProvider(ctx context.Context, db *mongo.Database) (portsrepo.RepositoryProvider, error) {
	practiceRepo := NewPracticeRepository(db)
	if err := practiceRepo.EnsureIndexes(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{
		PracticeRepo: practiceRepo,
	}, nil
}
