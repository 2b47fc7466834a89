package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

const collectionEngineers = "engineers"

// EngineerRepository reads the engineer roster. The engine only consumes
// snapshots, so this repository is read-only; provisioning and profile edits
// happen in the separate CRUD backend that owns these collections.
type EngineerRepository struct {
	col *mongo.Collection
}

func NewEngineerRepository(db *mongo.Database) *EngineerRepository {
	return &EngineerRepository{col: db.Collection(collectionEngineers)}
}

// List returns all engineers ordered by id for deterministic output.
func (r *EngineerRepository) List(ctx context.Context) ([]domain.Engineer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	engineers := make([]domain.Engineer, 0)
	if err := cursor.All(ctx, &engineers); err != nil {
		return nil, err
	}
	return engineers, nil
}

// Find retrieves one engineer by id.
func (r *EngineerRepository) Find(ctx context.Context, id string) (*domain.Engineer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Engineer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEngineerNotFound
		}
		return nil, err
	}
	return &e, nil
}

// EnsureIndexes creates the indexes list queries rely on.
func (r *EngineerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "skills", Value: 1}}},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
