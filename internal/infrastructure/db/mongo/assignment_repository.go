package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teamplan/capacity-system/internal/core/domain"
	"github.com/teamplan/capacity-system/internal/core/ports"
)

const collectionAssignments = "assignments"

// AssignmentRepository reads the assignment ledger.
type AssignmentRepository struct {
	col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{col: db.Collection(collectionAssignments)}
}

// List returns assignments matching the filter, ordered by id.
func (r *AssignmentRepository) List(ctx context.Context, f ports.ListAssignmentsFilter) ([]domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.EngineerID != "" {
		filter["engineer_id"] = f.EngineerID
	}
	if f.ProjectID != "" {
		filter["project_id"] = f.ProjectID
	}
	if !f.EndsAfter.IsZero() {
		filter["end_date"] = bson.M{"$gte": f.EndsAfter}
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := make([]domain.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByEngineer returns all assignments referencing one engineer.
func (r *AssignmentRepository) ListByEngineer(ctx context.Context, engineerID string) ([]domain.Assignment, error) {
	return r.List(ctx, ports.ListAssignmentsFilter{EngineerID: engineerID})
}

// EnsureIndexes creates the indexes list queries rely on.
func (r *AssignmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "engineer_id", Value: 1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
		{Keys: bson.D{{Key: "end_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
