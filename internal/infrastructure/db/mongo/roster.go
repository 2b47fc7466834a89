package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teamplan/capacity-system/internal/core/domain"
	"github.com/teamplan/capacity-system/internal/core/ports"
	"github.com/teamplan/capacity-system/pkg/clock"
)

// Roster aggregates the three collection repositories behind the
// ports.RosterRepository interface and doubles as the uncached
// ports.SnapshotSource.
type Roster struct {
	engineers   *EngineerRepository
	projects    *ProjectRepository
	assignments *AssignmentRepository
	clk         clock.Clock
}

func NewRoster(db *mongo.Database, clk clock.Clock) *Roster {
	return &Roster{
		engineers:   NewEngineerRepository(db),
		projects:    NewProjectRepository(db),
		assignments: NewAssignmentRepository(db),
		clk:         clk,
	}
}

func (r *Roster) ListEngineers(ctx context.Context) ([]domain.Engineer, error) {
	return r.engineers.List(ctx)
}

func (r *Roster) FindEngineer(ctx context.Context, id string) (*domain.Engineer, error) {
	return r.engineers.Find(ctx, id)
}

func (r *Roster) ListProjects(ctx context.Context, filter ports.ListProjectsFilter) ([]domain.Project, error) {
	return r.projects.List(ctx, filter)
}

func (r *Roster) FindProject(ctx context.Context, id string) (*domain.Project, error) {
	return r.projects.Find(ctx, id)
}

func (r *Roster) ListAssignments(ctx context.Context, filter ports.ListAssignmentsFilter) ([]domain.Assignment, error) {
	return r.assignments.List(ctx, filter)
}

func (r *Roster) ListAssignmentsByEngineer(ctx context.Context, engineerID string) ([]domain.Assignment, error) {
	return r.assignments.ListByEngineer(ctx, engineerID)
}

// Snapshot reads all three collections back to back. Mongo gives no
// cross-collection transaction here; the read is momentarily consistent,
// which is the granularity the analytics contract asks for.
func (r *Roster) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	engineers, err := r.engineers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot engineers: %w", err)
	}
	projects, err := r.projects.List(ctx, ports.ListProjectsFilter{})
	if err != nil {
		return nil, fmt.Errorf("snapshot projects: %w", err)
	}
	assignments, err := r.assignments.List(ctx, ports.ListAssignmentsFilter{})
	if err != nil {
		return nil, fmt.Errorf("snapshot assignments: %w", err)
	}

	return &domain.Snapshot{
		Engineers:   engineers,
		Projects:    projects,
		Assignments: assignments,
		TakenAt:     r.clk.Now(),
	}, nil
}

// EnsureIndexes creates the indexes for all roster collections.
func (r *Roster) EnsureIndexes(ctx context.Context) error {
	if err := r.engineers.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("engineer indexes: %w", err)
	}
	if err := r.projects.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("project indexes: %w", err)
	}
	if err := r.assignments.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("assignment indexes: %w", err)
	}
	return nil
}
