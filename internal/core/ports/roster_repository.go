package ports

import (
	"context"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

// ListProjectsFilter narrows project listings. Zero values mean no filter.
type ListProjectsFilter struct {
	Status    domain.ProjectStatus // optional: filter by lifecycle status
	ManagerID string               // optional: filter by owning manager
}

// ListAssignmentsFilter narrows assignment listings. Zero values mean no
// filter.
type ListAssignmentsFilter struct {
	EngineerID string    // optional: scoped to one engineer
	ProjectID  string    // optional: scoped to one project
	EndsAfter  time.Time // optional: end_date >= EndsAfter
}

// RosterRepository is the read-only persistence boundary the engine consumes.
// Implementations must not be required for correctness of any computation:
// the engine itself only ever sees value slices.
type RosterRepository interface {
	ListEngineers(ctx context.Context) ([]domain.Engineer, error)
	// FindEngineer returns domain.ErrEngineerNotFound when no engineer has
	// the given id.
	FindEngineer(ctx context.Context, id string) (*domain.Engineer, error)
	ListProjects(ctx context.Context, filter ListProjectsFilter) ([]domain.Project, error)
	// FindProject returns domain.ErrProjectNotFound when no project has the
	// given id.
	FindProject(ctx context.Context, id string) (*domain.Project, error)
	ListAssignments(ctx context.Context, filter ListAssignmentsFilter) ([]domain.Assignment, error)
	ListAssignmentsByEngineer(ctx context.Context, engineerID string) ([]domain.Assignment, error)
}

// SnapshotSource produces one momentarily-consistent view of the whole
// roster. Each analytics request should run against a single snapshot so the
// response reflects one point in time rather than a torn read.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}
