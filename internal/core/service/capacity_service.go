package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamplan/capacity-system/internal/core/domain"
	"github.com/teamplan/capacity-system/internal/core/engine"
	"github.com/teamplan/capacity-system/internal/core/ports"
	"github.com/teamplan/capacity-system/pkg/clock"
)

type capacityService struct {
	repo ports.RosterRepository
	clk  clock.Clock
	log  zerolog.Logger
}

// NewCapacityService returns a CapacityService computing over the given
// roster repository, with "now" supplied by clk.
func NewCapacityService(repo ports.RosterRepository, clk clock.Clock, log zerolog.Logger) ports.CapacityService {
	return &capacityService{repo: repo, clk: clk, log: log}
}

// GetEngineerCapacity derives one engineer's current and available capacity
// at the given instant (zero = now).
func (s *capacityService) GetEngineerCapacity(ctx context.Context, engineerID string, at time.Time) (*ports.EngineerCapacity, error) {
	eng, err := s.repo.FindEngineer(ctx, engineerID)
	if err != nil {
		return nil, fmt.Errorf("get engineer capacity: %w", err)
	}

	assignments, err := s.repo.ListAssignmentsByEngineer(ctx, engineerID)
	if err != nil {
		return nil, fmt.Errorf("get engineer capacity: %w", err)
	}

	eval := s.resolveAt(at)
	result := capacityView(*eng, assignments, eval)
	return &result, nil
}

// ListEngineerCapacities derives capacity for the whole roster in one pass.
func (s *capacityService) ListEngineerCapacities(ctx context.Context, at time.Time) ([]ports.EngineerCapacity, error) {
	engineers, err := s.repo.ListEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list engineer capacities: %w", err)
	}
	assignments, err := s.repo.ListAssignments(ctx, ports.ListAssignmentsFilter{})
	if err != nil {
		return nil, fmt.Errorf("list engineer capacities: %w", err)
	}

	eval := s.resolveAt(at)
	views := make([]ports.EngineerCapacity, 0, len(engineers))
	for _, e := range engineers {
		views = append(views, capacityView(e, assignments, eval))
	}

	s.log.Debug().Int("engineers", len(engineers)).Time("evaluated_at", eval).Msg("capacity report computed")
	return views, nil
}

// resolveAt substitutes the clock's now for a zero instant and normalises to
// UTC midnight, the engine's uniform date representation.
func (s *capacityService) resolveAt(at time.Time) time.Time {
	if at.IsZero() {
		at = s.clk.Now()
	}
	return engine.DateOnly(at)
}

func capacityView(e domain.Engineer, assignments []domain.Assignment, eval time.Time) ports.EngineerCapacity {
	c := engine.ComputeCapacity(e, assignments, eval)
	return ports.EngineerCapacity{
		EngineerID:        e.ID,
		Name:              e.Name,
		Role:              e.Role,
		Seniority:         e.Seniority,
		Skills:            e.Skills,
		MaxCapacity:       e.EffectiveMaxCapacity(),
		CurrentCapacity:   c.Current,
		AvailableCapacity: c.Available,
		EvaluatedAt:       eval,
	}
}
