package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamplan/capacity-system/internal/core/engine"
	"github.com/teamplan/capacity-system/internal/core/ports"
	"github.com/teamplan/capacity-system/pkg/clock"
)

type suitabilityService struct {
	repo ports.RosterRepository
	clk  clock.Clock
	log  zerolog.Logger
}

// NewSuitabilityService returns a SuitabilityService over the given roster
// repository.
func NewSuitabilityService(repo ports.RosterRepository, clk clock.Clock, log zerolog.Logger) ports.SuitabilityService {
	return &suitabilityService{repo: repo, clk: clk, log: log}
}

// FindSuitableEngineers ranks the engineers whose skills intersect the
// project's required skills, each annotated with capacity at the evaluation
// instant. A project without required skills yields an empty candidate list.
func (s *suitabilityService) FindSuitableEngineers(ctx context.Context, projectID string, at time.Time) (*ports.SuitabilityResult, error) {
	project, err := s.repo.FindProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("find suitable engineers: %w", err)
	}
	engineers, err := s.repo.ListEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("find suitable engineers: %w", err)
	}
	assignments, err := s.repo.ListAssignments(ctx, ports.ListAssignmentsFilter{})
	if err != nil {
		return nil, fmt.Errorf("find suitable engineers: %w", err)
	}

	if at.IsZero() {
		at = s.clk.Now()
	}
	eval := engine.DateOnly(at)

	candidates := engine.FindSuitableEngineers(*project, engineers, assignments, eval)
	result := &ports.SuitabilityResult{
		ProjectID:      project.ID,
		ProjectName:    project.Name,
		RequiredSkills: project.RequiredSkills,
		Candidates:     make([]ports.CandidateEngineer, 0, len(candidates)),
		EvaluatedAt:    eval,
	}
	for _, c := range candidates {
		result.Candidates = append(result.Candidates, ports.CandidateEngineer{
			EngineerID:        c.Engineer.ID,
			Name:              c.Engineer.Name,
			Role:              c.Engineer.Role,
			Seniority:         c.Engineer.Seniority,
			MatchedSkills:     c.MatchedSkills,
			CurrentCapacity:   c.Capacity.Current,
			AvailableCapacity: c.Capacity.Available,
		})
	}

	s.log.Debug().
		Str("project_id", project.ID).
		Int("candidates", len(result.Candidates)).
		Msg("suitability computed")
	return result, nil
}
