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

type scheduleService struct {
	repo ports.RosterRepository
	clk  clock.Clock
	log  zerolog.Logger
}

// NewScheduleService returns a ScheduleService over the given roster
// repository.
func NewScheduleService(repo ports.RosterRepository, clk clock.Clock, log zerolog.Logger) ports.ScheduleService {
	return &scheduleService{repo: repo, clk: clk, log: log}
}

// MonthCalendar buckets assignments onto the days of one calendar month and
// expands engineer/project references to names for display.
func (s *scheduleService) MonthCalendar(ctx context.Context, input ports.CalendarInput) (*ports.CalendarResult, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, fmt.Errorf("month calendar: month %d out of range", input.Month)
	}

	assignments, err := s.repo.ListAssignments(ctx, ports.ListAssignmentsFilter{
		EngineerID: input.EngineerID,
		ProjectID:  input.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("month calendar: %w", err)
	}

	names, err := s.loadNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("month calendar: %w", err)
	}

	buckets := engine.BucketAssignmentsByMonth(assignments, input.Year, time.Month(input.Month), engine.BucketFilter{
		EngineerID: input.EngineerID,
		ProjectID:  input.ProjectID,
	})

	result := &ports.CalendarResult{
		Year:  input.Year,
		Month: input.Month,
		Days:  make([]ports.CalendarDay, 0, len(buckets)),
	}
	for _, b := range buckets {
		day := ports.CalendarDay{
			Day:         b.Day,
			Date:        b.Date,
			Assignments: make([]ports.AssignmentView, 0, len(b.Assignments)),
		}
		for _, a := range b.Assignments {
			day.Assignments = append(day.Assignments, names.view(a))
		}
		result.Days = append(result.Days, day)
	}
	return result, nil
}

// UpcomingAssignments returns assignments starting on or after the
// evaluation instant, ascending by start date, optionally capped.
func (s *scheduleService) UpcomingAssignments(ctx context.Context, input ports.UpcomingInput) ([]ports.AssignmentView, error) {
	at := input.At
	if at.IsZero() {
		at = s.clk.Now()
	}
	eval := engine.DateOnly(at)

	assignments, err := s.repo.ListAssignments(ctx, ports.ListAssignmentsFilter{EndsAfter: eval})
	if err != nil {
		return nil, fmt.Errorf("upcoming assignments: %w", err)
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("upcoming assignments: %w", err)
	}

	upcoming := engine.UpcomingAssignments(assignments, eval, input.Limit)
	views := make([]ports.AssignmentView, 0, len(upcoming))
	for _, a := range upcoming {
		views = append(views, names.view(a))
	}

	s.log.Debug().Int("count", len(views)).Time("evaluated_at", eval).Msg("upcoming assignments computed")
	return views, nil
}

// nameIndex resolves engineer and project ids to display names. This is the
// single join step that expands bare reference ids.
type nameIndex struct {
	engineers map[string]string
	projects  map[string]string
}

func (s *scheduleService) loadNames(ctx context.Context) (*nameIndex, error) {
	engineers, err := s.repo.ListEngineers(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.repo.ListProjects(ctx, ports.ListProjectsFilter{})
	if err != nil {
		return nil, err
	}

	idx := &nameIndex{
		engineers: make(map[string]string, len(engineers)),
		projects:  make(map[string]string, len(projects)),
	}
	for _, e := range engineers {
		idx.engineers[e.ID] = e.Name
	}
	for _, p := range projects {
		idx.projects[p.ID] = p.Name
	}
	return idx, nil
}

func (idx *nameIndex) view(a domain.Assignment) ports.AssignmentView {
	return ports.AssignmentView{
		ID:           a.ID,
		EngineerID:   a.EngineerID,
		EngineerName: idx.engineers[a.EngineerID],
		ProjectID:    a.ProjectID,
		ProjectName:  idx.projects[a.ProjectID],
		Allocation:   a.Allocation,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		Role:         a.Role,
	}
}
