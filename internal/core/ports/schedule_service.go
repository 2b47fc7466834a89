package ports

import (
	"context"
	"time"
)

// AssignmentView is an assignment expanded with the engineer and project
// names callers render. Expansion is an explicit join performed by the
// service; the stored record only carries ids.
type AssignmentView struct {
	ID           string
	EngineerID   string
	EngineerName string
	ProjectID    string
	ProjectName  string
	Allocation   int
	StartDate    time.Time
	EndDate      time.Time
	Role         string
}

// CalendarDay is one day-of-month bucket. The assignment list is complete;
// display truncation ("+N more") belongs to the caller.
type CalendarDay struct {
	Day         int
	Date        time.Time
	Assignments []AssignmentView
}

// CalendarInput selects the month to bucket and optional scoping filters.
type CalendarInput struct {
	Year       int
	Month      int
	EngineerID string // optional
	ProjectID  string // optional
}

// CalendarResult is the bucketed month.
type CalendarResult struct {
	Year  int
	Month int
	Days  []CalendarDay
}

// UpcomingInput selects assignments starting on or after the evaluation
// instant. Limit <= 0 returns everything.
type UpcomingInput struct {
	At    time.Time // zero means "now" per the injected clock
	Limit int
}

// ScheduleService maps assignments onto calendar views.
type ScheduleService interface {
	MonthCalendar(ctx context.Context, input CalendarInput) (*CalendarResult, error)
	UpcomingAssignments(ctx context.Context, input UpcomingInput) ([]AssignmentView, error)
}
