package engine

import (
	"testing"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

func TestComputeCapacityNoAssignments(t *testing.T) {
	e := domain.Engineer{ID: "e1", MaxCapacity: 80}
	c := ComputeCapacity(e, nil, date(2024, time.June, 1))

	if c.Current != 0 {
		t.Errorf("current = %d, want 0", c.Current)
	}
	if c.Available != 80 {
		t.Errorf("available = %d, want maxCapacity 80", c.Available)
	}
}

func TestComputeCapacityDefaultMax(t *testing.T) {
	e := domain.Engineer{ID: "e1"} // no MaxCapacity configured
	c := ComputeCapacity(e, nil, date(2024, time.June, 1))
	if c.Available != domain.DefaultMaxCapacity {
		t.Errorf("available = %d, want default %d", c.Available, domain.DefaultMaxCapacity)
	}
}

func TestComputeCapacity(t *testing.T) {
	now := date(2024, time.June, 15)
	e := domain.Engineer{ID: "e1", MaxCapacity: 100}

	assignments := []domain.Assignment{
		// Active: ends after now.
		{ID: "a1", EngineerID: "e1", Allocation: 50, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
		// Active: ends exactly today (inclusive).
		{ID: "a2", EngineerID: "e1", Allocation: 20, StartDate: date(2024, time.May, 1), EndDate: now},
		// Active even though it has not started yet: only the end date counts.
		{ID: "a3", EngineerID: "e1", Allocation: 10, StartDate: date(2024, time.July, 1), EndDate: date(2024, time.July, 31)},
		// Expired.
		{ID: "a4", EngineerID: "e1", Allocation: 40, StartDate: date(2024, time.January, 1), EndDate: date(2024, time.February, 1)},
		// Someone else's.
		{ID: "a5", EngineerID: "e2", Allocation: 90, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
		// Missing allocation contributes zero.
		{ID: "a6", EngineerID: "e1", StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
	}

	c := ComputeCapacity(e, assignments, now)
	if c.Current != 80 {
		t.Errorf("current = %d, want 80", c.Current)
	}
	if c.Available != 20 {
		t.Errorf("available = %d, want 20", c.Available)
	}
}

func TestComputeCapacityOverAllocatedNeverNegative(t *testing.T) {
	now := date(2024, time.June, 15)
	e := domain.Engineer{ID: "e1", MaxCapacity: 100}
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e1", Allocation: 80, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
		{ID: "a2", EngineerID: "e1", Allocation: 60, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
	}

	c := ComputeCapacity(e, assignments, now)
	// The sum is reported unclamped: the excess is the overload signal.
	if c.Current != 140 {
		t.Errorf("current = %d, want 140", c.Current)
	}
	if c.Available != 0 {
		t.Errorf("available = %d, want 0 (never negative)", c.Available)
	}
}

func TestComputeCapacityDeterministic(t *testing.T) {
	now := date(2024, time.June, 15)
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e1", Allocation: 30, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
		{ID: "a2", EngineerID: "e2", Allocation: 30, StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)},
	}
	a := domain.Engineer{ID: "e1", Skills: []string{"Go"}}
	b := domain.Engineer{ID: "e2", Skills: []string{"Go"}}

	ca := ComputeCapacity(a, assignments, now)
	cb := ComputeCapacity(b, assignments, now)
	if ca != cb {
		t.Errorf("identical workloads should yield identical capacity: %+v vs %+v", ca, cb)
	}
}
