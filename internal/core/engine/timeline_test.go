package engine

import (
	"testing"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

func TestBucketAssignmentsByMonthInclusiveEndpoints(t *testing.T) {
	a := domain.Assignment{
		ID:         "a1",
		EngineerID: "e1",
		ProjectID:  "p1",
		StartDate:  date(2024, time.January, 10),
		EndDate:    date(2024, time.January, 20),
	}

	buckets := BucketAssignmentsByMonth([]domain.Assignment{a}, 2024, time.January, BucketFilter{})
	if len(buckets) != 31 {
		t.Fatalf("January has 31 buckets, got %d", len(buckets))
	}

	for _, b := range buckets {
		contains := len(b.Assignments) == 1
		want := b.Day >= 10 && b.Day <= 20
		if contains != want {
			t.Errorf("day %d: contains=%v, want %v", b.Day, contains, want)
		}
	}
}

func TestBucketAssignmentsByMonthLeapFebruary(t *testing.T) {
	buckets := BucketAssignmentsByMonth(nil, 2024, time.February, BucketFilter{})
	if len(buckets) != 29 {
		t.Errorf("February 2024 has 29 days, got %d buckets", len(buckets))
	}
	buckets = BucketAssignmentsByMonth(nil, 2023, time.February, BucketFilter{})
	if len(buckets) != 28 {
		t.Errorf("February 2023 has 28 days, got %d buckets", len(buckets))
	}
}

func TestBucketAssignmentsByMonthOrderedByID(t *testing.T) {
	span := func(id string) domain.Assignment {
		return domain.Assignment{
			ID:        id,
			StartDate: date(2024, time.March, 1),
			EndDate:   date(2024, time.March, 31),
		}
	}
	buckets := BucketAssignmentsByMonth([]domain.Assignment{span("a3"), span("a1"), span("a2")}, 2024, time.March, BucketFilter{})

	first := buckets[0].Assignments
	if len(first) != 3 {
		t.Fatalf("expected 3 assignments on day 1, got %d", len(first))
	}
	for i, want := range []string{"a1", "a2", "a3"} {
		if first[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, first[i].ID, want)
		}
	}
}

func TestBucketAssignmentsByMonthFilters(t *testing.T) {
	assignments := []domain.Assignment{
		{ID: "a1", EngineerID: "e1", ProjectID: "p1", StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 30)},
		{ID: "a2", EngineerID: "e2", ProjectID: "p1", StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 30)},
		{ID: "a3", EngineerID: "e1", ProjectID: "p2", StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 30)},
	}

	tests := []struct {
		name   string
		filter BucketFilter
		want   []string
	}{
		{"no filter", BucketFilter{}, []string{"a1", "a2", "a3"}},
		{"by engineer", BucketFilter{EngineerID: "e1"}, []string{"a1", "a3"}},
		{"by project", BucketFilter{ProjectID: "p1"}, []string{"a1", "a2"}},
		{"by both", BucketFilter{EngineerID: "e1", ProjectID: "p1"}, []string{"a1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buckets := BucketAssignmentsByMonth(assignments, 2024, time.April, tc.filter)
			got := buckets[14].Assignments // mid-month, all spans cover it
			if len(got) != len(tc.want) {
				t.Fatalf("got %d assignments, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestUpcomingAssignments(t *testing.T) {
	now := date(2024, time.June, 15)
	assignments := []domain.Assignment{
		{ID: "a1", StartDate: date(2024, time.July, 1), EndDate: date(2024, time.July, 31)},
		{ID: "a2", StartDate: date(2024, time.June, 20), EndDate: date(2024, time.August, 1)},
		{ID: "a3", StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 30)}, // already started
		{ID: "a4", StartDate: now, EndDate: date(2024, time.July, 15)},                      // starting today counts
	}

	got := UpcomingAssignments(assignments, now, 0)
	wantOrder := []string{"a4", "a2", "a1"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d upcoming, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestUpcomingAssignmentsLimit(t *testing.T) {
	now := date(2024, time.June, 15)
	assignments := []domain.Assignment{
		{ID: "a1", StartDate: date(2024, time.July, 1)},
		{ID: "a2", StartDate: date(2024, time.June, 20)},
		{ID: "a3", StartDate: date(2024, time.August, 1)},
	}

	got := UpcomingAssignments(assignments, now, 2)
	if len(got) != 2 {
		t.Fatalf("limit 2: got %d", len(got))
	}
	if got[0].ID != "a2" || got[1].ID != "a1" {
		t.Errorf("got order %s, %s; want a2, a1", got[0].ID, got[1].ID)
	}
}
