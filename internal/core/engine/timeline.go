package engine

import (
	"sort"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

// DayBucket holds every assignment spanning one calendar day. Buckets are
// complete: truncating long lists for display is the caller's job.
type DayBucket struct {
	Day         int
	Date        time.Time
	Assignments []domain.Assignment
}

// BucketFilter optionally narrows bucketing to one engineer and/or one
// project. Empty fields match everything.
type BucketFilter struct {
	EngineerID string
	ProjectID  string
}

func (f BucketFilter) matches(a domain.Assignment) bool {
	if f.EngineerID != "" && a.EngineerID != f.EngineerID {
		return false
	}
	if f.ProjectID != "" && a.ProjectID != f.ProjectID {
		return false
	}
	return true
}

// BucketAssignmentsByMonth maps assignments onto the days of one Gregorian
// calendar month. Day d's bucket contains every assignment whose [start,
// end] range contains the UTC-midnight instant of that day, both endpoints
// inclusive. Buckets are ordered by day; assignments within a bucket are
// ordered by id.
func BucketAssignmentsByMonth(assignments []domain.Assignment, year int, month time.Month, filter BucketFilter) []DayBucket {
	// Day 0 of the next month is the last day of this one; this handles
	// month lengths and leap years via the standard library calendar.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	candidates := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if filter.matches(a) {
			candidates = append(candidates, a)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	buckets := make([]DayBucket, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		bucket := DayBucket{Day: d, Date: day, Assignments: []domain.Assignment{}}
		for _, a := range candidates {
			if ContainsInstant(DateOnly(a.StartDate), DateOnly(a.EndDate), day) {
				bucket.Assignments = append(bucket.Assignments, a)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// UpcomingAssignments returns the assignments starting on or after now,
// sorted ascending by start date (ties by id). A limit <= 0 means no cap.
func UpcomingAssignments(assignments []domain.Assignment, now time.Time, limit int) []domain.Assignment {
	upcoming := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if !a.StartDate.Before(now) {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].StartDate.Equal(upcoming[j].StartDate) {
			return upcoming[i].StartDate.Before(upcoming[j].StartDate)
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
