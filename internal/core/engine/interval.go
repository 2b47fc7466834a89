// Package engine implements the capacity & allocation computations: interval
// primitives, per-engineer capacity, skill suitability, calendar bucketing,
// and team analytics. Every function is a pure computation over caller
// supplied snapshots and instants; nothing here reads the clock, performs
// I/O, or mutates its inputs.
package engine

import (
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

const hoursPerDay = 24

// DateOnly normalises an instant to UTC midnight. Source data is date-only,
// so all comparisons inside the engine happen on this representation.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DurationDays returns the span between start and end in whole days,
// rounding partial days up. A reversed range yields 0 together with
// domain.ErrReversedRange so callers can log it; it never goes negative.
func DurationDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, domain.ErrReversedRange
	}
	hours := end.Sub(start).Hours()
	days := int(hours) / hoursPerDay
	if hours > float64(days*hoursPerDay) {
		days++
	}
	return days, nil
}

// ContainsInstant reports whether instant lies within [start, end],
// inclusive at both ends.
func ContainsInstant(start, end, instant time.Time) bool {
	return !instant.Before(start) && !instant.After(end)
}

// ProgressFraction returns how far now has advanced through [start, end] as
// a fraction clamped to [0, 1]. A zero-length range counts as complete.
func ProgressFraction(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 1.0
	}
	frac := float64(now.Sub(start)) / float64(total)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
