package engine

import (
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

// Capacity is the derived allocation state of one engineer at one instant.
type Capacity struct {
	// Current is the sum of allocation percentages over the engineer's
	// active assignments. It is intentionally not clamped: a value above
	// the engineer's maximum is the overload signal analytics consumes.
	Current int
	// Available is the remaining headroom, floored at zero.
	Available int
}

// ComputeCapacity sums the engineer's active allocations at now and derives
// the remaining headroom. An assignment is active when its end date is on or
// after now (end-date test only; not-yet-started assignments still count).
// Deterministic, O(len(assignments)), no side effects.
func ComputeCapacity(e domain.Engineer, assignments []domain.Assignment, now time.Time) Capacity {
	current := 0
	for _, a := range assignments {
		if a.EngineerID != e.ID {
			continue
		}
		if !a.ActiveAt(now) {
			continue
		}
		// A missing allocation is the zero value and contributes nothing.
		current += a.Allocation
	}

	available := e.EffectiveMaxCapacity() - current
	if available < 0 {
		available = 0
	}
	return Capacity{Current: current, Available: available}
}
