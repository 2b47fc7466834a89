package ports

import (
	"context"
	"time"

	"github.com/teamplan/capacity-system/internal/core/domain"
)

// EngineerCapacity is the per-engineer capacity view returned to callers.
type EngineerCapacity struct {
	EngineerID        string
	Name              string
	Role              domain.Role
	Seniority         domain.Seniority
	Skills            []string
	MaxCapacity       int
	CurrentCapacity   int
	AvailableCapacity int
	// EvaluatedAt is the instant the activity predicate was applied at.
	EvaluatedAt time.Time
}

// CapacityService derives capacity and availability for engineers.
// A zero `at` means "now" as supplied by the service's injected clock.
type CapacityService interface {
	GetEngineerCapacity(ctx context.Context, engineerID string, at time.Time) (*EngineerCapacity, error)
	ListEngineerCapacities(ctx context.Context, at time.Time) ([]EngineerCapacity, error)
}
