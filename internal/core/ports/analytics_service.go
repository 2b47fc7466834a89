package ports

import (
	"context"
	"time"

	"github.com/teamplan/capacity-system/internal/core/engine"
)

// TeamReport wraps the engine's team analytics with the snapshot metadata
// callers need to label the data's point in time.
type TeamReport struct {
	engine.TeamAnalytics
	SnapshotTakenAt time.Time
	EvaluatedAt     time.Time
}

// AnalyticsService computes the team-wide report from one roster snapshot.
// A zero `at` means "now" per the injected clock.
type AnalyticsService interface {
	TeamAnalytics(ctx context.Context, at time.Time) (*TeamReport, error)
}
