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

type analyticsService struct {
	snapshots ports.SnapshotSource
	clk       clock.Clock
	log       zerolog.Logger
}

// NewAnalyticsService returns an AnalyticsService reading through the given
// snapshot source so every report reflects one point-in-time view of the
// roster.
func NewAnalyticsService(snapshots ports.SnapshotSource, clk clock.Clock, log zerolog.Logger) ports.AnalyticsService {
	return &analyticsService{snapshots: snapshots, clk: clk, log: log}
}

// TeamAnalytics recomputes the full team report from one snapshot. There is
// no incremental model: each request is a fresh reduction over the snapshot.
func (s *analyticsService) TeamAnalytics(ctx context.Context, at time.Time) (*ports.TeamReport, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("team analytics: %w", err)
	}

	if at.IsZero() {
		at = s.clk.Now()
	}
	eval := engine.DateOnly(at)

	report := &ports.TeamReport{
		TeamAnalytics:   engine.ComputeTeamAnalytics(snap.Engineers, snap.Projects, snap.Assignments, eval),
		SnapshotTakenAt: snap.TakenAt,
		EvaluatedAt:     eval,
	}

	s.log.Info().
		Int("engineers", report.TotalEngineers).
		Int("projects", report.TotalProjects).
		Int("overloaded", report.OverloadedEngineers).
		Time("evaluated_at", eval).
		Msg("team analytics computed")
	return report, nil
}
