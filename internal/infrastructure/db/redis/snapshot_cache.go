package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/teamplan/capacity-system/internal/api/metrics"
	"github.com/teamplan/capacity-system/internal/core/domain"
	"github.com/teamplan/capacity-system/internal/core/ports"
)

const snapshotKey = "snapshot:roster"

// SnapshotCache decorates a SnapshotSource with a short-lived Redis cache.
// Dashboard views fire several engine queries per render; within the TTL
// they all see the same point-in-time snapshot and the store is read once.
// Cache failures degrade to a direct load, never to a request failure.
type SnapshotCache struct {
	client *redis.Client
	source ports.SnapshotSource
	ttl    time.Duration
	log    zerolog.Logger
}

// NewSnapshotCache wraps source with a cache entry living for ttl.
func NewSnapshotCache(client *redis.Client, source ports.SnapshotSource, ttl time.Duration, log zerolog.Logger) *SnapshotCache {
	return &SnapshotCache{client: client, source: source, ttl: ttl, log: log}
}

// Snapshot returns the cached snapshot when present, otherwise loads from
// the underlying source and stores the result.
func (c *SnapshotCache) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	start := time.Now()

	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	switch {
	case err == nil:
		var snap domain.Snapshot
		if unmarshalErr := json.Unmarshal(raw, &snap); unmarshalErr == nil {
			metrics.SnapshotCacheTotal.WithLabelValues("hit").Inc()
			metrics.SnapshotLoadDuration.WithLabelValues("cache").Observe(time.Since(start).Seconds())
			return &snap, nil
		}
		// A corrupt entry is dropped and reloaded.
		c.log.Warn().Msg("discarding unreadable snapshot cache entry")
		_ = c.client.Del(ctx, snapshotKey).Err()
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Msg("snapshot cache read failed, loading directly")
	}

	metrics.SnapshotCacheTotal.WithLabelValues("miss").Inc()
	snap, err := c.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	metrics.SnapshotLoadDuration.WithLabelValues("store").Observe(time.Since(start).Seconds())
	metrics.SnapshotEntities.WithLabelValues("engineers").Set(float64(len(snap.Engineers)))
	metrics.SnapshotEntities.WithLabelValues("projects").Set(float64(len(snap.Projects)))
	metrics.SnapshotEntities.WithLabelValues("assignments").Set(float64(len(snap.Assignments)))

	if raw, marshalErr := json.Marshal(snap); marshalErr == nil {
		if setErr := c.client.Set(ctx, snapshotKey, raw, c.ttl).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Msg("failed to store snapshot cache entry")
		}
	}
	return snap, nil
}

// Invalidate drops the cached snapshot so the next read is fresh.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey).Err()
}
