package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plastifind/collection-system/internal/core/ports"
)

const (
	reportKey = "reports:dashboard"
	reportTTL = 60 * time.Second
)

// ReportCache stores the computed dashboard snapshot in Redis so dashboard
// reads do not rescan every submission on each request.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached snapshot, or (nil, nil) on a cache miss.
func (c *ReportCache) Get(ctx context.Context) (*ports.DashboardReport, error) {
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var report ports.DashboardReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	return &report, nil
}

// Set stores the snapshot with a short TTL.
func (c *ReportCache) Set(ctx context.Context, report *ports.DashboardReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, reportKey, raw, reportTTL).Err()
}
