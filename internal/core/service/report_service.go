package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/policy"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// SnapshotCache abstracts the dashboard report cache (Redis).
type SnapshotCache interface {
	Get(ctx context.Context) (*ports.DashboardReport, error)
	Set(ctx context.Context, report *ports.DashboardReport) error
}

// ReportService computes the dashboard aggregates from submissions. The
// derivation itself is the pure domain.AggregateByZone; this service only
// loads, caches, and authorizes.
type ReportService struct {
	submissions ports.SubmissionRepository
	cache       SnapshotCache
	log         zerolog.Logger
}

func NewReportService(submissions ports.SubmissionRepository, cache SnapshotCache, log zerolog.Logger) *ReportService {
	return &ReportService{submissions: submissions, cache: cache, log: log}
}

// DashboardReport returns the aggregated zone and material statistics,
// served from cache when a fresh snapshot exists. Cache failures degrade to
// a direct computation, never to an error.
func (s *ReportService) DashboardReport(ctx context.Context, actor domain.ActorContext) (*ports.DashboardReport, error) {
	if err := policy.Authorize(actor, policy.OpReadReports); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.log.Warn().Err(err).Msg("report cache read failed, recomputing")
		} else if cached != nil {
			return cached, nil
		}
	}

	submissions, err := s.submissions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &ports.DashboardReport{
		Zones:          domain.AggregateByZone(submissions),
		MaterialTotals: domain.MaterialTotals(submissions),
		GeneratedAt:    time.Now().UTC().Unix(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache report snapshot")
		}
	}

	return report, nil
}
