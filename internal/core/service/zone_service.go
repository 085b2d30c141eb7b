package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/policy"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// ZoneService owns hotspot management. Writes are administrative; every
// authenticated role may read.
type ZoneService struct {
	repo   ports.ZoneRepository
	logger zerolog.Logger
}

func NewZoneService(repo ports.ZoneRepository, logger zerolog.Logger) *ZoneService {
	return &ZoneService{repo: repo, logger: logger}
}

func (s *ZoneService) CreateZone(ctx context.Context, input ports.CreateZoneInput) (*domain.Zone, error) {
	if err := policy.Authorize(input.Actor, policy.OpWriteZones); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: zone name is required", domain.ErrValidation)
	}
	status := input.Status
	if status == "" {
		status = domain.ZoneActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown zone status %q", domain.ErrValidation, input.Status)
	}
	if input.EstimatedVolume < 0 {
		return nil, fmt.Errorf("%w: estimated volume must be non-negative", domain.ErrValidation)
	}

	zone := &domain.Zone{
		Name:            input.Name,
		Description:     input.Description,
		Location:        domain.Coordinates{Lat: input.Location.Lat, Lng: input.Location.Lng},
		Status:          status,
		EstimatedVolume: input.EstimatedVolume,
		Accessibility:   input.Accessibility,
		PartnerInfo:     input.PartnerInfo,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, zone); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create zone")
		return nil, err
	}

	s.logger.Info().Str("zone_id", zone.ID).Str("name", zone.Name).Msg("zone created")
	return zone, nil
}

func (s *ZoneService) ListZones(ctx context.Context, actor domain.ActorContext) ([]*domain.Zone, error) {
	if err := policy.Authorize(actor, policy.OpReadZones); err != nil {
		return nil, err
	}
	zones, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

func (s *ZoneService) UpdateZone(ctx context.Context, input ports.UpdateZoneInput) (*domain.Zone, error) {
	if err := policy.Authorize(input.Actor, policy.OpWriteZones); err != nil {
		return nil, err
	}
	if input.Update.Status != nil && !input.Update.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown zone status %q", domain.ErrValidation, *input.Update.Status)
	}
	if input.Update.EstimatedVolume != nil && *input.Update.EstimatedVolume < 0 {
		return nil, fmt.Errorf("%w: estimated volume must be non-negative", domain.ErrValidation)
	}

	zone, err := s.repo.Update(ctx, input.ZoneID, input.Update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("zone_id", zone.ID).Msg("zone updated")
	return zone, nil
}

func (s *ZoneService) DeleteZone(ctx context.Context, actor domain.ActorContext, zoneID string) error {
	if err := policy.Authorize(actor, policy.OpWriteZones); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, zoneID); err != nil {
		return err
	}
	s.logger.Info().Str("zone_id", zoneID).Msg("zone deleted")
	return nil
}
