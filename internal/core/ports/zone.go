package ports

import (
	"context"

	"github.com/plastifind/collection-system/internal/core/domain"
)

// ZoneRepository defines persistence operations for zones.
type ZoneRepository interface {
	Create(ctx context.Context, z *domain.Zone) error
	FindByID(ctx context.Context, id string) (*domain.Zone, error)
	List(ctx context.Context) ([]*domain.Zone, error)
	Update(ctx context.Context, id string, update ZoneUpdate) (*domain.Zone, error)
	Delete(ctx context.Context, id string) error
}

// ZoneUpdate carries the mutable zone fields; nil pointers are left unchanged.
type ZoneUpdate struct {
	Name            *string
	Description     *string
	Status          *domain.ZoneStatus
	EstimatedVolume *float64
	Accessibility   *string
	PartnerInfo     *string
}

// CreateZoneInput carries all data needed to register a hotspot.
type CreateZoneInput struct {
	Actor           domain.ActorContext
	Name            string
	Description     string
	Location        CoordinatesInput
	Status          domain.ZoneStatus
	EstimatedVolume float64
	Accessibility   string
	PartnerInfo     string
}

// UpdateZoneInput carries an administrative zone mutation.
type UpdateZoneInput struct {
	Actor  domain.ActorContext
	ZoneID string
	Update ZoneUpdate
}

// ZoneService defines zone use-cases.
type ZoneService interface {
	CreateZone(ctx context.Context, input CreateZoneInput) (*domain.Zone, error)
	ListZones(ctx context.Context, actor domain.ActorContext) ([]*domain.Zone, error)
	UpdateZone(ctx context.Context, input UpdateZoneInput) (*domain.Zone, error)
	DeleteZone(ctx context.Context, actor domain.ActorContext, zoneID string) error
}
