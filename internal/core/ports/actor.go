package ports

import (
	"context"

	"github.com/plastifind/collection-system/internal/core/domain"
)

// ActorRepository defines persistence operations for actor accounts.
type ActorRepository interface {
	Create(ctx context.Context, actor *domain.Actor) (*domain.Actor, error)
	FindByID(ctx context.Context, id string) (*domain.Actor, error)
	FindByUsername(ctx context.Context, username string) (*domain.Actor, error)
	List(ctx context.Context) ([]*domain.Actor, error)
	Update(ctx context.Context, id string, update ActorUpdate) (*domain.Actor, error)
}

// ActorUpdate carries the administratively mutable account fields; nil
// pointers are left unchanged. Accounts are never hard-deleted.
type ActorUpdate struct {
	Role           *domain.Role
	Status         *domain.AccountStatus
	AssignedZoneID *string
	Organization   *string
}

// UpdateActorInput carries an administrative account mutation.
type UpdateActorInput struct {
	Actor         domain.ActorContext
	TargetActorID string
	Update        ActorUpdate
}

// ActorService defines the administrative account use-cases.
type ActorService interface {
	ListActors(ctx context.Context, actor domain.ActorContext) ([]*domain.Actor, error)
	UpdateActor(ctx context.Context, input UpdateActorInput) (*domain.Actor, error)
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Actor, error)
	Login(ctx context.Context, username, password string) (string, *domain.Actor, error)
}

// RegisterInput carries self-service registration data.
type RegisterInput struct {
	Username     string
	Password     string
	Name         string
	Email        string
	Organization string
	Role         domain.Role
}
