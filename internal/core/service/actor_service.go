package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/policy"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// ActorService owns the administrative account surface: listing accounts and
// mutating role, status, and zone assignment. Accounts are never hard-deleted.
type ActorService struct {
	repo   ports.ActorRepository
	logger zerolog.Logger
}

func NewActorService(repo ports.ActorRepository, logger zerolog.Logger) *ActorService {
	return &ActorService{repo: repo, logger: logger}
}

func (s *ActorService) ListActors(ctx context.Context, actor domain.ActorContext) ([]*domain.Actor, error) {
	if err := policy.Authorize(actor, policy.OpListActors); err != nil {
		return nil, err
	}
	actors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	return actors, nil
}

func (s *ActorService) UpdateActor(ctx context.Context, input ports.UpdateActorInput) (*domain.Actor, error) {
	if err := policy.Authorize(input.Actor, policy.OpMutateActor); err != nil {
		return nil, err
	}
	if input.Update.Role != nil && !input.Update.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *input.Update.Role)
	}
	if input.Update.Status != nil {
		switch *input.Update.Status {
		case domain.AccountActive, domain.AccountSuspended:
		default:
			return nil, fmt.Errorf("%w: unknown account status %q", domain.ErrValidation, *input.Update.Status)
		}
	}

	updated, err := s.repo.Update(ctx, input.TargetActorID, input.Update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("actor_id", updated.ID).
		Str("updated_by", input.Actor.ID).
		Str("role", string(updated.Role)).
		Str("status", string(updated.Status)).
		Msg("actor updated")
	return updated, nil
}
