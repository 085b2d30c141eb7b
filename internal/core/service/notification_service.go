package service

import (
	"context"
	"fmt"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/policy"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// NotificationService serves the read side of notifications; writes happen
// asynchronously through the dispatcher.
type NotificationService struct {
	repo ports.NotificationRepository
}

func NewNotificationService(repo ports.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListNotifications(ctx context.Context, actor domain.ActorContext) ([]*domain.Notification, error) {
	if err := policy.Authorize(actor, policy.OpReadNotifications); err != nil {
		return nil, err
	}
	items, err := s.repo.ListForRecipient(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, actor domain.ActorContext, id string) error {
	if err := policy.Authorize(actor, policy.OpAckNotification); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, id, actor.ID)
}
