package ports

import (
	"context"

	"github.com/plastifind/collection-system/internal/core/domain"
)

// NotificationRepository persists notification records.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListForRecipient returns the recipient's notifications plus broadcasts,
	// newest first.
	ListForRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string, recipientID string) error
}

// NotificationInput is the DTO handed to the dispatcher when a domain event
// should notify an actor. An empty RecipientID means broadcast.
type NotificationInput struct {
	Type        domain.NotificationType
	Title       string
	Message     string
	RecipientID string
}

// NotificationService defines the read-side notification use-cases.
type NotificationService interface {
	ListNotifications(ctx context.Context, actor domain.ActorContext) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, actor domain.ActorContext, id string) error
}

// ReportService produces the dashboard aggregates.
type ReportService interface {
	DashboardReport(ctx context.Context, actor domain.ActorContext) (*DashboardReport, error)
}

// DashboardReport is the cached read-time aggregation snapshot.
type DashboardReport struct {
	Zones          map[string]domain.ZoneStats `json:"zones"`
	MaterialTotals map[string]float64          `json:"material_totals"`
	GeneratedAt    int64                       `json:"generated_at"` // unix seconds
}
