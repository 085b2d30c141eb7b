package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationType classifies a notification record.
type NotificationType string

const (
	NotificationAlert        NotificationType = "alert"
	NotificationAnnouncement NotificationType = "announcement"
	NotificationMessage      NotificationType = "message"
)

// Notification is a message delivered to one actor, or broadcast when
// RecipientID is empty.
type Notification struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	Type        NotificationType `json:"type" bson:"type"`
	Title       string           `json:"title" bson:"title"`
	Message     string           `json:"message" bson:"message"`
	RecipientID string           `json:"recipient_id,omitempty" bson:"recipient_id,omitempty"`
	Read        bool             `json:"read" bson:"read"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
}
