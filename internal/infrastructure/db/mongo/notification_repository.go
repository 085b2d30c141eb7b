package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

const collectionNotifications = "notifications"

// NotificationRepository implements ports.NotificationRepository using MongoDB.
type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) ports.NotificationRepository {
	return &NotificationRepository{col: db.Collection(collectionNotifications)}
}

type notificationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	Title       string             `bson:"title"`
	Message     string             `bson:"message"`
	RecipientID string             `bson:"recipient_id,omitempty"`
	Read        bool               `bson:"read"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *NotificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := notificationDoc{
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		RecipientID: n.RecipientID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid.Hex()
	}
	return nil
}

// ListForRecipient returns the recipient's notifications and broadcasts,
// newest first.
func (r *NotificationRepository) ListForRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"recipient_id": recipientID},
		bson.M{"recipient_id": bson.M{"$exists": false}},
		bson.M{"recipient_id": ""},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(200)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Notification
	for cur.Next(ctx) {
		var doc notificationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, &domain.Notification{
			ID:          doc.ID.Hex(),
			Type:        domain.NotificationType(doc.Type),
			Title:       doc.Title,
			Message:     doc.Message,
			RecipientID: doc.RecipientID,
			Read:        doc.Read,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return out, cur.Err()
}

// MarkRead flags a notification read. The recipient filter stops actors from
// acknowledging other actors' notifications.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string, recipientID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotificationNotFound
	}

	filter := bson.M{"_id": oid, "$or": bson.A{
		bson.M{"recipient_id": recipientID},
		bson.M{"recipient_id": ""},
	}}
	_, err = r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	return err
}
