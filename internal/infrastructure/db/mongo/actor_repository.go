package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

const collectionActors = "actors"

// ActorRepository implements ports.ActorRepository using MongoDB.
type ActorRepository struct {
	col *mongo.Collection
}

func NewActorRepository(db *mongo.Database) *ActorRepository {
	return &ActorRepository{col: db.Collection(collectionActors)}
}

type actorDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email,omitempty"`
	Organization   string             `bson:"organization,omitempty"`
	PasswordHash   string             `bson:"password_hash"`
	Role           string             `bson:"role"`
	Status         string             `bson:"status"`
	AssignedZoneID string             `bson:"assigned_zone_id,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (d *actorDoc) toDomain() *domain.Actor {
	return &domain.Actor{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		Name:           d.Name,
		Email:          d.Email,
		Organization:   d.Organization,
		PasswordHash:   d.PasswordHash,
		Role:           domain.Role(d.Role),
		Status:         domain.AccountStatus(d.Status),
		AssignedZoneID: d.AssignedZoneID,
		CreatedAt:      unixToTime(d.CreatedAt),
		UpdatedAt:      unixToTime(d.UpdatedAt),
	}
}

func (r *ActorRepository) Create(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	doc := actorDoc{
		Username:     actor.Username,
		Name:         actor.Name,
		Email:        actor.Email,
		Organization: actor.Organization,
		PasswordHash: actor.PasswordHash,
		Role:         string(actor.Role),
		Status:       string(actor.Status),
		CreatedAt:    actor.CreatedAt.Unix(),
		UpdatedAt:    actor.UpdatedAt.Unix(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrActorExists
		}
		return nil, fmt.Errorf("insert actor: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByUsername(ctx, actor.Username)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *ActorRepository) FindByID(ctx context.Context, id string) (*domain.Actor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActorNotFound
	}

	var doc actorDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActorRepository) FindByUsername(ctx context.Context, username string) (*domain.Actor, error) {
	var doc actorDoc
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActorRepository) List(ctx context.Context) ([]*domain.Actor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Actor
	for cur.Next(ctx) {
		var doc actorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ActorRepository) Update(ctx context.Context, id string, update ports.ActorUpdate) (*domain.Actor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActorNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.AssignedZoneID != nil {
		set["assigned_zone_id"] = *update.AssignedZoneID
	}
	if update.Organization != nil {
		set["organization"] = *update.Organization
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc actorDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActorNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique username index.
func (r *ActorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
