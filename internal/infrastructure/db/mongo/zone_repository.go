package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

const collectionZones = "zones"

// ZoneRepository implements ports.ZoneRepository using MongoDB.
type ZoneRepository struct {
	col *mongo.Collection
}

func NewZoneRepository(db *mongo.Database) *ZoneRepository {
	return &ZoneRepository{col: db.Collection(collectionZones)}
}

type zoneDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description,omitempty"`
	Location        domain.Coordinates `bson:"location"`
	Status          string             `bson:"status"`
	EstimatedVolume float64            `bson:"estimated_volume"`
	Accessibility   string             `bson:"accessibility,omitempty"`
	PartnerInfo     string             `bson:"partner_info,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d *zoneDoc) toDomain() *domain.Zone {
	return &domain.Zone{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Description:     d.Description,
		Location:        d.Location,
		Status:          domain.ZoneStatus(d.Status),
		EstimatedVolume: d.EstimatedVolume,
		Accessibility:   d.Accessibility,
		PartnerInfo:     d.PartnerInfo,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *ZoneRepository) Create(ctx context.Context, z *domain.Zone) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := zoneDoc{
		Name:            z.Name,
		Description:     z.Description,
		Location:        z.Location,
		Status:          string(z.Status),
		EstimatedVolume: z.EstimatedVolume,
		Accessibility:   z.Accessibility,
		PartnerInfo:     z.PartnerInfo,
		CreatedAt:       z.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		z.ID = oid.Hex()
	}
	return nil
}

func (r *ZoneRepository) FindByID(ctx context.Context, id string) (*domain.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrZoneNotFound
	}

	var doc zoneDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrZoneNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ZoneRepository) List(ctx context.Context) ([]*domain.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Zone
	for cur.Next(ctx) {
		var doc zoneDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ZoneRepository) Update(ctx context.Context, id string, update ports.ZoneUpdate) (*domain.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrZoneNotFound
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.EstimatedVolume != nil {
		set["estimated_volume"] = *update.EstimatedVolume
	}
	if update.Accessibility != nil {
		set["accessibility"] = *update.Accessibility
	}
	if update.PartnerInfo != nil {
		set["partner_info"] = *update.PartnerInfo
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc zoneDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrZoneNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ZoneRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrZoneNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}
