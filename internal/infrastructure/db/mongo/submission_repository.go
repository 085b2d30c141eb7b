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

const collectionSubmissions = "submissions"

// SubmissionRepository implements ports.SubmissionRepository using MongoDB.
// Items are embedded in the submission document, so insert and delete are
// single-document atomic and no orphaned items can exist.
type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(collectionSubmissions)}
}

type submissionDoc struct {
	ID          primitive.ObjectID      `bson:"_id,omitempty"`
	OwnerID     string                  `bson:"owner_id"`
	ZoneID      string                  `bson:"zone_id,omitempty"`
	NewZoneName string                  `bson:"new_zone_name,omitempty"`
	Location    *domain.Coordinates     `bson:"location,omitempty"`
	Status      string                  `bson:"status"`
	Notes       string                  `bson:"notes,omitempty"`
	ImageURL    string                  `bson:"image_url,omitempty"`
	Items       []domain.SubmissionItem `bson:"items"`
	CollectedAt time.Time               `bson:"collected_at"`
	ModeratedAt *time.Time              `bson:"moderated_at,omitempty"`
	ModeratedBy string                  `bson:"moderated_by,omitempty"`
}

func (d *submissionDoc) toDomain() *domain.Submission {
	return &domain.Submission{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		ZoneID:      d.ZoneID,
		NewZoneName: d.NewZoneName,
		Location:    d.Location,
		Status:      domain.SubmissionStatus(d.Status),
		Notes:       d.Notes,
		ImageURL:    d.ImageURL,
		Items:       d.Items,
		CollectedAt: d.CollectedAt,
		ModeratedAt: d.ModeratedAt,
		ModeratedBy: d.ModeratedBy,
	}
}

// Create inserts a new submission with its embedded items.
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := s.Items
	if items == nil {
		items = []domain.SubmissionItem{}
	}
	doc := submissionDoc{
		OwnerID:     s.OwnerID,
		ZoneID:      s.ZoneID,
		NewZoneName: s.NewZoneName,
		Location:    s.Location,
		Status:      string(s.Status),
		Notes:       s.Notes,
		ImageURL:    s.ImageURL,
		Items:       items,
		CollectedAt: s.CollectedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

// FindByID retrieves a submission. A non-empty ownerID scopes the query so
// non-owners read missing rows as not found.
func (r *SubmissionRepository) FindByID(ctx context.Context, id string, ownerID string) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	filter := bson.M{"_id": oid}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	var doc submissionDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// TransitionStatus performs the single conditional update that makes
// moderation race-safe: the filter matches only while the document is still
// pending, so a concurrent moderator cannot overwrite a terminal state.
func (r *SubmissionRepository) TransitionStatus(ctx context.Context, id string, target domain.SubmissionStatus, moderatorID string, at time.Time) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	filter := bson.M{"_id": oid, "status": string(domain.StatusPending)}
	update := bson.M{"$set": bson.M{
		"status":       string(target),
		"moderated_at": at.UTC(),
		"moderated_by": moderatorID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc submissionDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the submission document, items included.
func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// List returns a page of submissions matching filter and the total count,
// newest collection first with insertion-order tie-break.
func (r *SubmissionRepository) List(ctx context.Context, filter ports.ListSubmissionsFilter) ([]*domain.Submission, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ZoneID != "" {
		query["zone_id"] = filter.ZoneID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "collected_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*domain.Submission
	for cur.Next(ctx) {
		var doc submissionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListAll returns every submission for read-time aggregation.
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Submission
	for cur.Next(ctx) {
		var doc submissionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the indexes list and moderation queries depend on.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "collected_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "zone_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
