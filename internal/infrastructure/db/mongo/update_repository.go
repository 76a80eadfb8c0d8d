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

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

const collectionUpdates = "updates"

// UpdateRepository implements ports.UpdateRepository on the updates collection.
type UpdateRepository struct {
	coll *mongo.Collection
}

func NewUpdateRepository(db *mongo.Database) *UpdateRepository {
	return &UpdateRepository{coll: db.Collection(collectionUpdates)}
}

type mongoUpdate struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	CenterName       string             `bson:"center_name"`
	Description      string             `bson:"description"`
	Category         string             `bson:"category"`
	PublishDate      string             `bson:"publish_date"`
	IsPublished      bool               `bson:"is_published"`
	IsSliderFeatured bool               `bson:"is_slider_featured"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func toMongoUpdate(u *domain.Update) mongoUpdate {
	return mongoUpdate{
		Title:            u.Title,
		CenterName:       u.CenterName,
		Description:      u.Description,
		Category:         u.Category,
		PublishDate:      u.PublishDate,
		IsPublished:      u.IsPublished,
		IsSliderFeatured: u.IsSliderFeatured,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *mongoUpdate) toDomain() *domain.Update {
	return &domain.Update{
		ID:               m.ID.Hex(),
		Title:            m.Title,
		CenterName:       m.CenterName,
		Description:      m.Description,
		Category:         m.Category,
		PublishDate:      m.PublishDate,
		IsPublished:      m.IsPublished,
		IsSliderFeatured: m.IsSliderFeatured,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

// Create inserts a new post.
func (r *UpdateRepository) Create(ctx context.Context, u *domain.Update) (*domain.Update, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUpdate(u)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert update: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *UpdateRepository) FindByID(ctx context.Context, id string) (*domain.Update, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUpdateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUpdate
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUpdateNotFound
		}
		return nil, fmt.Errorf("find update: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns posts matching filter, newest publish date first.
func (r *UpdateRepository) List(ctx context.Context, filter ports.UpdateFilter) ([]*domain.Update, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.PublishedOnly || filter.SliderOnly {
		q["is_published"] = true
	}
	if filter.SliderOnly {
		q["is_slider_featured"] = true
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "publish_date", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoUpdate
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	out := make([]*domain.Update, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Replace overwrites every mutable field of an existing post.
func (r *UpdateRepository) Replace(ctx context.Context, u *domain.Update) (*domain.Update, error) {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil, domain.ErrUpdateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUpdate(u)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("replace update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUpdateNotFound
	}
	return doc.toDomain(), nil
}

func (r *UpdateRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUpdateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete update: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUpdateNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the public listings sort and filter on.
func (r *UpdateRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "publish_date", Value: -1}}},
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "is_slider_featured", Value: 1}}},
	})
	return err
}
