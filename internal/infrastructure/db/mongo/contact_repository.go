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
)

const collectionContacts = "contacts"

// ContactRepository implements ports.ContactRepository on the contacts collection.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(collectionContacts)}
}

type mongoContact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FullName    string             `bson:"full_name"`
	PhoneNumber string             `bson:"phone_number"`
	Service     string             `bson:"service"`
	Message     string             `bson:"message,omitempty"`
	Status      string             `bson:"status"`
	Contacted   bool               `bson:"contacted"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (m *mongoContact) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:          m.ID.Hex(),
		FullName:    m.FullName,
		PhoneNumber: m.PhoneNumber,
		Service:     m.Service,
		Message:     m.Message,
		Status:      domain.ContactStatus(m.Status),
		Contacted:   m.Contacted,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoContact{
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Service:     c.Service,
		Message:     c.Message,
		Status:      string(c.Status),
		Contacted:   c.Contacted,
		CreatedAt:   c.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// List returns enquiries newest first, optionally narrowed to one status.
func (r *ContactRepository) List(ctx context.Context, status domain.ContactStatus) ([]*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoContact
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	out := make([]*domain.Contact, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ContactRepository) SetStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	return r.set(ctx, id, bson.M{"status": string(status)})
}

func (r *ContactRepository) SetContacted(ctx context.Context, id string, contacted bool) (*domain.Contact, error) {
	return r.set(ctx, id, bson.M{"contacted": contacted})
}

func (r *ContactRepository) set(ctx context.Context, id string, fields bson.M) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoContact
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContactNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}
