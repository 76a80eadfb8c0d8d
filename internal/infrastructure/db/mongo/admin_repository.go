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

const collectionAdmins = "admins"

// AdminRepository implements ports.AdminRepository on the admins collection.
type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(collectionAdmins)}
}

type mongoAdmin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	FullName     string             `bson:"full_name,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (m *mongoAdmin) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAdmin{
		Username:     admin.Username,
		FullName:     admin.FullName,
		PasswordHash: admin.PasswordHash,
		Role:         admin.Role,
		IsActive:     admin.IsActive,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AdminRepository) First(ctx context.Context) (*domain.Admin, error) {
	return r.findOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

func (r *AdminRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAdmin
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns admins newest first.
func (r *AdminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoAdmin
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode admins: %w", err)
	}
	out := make([]*domain.Admin, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

// Update applies the non-nil changes and returns the updated record.
func (r *AdminRepository) Update(ctx context.Context, id string, changes ports.AdminChanges) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if changes.Username != nil {
		set["username"] = *changes.Username
	}
	if changes.FullName != nil {
		set["full_name"] = *changes.FullName
	}
	if changes.PasswordHash != nil {
		set["password_hash"] = *changes.PasswordHash
	}
	if changes.Role != nil {
		set["role"] = *changes.Role
	}
	if changes.IsActive != nil {
		set["is_active"] = *changes.IsActive
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAdmin
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes makes usernames unique.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})
	return err
}
