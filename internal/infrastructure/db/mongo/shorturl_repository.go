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

	"github.com/linkshrink/linkshrink/internal/core/domain"
)

const linksCollection = "short_urls"

// ShortURLRepository persists short links in the short_urls collection.
type ShortURLRepository struct {
	coll *mongo.Collection
}

func NewShortURLRepository(db *mongo.Database) *ShortURLRepository {
	return &ShortURLRepository{coll: db.Collection(linksCollection)}
}

type linkDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ShortCode string             `bson:"short_code"`
	TargetURL string             `bson:"target_url"`
	Clicks    int64              `bson:"clicks"`
	CreatedAt time.Time          `bson:"created_at"`
	Owner     primitive.ObjectID `bson:"owner"`
}

func (d linkDoc) toDomain() *domain.ShortURL {
	return &domain.ShortURL{
		ID:        d.ID.Hex(),
		ShortCode: d.ShortCode,
		TargetURL: d.TargetURL,
		Clicks:    d.Clicks,
		CreatedAt: d.CreatedAt,
		OwnerID:   d.Owner.Hex(),
	}
}

// Insert persists a new link. The unique index on short_code guarantees code
// uniqueness; a collision surfaces as domain.ErrCodeTaken for the caller to retry.
func (r *ShortURLRepository) Insert(ctx context.Context, link *domain.ShortURL) (*domain.ShortURL, error) {
	owner, err := primitive.ObjectIDFromHex(link.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := linkDoc{
		ShortCode: link.ShortCode,
		TargetURL: link.TargetURL,
		Clicks:    link.Clicks,
		CreatedAt: link.CreatedAt,
		Owner:     owner,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCodeTaken
		}
		return nil, fmt.Errorf("insert link: %w", err)
	}

	created := *link
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ShortURLRepository) FindByCode(ctx context.Context, code string) (*domain.ShortURL, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc linkDoc
	if err := r.coll.FindOne(ctx, bson.M{"short_code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find link by code: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ShortURLRepository) FindByID(ctx context.Context, id string) (*domain.ShortURL, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByIDAndOwner retrieves a link scoped by both id and owner.
func (r *ShortURLRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.ShortURL, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "owner": owner})
}

func (r *ShortURLRepository) findOne(ctx context.Context, filter bson.M) (*domain.ShortURL, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc linkDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find link: %w", err)
	}
	return doc.toDomain(), nil
}

// FindAll returns every stored link, newest first.
func (r *ShortURLRepository) FindAll(ctx context.Context) ([]domain.ShortURL, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer cur.Close(ctx)

	var docs []linkDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode links: %w", err)
	}

	links := make([]domain.ShortURL, len(docs))
	for i, d := range docs {
		links[i] = *d.toDomain()
	}
	return links, nil
}

// IncrementClicks atomically bumps the click counter for code and returns the
// updated link. Unknown codes leave the store untouched.
func (r *ShortURLRepository) IncrementClicks(ctx context.Context, code string) (*domain.ShortURL, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc linkDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"short_code": code}, bson.M{"$inc": bson.M{"clicks": 1}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("increment clicks: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ShortURLRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// EnsureIndexes creates the unique short_code index plus the owner index
// used by the ownership-scoped lookups.
func (r *ShortURLRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "short_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
