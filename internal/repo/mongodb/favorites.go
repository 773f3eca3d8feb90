package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoritesRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.FavoriteList, error)
	Save(ctx context.Context, list *models.FavoriteList) error
	AddProduct(ctx context.Context, userID primitive.ObjectID, product models.Product) error
	RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) error
	EnsureIndexes(ctx context.Context) error
}

type favoritesRepo struct {
	collection *mongo.Collection
}

func NewFavoritesRepository(db *DB) FavoritesRepository {
	return &favoritesRepo{
		collection: db.Database.Collection("favorites"),
	}
}

func (r *favoritesRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create user_id index: %w", err)
	}
	return nil
}

// GetByUserID returns the user's favorites document, or a fresh empty one
// when nothing is persisted yet.
func (r *favoritesRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.FavoriteList, error) {
	var list models.FavoriteList
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.FavoriteList{
			UserID:   userID,
			Products: []models.Product{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return &list, nil
}

// Save upserts the whole document, keyed by user id. Used for bulk restore;
// incremental mutations go through AddProduct/RemoveProduct which are atomic.
func (r *favoritesRepo) Save(ctx context.Context, list *models.FavoriteList) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"products":   list.Products,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"user_id":    list.UserID,
			"created_at": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": list.UserID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// AddProduct appends the product unless an entry with the same id is already
// embedded. Both steps are single atomic updates, so two concurrent adds for
// the same user each survive and a duplicate add is a silent no-op.
func (r *favoritesRepo) AddProduct(ctx context.Context, userID primitive.ObjectID, product models.Product) error {
	now := time.Now()

	ensure := bson.M{
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"products":   []models.Product{},
			"created_at": now,
			"updated_at": now,
		},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, ensure,
		options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("ensure favorites document: %w", err)
	}

	push := bson.M{
		"$push": bson.M{"products": product},
		"$set":  bson.M{"updated_at": now},
	}
	filter := bson.M{
		"user_id":     userID,
		"products.id": bson.M{"$ne": product.ID},
	}
	if _, err := r.collection.UpdateOne(ctx, filter, push); err != nil {
		return fmt.Errorf("add favorite product: %w", err)
	}
	return nil
}

// RemoveProduct pulls every embedded product with the matching id in a single
// set-based update; an absent id matches nothing and is a no-op.
func (r *favoritesRepo) RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) error {
	update := bson.M{
		"$pull": bson.M{"products": bson.M{"id": productID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return fmt.Errorf("remove favorite product: %w", err)
	}
	return nil
}
