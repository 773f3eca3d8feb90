package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorites is a user's deduplicated product collection. Entries keep
// insertion order and no two entries share a product id; Add and Remove are
// the only mutation paths.
type Favorites struct {
	products []Product
}

// NewFavorites builds the aggregate from persisted products, dropping any
// duplicate ids that may have crept into old documents.
func NewFavorites(products ...Product) *Favorites {
	f := &Favorites{}
	for _, p := range products {
		f.Add(p)
	}
	return f
}

// Add inserts the product unless an entry with the same id already exists.
// Duplicate adds are a silent no-op.
func (f *Favorites) Add(product Product) {
	for _, p := range f.products {
		if p.ID == product.ID {
			return
		}
	}
	f.products = append(f.products, product)
}

// Remove drops every entry matching the product id. Absent ids are a no-op.
func (f *Favorites) Remove(productID string) {
	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	f.products = kept
}

// Products returns a copy of the current entries in insertion order.
func (f *Favorites) Products() []Product {
	out := make([]Product, len(f.products))
	copy(out, f.products)
	return out
}

// Len reports the number of entries.
func (f *Favorites) Len() int {
	return len(f.products)
}

// FavoriteList is the persisted favorites document: one per user, holding the
// embedded product sub-records.
type FavoriteList struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Products  []Product          `bson:"products" json:"products"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Favorites converts the document into the domain aggregate.
func (l *FavoriteList) Favorites() *Favorites {
	return NewFavorites(l.Products...)
}

// NewFavoriteList builds the persisted document from the aggregate, keyed by
// the owning user.
func NewFavoriteList(userID primitive.ObjectID, favorites *Favorites) *FavoriteList {
	return &FavoriteList{
		UserID:   userID,
		Products: favorites.Products(),
	}
}
