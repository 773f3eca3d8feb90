package models

import "time"

// Product is a single listing returned by a search provider. It is a
// transient value until the user promotes it into their favorites, at which
// point the same shape is embedded in the favorites document.
type Product struct {
	ID          string     `bson:"id" json:"id" validate:"required"`
	Name        string     `bson:"name" json:"name"`
	Price       float64    `bson:"price" json:"price" validate:"gte=0"`
	Currency    string     `bson:"currency" json:"currency"`
	URL         string     `bson:"url" json:"url"`
	Source      string     `bson:"source" json:"source"`
	Image       string     `bson:"image,omitempty" json:"image,omitempty"`
	LastChecked *time.Time `bson:"last_checked,omitempty" json:"last_checked,omitempty"`
}
