package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductExists = errors.New("product already exists")

// PriceEntry is one observation in a product's price history.
type PriceEntry struct {
	Date  time.Time `json:"date" bson:"date"`
	Price float64   `json:"price" bson:"price"`
	Store string    `json:"store" bson:"store"`
}

// Product is a tracked item. Prices is append-only: new observations are
// pushed, existing entries are never overwritten, so the slice is the full
// price history in arrival order.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	User        primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`
	Description string             `json:"description" bson:"description"`
	URL         string             `json:"URL" bson:"url"`
	ImageURL    string             `json:"imageURL" bson:"image_url"`
	Stores      []string           `json:"stores" bson:"stores"`
	Prices      []PriceEntry       `json:"prices" bson:"prices"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
