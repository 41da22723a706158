package ports

import (
	"context"
	"time"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// PriceInput is one price observation. Date defaults to the current time
// when nil.
type PriceInput struct {
	Date  *time.Time
	Price float64
	Store string
}

// CreateProductInput is the payload for a new product.
type CreateProductInput struct {
	Name        string
	Owner       string
	Description string
	URL         string
	ImageURL    string
	Stores      []string
	Prices      []PriceInput
}

// ProductService implements product CRUD, queries, and the append-only
// price history.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	ByStore(ctx context.Context, store string) ([]domain.Product, error)
	Recent(ctx context.Context, limit int) ([]domain.Product, error)
	RecentByStore(ctx context.Context, store string, limit int) ([]domain.Product, error)
	PriceHistory(ctx context.Context, id string) (*domain.Product, error)

	Create(ctx context.Context, actor string, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor, id string, upd ProductUpdate) (*domain.Product, error)
	AddPrice(ctx context.Context, actor, id string, in PriceInput) (*domain.Product, error)
	Delete(ctx context.Context, actor, id string) error
}
