package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// ProductUpdate carries the replaceable fields of a product. The price
// history is deliberately absent: prices only ever grow through AddPrice.
type ProductUpdate struct {
	Name        string
	Description string
	ImageURL    string
	Stores      []string
}

// ProductRepository defines persistence for products and their price history.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	// Search matches name or description, case-insensitively, by substring.
	Search(ctx context.Context, query string) ([]domain.Product, error)
	FindByStore(ctx context.Context, store string) ([]domain.Product, error)
	Recent(ctx context.Context, limit int) ([]domain.Product, error)
	RecentByStore(ctx context.Context, store string, limit int) ([]domain.Product, error)

	// AddPrice appends one entry to the price history and returns the updated
	// product. It never rewrites existing entries.
	AddPrice(ctx context.Context, id string, entry domain.PriceEntry) (*domain.Product, error)
}
