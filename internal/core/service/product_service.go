package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

const defaultRecentLimit = 10

// ProductService implements product CRUD, queries, and the append-only
// price history.
type ProductService struct {
	products ports.ProductRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, audit: audit, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return nil, domain.ErrMissingFields
	}
	return s.products.Search(ctx, query)
}

func (s *ProductService) ByStore(ctx context.Context, store string) ([]domain.Product, error) {
	if store == "" {
		return nil, domain.ErrMissingFields
	}
	return s.products.FindByStore(ctx, store)
}

func (s *ProductService) Recent(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.products.Recent(ctx, clampLimit(limit))
}

func (s *ProductService) RecentByStore(ctx context.Context, store string, limit int) ([]domain.Product, error) {
	if store == "" {
		return nil, domain.ErrMissingFields
	}
	return s.products.RecentByStore(ctx, store, clampLimit(limit))
}

// PriceHistory returns the product with its full price list. Prices are
// stored in arrival order, so no re-sort happens here.
func (s *ProductService) PriceHistory(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, actor string, in ports.CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.URL == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		ImageURL:    in.ImageURL,
		Stores:      in.Stores,
		Prices:      make([]domain.PriceEntry, 0, len(in.Prices)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Stores == nil {
		product.Stores = []string{}
	}
	if owner, err := primitive.ObjectIDFromHex(in.Owner); err == nil {
		product.User = owner
	}
	for _, p := range in.Prices {
		product.Prices = append(product.Prices, toPriceEntry(p, now))
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID.Hex()).Str("actor", actor).Msg("product created")
	s.recordAudit(actor, domain.AuditCreated, created.ID.Hex())
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, actor, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	if upd.Name == "" {
		return nil, domain.ErrMissingFields
	}
	if upd.Stores == nil {
		upd.Stores = []string{}
	}

	updated, err := s.products.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return updated, nil
}

// AddPrice appends one observation to the product's price history and
// returns the updated product. History only ever grows.
func (s *ProductService) AddPrice(ctx context.Context, actor, id string, in ports.PriceInput) (*domain.Product, error) {
	if in.Price <= 0 {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.products.AddPrice(ctx, id, toPriceEntry(in, time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, actor, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Str("actor", actor).Msg("product deleted")
	s.recordAudit(actor, domain.AuditDeleted, id)
	return nil
}

func (s *ProductService) recordAudit(actor, action, productID string) {
	s.audit.Record(domain.AuditEvent{
		Actor:      actor,
		Action:     action,
		EntityType: "product",
		EntityID:   productID,
		At:         time.Now().UTC(),
	})
}

func toPriceEntry(in ports.PriceInput, fallback time.Time) domain.PriceEntry {
	date := fallback
	if in.Date != nil {
		date = in.Date.UTC()
	}
	return domain.PriceEntry{Date: date, Price: in.Price, Store: in.Store}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultRecentLimit
	}
	return limit
}
