package ports

import (
	"context"
	"time"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// CatalogService exposes product browsing backed by the remote store API.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
}

// CatalogRepository is the local read-through cache of catalog snapshots.
// Read methods ignore entries cached before notBefore and return
// domain.ErrCacheMiss when nothing fresh is available.
type CatalogRepository interface {
	All(ctx context.Context, notBefore time.Time) ([]domain.Product, error)
	BySlug(ctx context.Context, slug string, notBefore time.Time) (*domain.Product, error)
	UpsertMany(ctx context.Context, products []domain.Product, cachedAt time.Time) error
}
