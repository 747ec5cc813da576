package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cccc-2705/Mercado/internal/api/metrics"
	"github.com/cccc-2705/Mercado/internal/core/domain"
	"github.com/cccc-2705/Mercado/internal/core/ports"
)

const defaultCatalogTTL = 5 * time.Minute

// CatalogService serves product browsing from the remote store API with a
// local read-through cache. The server stays authoritative; cached snapshots
// only keep browse views responsive and are bypassed on any cache error.
type CatalogService struct {
	api   ports.CatalogAPI
	cache ports.CatalogRepository
	ttl   time.Duration
	log   zerolog.Logger

	now func() time.Time
}

func NewCatalogService(api ports.CatalogAPI, cache ports.CatalogRepository, ttl time.Duration, log zerolog.Logger) *CatalogService {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogService{api: api, cache: cache, ttl: ttl, log: log, now: time.Now}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	notBefore := s.now().Add(-s.ttl)

	if s.cache != nil {
		products, err := s.cache.All(ctx, notBefore)
		if err == nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return products, nil
		}
		if err != domain.ErrCacheMiss {
			s.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.UpsertMany(ctx, products, s.now()); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	notBefore := s.now().Add(-s.ttl)

	if s.cache != nil {
		product, err := s.cache.BySlug(ctx, slug, notBefore)
		if err == nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return product, nil
		}
		if err != domain.ErrCacheMiss {
			s.log.Warn().Err(err).Str("slug", slug).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	product, err := s.api.GetProduct(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.UpsertMany(ctx, []domain.Product{*product}, s.now()); err != nil {
			s.log.Warn().Err(err).Str("slug", slug).Msg("catalog cache write failed")
		}
	}
	return product, nil
}
