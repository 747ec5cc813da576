package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

const catalogCollection = "catalog_products"

// CatalogRepository caches catalog snapshots fetched from the store API.
// Entries carry the time they were cached; readers filter on freshness and
// report domain.ErrCacheMiss when nothing recent enough exists.
type CatalogRepository struct {
	coll *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{coll: db.Collection(catalogCollection)}
}

type cachedProduct struct {
	ID          int     `bson:"product_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description,omitempty"`
	Slug        string  `bson:"slug"`
	Price       float64 `bson:"price"`
	DiscPrice   float64 `bson:"disc_price"`
	Stock       int     `bson:"stock"`
	Sold        int     `bson:"sold"`
	Image       string  `bson:"image"`
	InStock     bool    `bson:"in_stock"`
	Locality    string  `bson:"locality,omitempty"`
	Category    string  `bson:"category,omitempty"`
	Seller      string  `bson:"seller,omitempty"`
	CachedAt    int64   `bson:"cached_at"`
}

func (r *CatalogRepository) All(ctx context.Context, notBefore time.Time) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"cached_at": bson.M{"$gte": notBefore.Unix()}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find cached products: %w", err)
	}
	defer cur.Close(ctx)

	var docs []cachedProduct
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cached products: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrCacheMiss
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}
	return products, nil
}

func (r *CatalogRepository) BySlug(ctx context.Context, slug string, notBefore time.Time) (*domain.Product, error) {
	var doc cachedProduct
	err := r.coll.FindOne(ctx, bson.M{
		"slug":      slug,
		"cached_at": bson.M{"$gte": notBefore.Unix()},
	}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("find cached product: %w", err)
	}

	product := doc.toDomain()
	return &product, nil
}

func (r *CatalogRepository) UpsertMany(ctx context.Context, products []domain.Product, cachedAt time.Time) error {
	if len(products) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		doc := cachedProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Slug:        p.Slug,
			Price:       p.Price,
			DiscPrice:   p.DiscPrice,
			Stock:       p.Stock,
			Sold:        p.Sold,
			Image:       p.Image,
			InStock:     p.InStock,
			Locality:    p.Locality,
			Category:    p.Category,
			Seller:      p.Seller,
			CachedAt:    cachedAt.Unix(),
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"slug": p.Slug}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	if _, err := r.coll.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("upsert cached products: %w", err)
	}
	return nil
}

func (d cachedProduct) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Slug:        d.Slug,
		Price:       d.Price,
		DiscPrice:   d.DiscPrice,
		Stock:       d.Stock,
		Sold:        d.Sold,
		Image:       d.Image,
		InStock:     d.InStock,
		Locality:    d.Locality,
		Category:    d.Category,
		Seller:      d.Seller,
	}
}
