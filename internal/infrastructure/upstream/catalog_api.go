package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// ListProducts fetches the catalog via GET /store/products/.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/store/products/", "products_list", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one catalog entry via GET /store/products/:slug/.
func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodGet, "/store/products/"+slug+"/", "products_get", "", nil, &product)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}
