package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cccc-2705/Mercado/internal/api/middleware"
	"github.com/cccc-2705/Mercado/internal/core/domain"
	"github.com/cccc-2705/Mercado/internal/core/ports"
)

// CatalogHandler renders product browsing views from the catalog service.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// Home renders the landing page with the current catalog.
func (h *CatalogHandler) Home(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{
		View:    "home",
		Session: newSessionResponse(middleware.SessionFromContext(c)),
		Data:    productListResponse{Products: products, Count: len(products)},
	})
}

// List renders the shop page.
//
// @Summary      Browse the product catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  productListResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products, Count: len(products)})
}

// Get renders a single product page by slug.
//
// @Summary      Render one product
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /product/{slug} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
