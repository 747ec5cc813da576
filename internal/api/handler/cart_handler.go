package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cccc-2705/Mercado/internal/api/middleware"
)

// CartHandler renders the cart and checkout views. It performs no cart
// mutation; the server owns the cart and every change is a round trip made
// elsewhere.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// Show renders the cart page.
//
// @Summary      Render the shopping cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartViewResponse
// @Router       /cart [get]
func (h *CartHandler) Show(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess.User == nil {
		return c.JSON(http.StatusOK, loadingResponse{Loading: true})
	}
	return c.JSON(http.StatusOK, newCartView(sess.User))
}

// Checkout renders the checkout page from the same cart summary.
func (h *CartHandler) Checkout(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess.User == nil {
		return c.JSON(http.StatusOK, loadingResponse{Loading: true})
	}
	return c.JSON(http.StatusOK, viewResponse{
		View:    "checkout",
		Session: newSessionResponse(sess),
		Data:    newCartView(sess.User),
	})
}

// CheckoutSuccess renders the order confirmation page.
func (h *CartHandler) CheckoutSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{
		View:    "checkout_success",
		Session: newSessionResponse(middleware.SessionFromContext(c)),
	})
}
