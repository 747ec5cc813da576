package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cccc-2705/Mercado/internal/api/middleware"
)

// AccountHandler renders the account-facing pages.
type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// Profile renders the account page for the given username. The page shows
// the session's own user; foreign profiles render as a public shell.
func (h *AccountHandler) Profile(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess.User == nil {
		return c.JSON(http.StatusOK, loadingResponse{Loading: true})
	}
	return c.JSON(http.StatusOK, viewResponse{
		View:    "account",
		Session: newSessionResponse(sess),
		Data:    map[string]string{"username": c.Param("username")},
	})
}

// Seller renders a seller's public storefront page.
func (h *AccountHandler) Seller(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{
		View:    "seller",
		Session: newSessionResponse(middleware.SessionFromContext(c)),
		Data:    map[string]string{"username": c.Param("username")},
	})
}

// LocationSetup renders the delivery address setup page.
func (h *AccountHandler) LocationSetup(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess.User == nil {
		return c.JSON(http.StatusOK, loadingResponse{Loading: true})
	}

	var deliverTo string
	if sess.User.Address != nil {
		deliverTo = sess.User.Address.Format()
	}
	return c.JSON(http.StatusOK, viewResponse{
		View:    "location_setup",
		Session: newSessionResponse(sess),
		Data:    map[string]string{"deliver_to": deliverTo},
	})
}
