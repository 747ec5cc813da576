package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Guard protects views that require an authenticated user: once a user value
// has been loaded and authentication is false, the request is redirected to
// the login route. While no user is loaded the request passes through so the
// view can render its loading placeholder.
func Guard(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c)
			if sess.User != nil && !sess.IsAuthenticated {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}
