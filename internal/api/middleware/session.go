package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

const sessionContextKey = "session"

// SessionReader exposes the current session snapshot.
type SessionReader interface {
	State() domain.Session
}

// Session snapshots the central store once per request and injects the
// snapshot into the echo context, so every read within one request observes
// the same session.
func Session(store SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(sessionContextKey, store.State())
			return next(c)
		}
	}
}

// SessionFromContext returns the snapshot injected by Session. The zero
// session is returned when the middleware did not run.
func SessionFromContext(c echo.Context) domain.Session {
	sess, _ := c.Get(sessionContextKey).(domain.Session)
	return sess
}
