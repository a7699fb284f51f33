package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where Resolve stashes the principal on the echo context.
const principalContextKey = "principal"

// Resolve reads the session cookie on every request and, when the token maps
// to a live session, attaches the principal to the context. Anonymous
// requests pass through untouched.
func Resolve(store StoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err == nil && cookie.Value != "" {
				principal, err := store.Get(c.Request().Context(), cookie.Value)
				if err == nil && principal != nil {
					c.Set(principalContextKey, principal)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous callers to the login page instead of
// serving the guarded handler.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if FromContext(c) == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// FromContext returns the authenticated principal, or nil when anonymous.
func FromContext(c echo.Context) *Principal {
	p, ok := c.Get(principalContextKey).(*Principal)
	if !ok {
		return nil
	}
	return p
}

// IsAuthenticated reports whether the request carries a live session.
func IsAuthenticated(c echo.Context) bool {
	return FromContext(c) != nil
}
