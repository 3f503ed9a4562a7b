package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/core/domain"
	"github.com/linkshrink/linkshrink/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// ContextUserID is the echo context key holding the authenticated user's id.
const ContextUserID = "user_id"

// Session resolves the session cookie against the store and injects the
// authenticated user's id into the request context. Requests without a valid
// token pass through as anonymous; store failures surface as errors.
func Session(store ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			userID, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				// Only an unknown or expired token is anonymous. Anything
				// else is a store outage and must not be masked.
				if errors.Is(err, domain.ErrSessionNotFound) {
					return next(c)
				}
				log.Error().Err(err).Msg("session lookup failed")
				return err
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, _ := c.Get(ContextUserID).(string); userID == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// SetSessionCookie attaches the session token to the response. The cookie
// itself has no expiry; session lifetime is enforced server-side by the store.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
