package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkshrink/linkshrink/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Session middleware. Handlers
// behind RequireLogin call this as a fast-fail check before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated session")
	}
	return userID, nil
}
