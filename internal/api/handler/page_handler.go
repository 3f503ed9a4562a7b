package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/api/middleware"
	"github.com/linkshrink/linkshrink/internal/core/domain"
	"github.com/linkshrink/linkshrink/internal/core/ports"
)

// PageHandler renders the home view.
type PageHandler struct {
	links ports.LinkService
	auth  ports.AuthService
	log   zerolog.Logger
}

func NewPageHandler(links ports.LinkService, auth ports.AuthService, log zerolog.Logger) *PageHandler {
	return &PageHandler{links: links, auth: auth, log: log}
}

type homeData struct {
	User  *domain.User
	Links []domain.ShortURL
}

// Home handles GET /. Every visitor sees every link; only the current user,
// when authenticated, is passed to the template for display.
func (h *PageHandler) Home(c echo.Context) error {
	links, err := h.links.List(c.Request().Context())
	if err != nil {
		return err
	}

	var user *domain.User
	if userID, _ := c.Get(middleware.ContextUserID).(string); userID != "" {
		user, err = h.auth.GetUser(c.Request().Context(), userID)
		if err != nil {
			// A session pointing at a deleted account renders as anonymous.
			if !errors.Is(err, domain.ErrUserNotFound) {
				return err
			}
			user = nil
		}
	}

	return c.Render(http.StatusOK, "index.html", homeData{User: user, Links: links})
}
