package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/api/metrics"
	"github.com/linkshrink/linkshrink/internal/core/domain"
	"github.com/linkshrink/linkshrink/internal/core/ports"
)

// LinkHandler handles short link creation, resolution, inspection, and deletion.
type LinkHandler struct {
	links ports.LinkService
	log   zerolog.Logger
}

func NewLinkHandler(links ports.LinkService, log zerolog.Logger) *LinkHandler {
	return &LinkHandler{links: links, log: log}
}

// Create handles POST /shortUrls. Requires an authenticated session; responds
// with the created link as JSON.
func (h *LinkHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	link, err := h.links.Create(c.Request().Context(), userID, req.FullURL)
	if err != nil {
		return err
	}

	metrics.LinksCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toLinkResponse(link))
}

// Redirect handles GET /:shortUrl, the public redirect path. Counts the
// click and sends the caller to the target URL.
func (h *LinkHandler) Redirect(c echo.Context) error {
	link, err := h.links.Resolve(c.Request().Context(), c.Param("shortUrl"))
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			metrics.RedirectsTotal.WithLabelValues("miss").Inc()
		}
		return err
	}

	metrics.RedirectsTotal.WithLabelValues("hit").Inc()
	return c.Redirect(http.StatusFound, link.TargetURL)
}

// Decode handles GET /decode/:shortUrl. Returns link details without
// touching the click counter.
func (h *LinkHandler) Decode(c echo.Context) error {
	link, err := h.links.Decode(c.Request().Context(), c.Param("shortUrl"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, decodeResponse{
		Full:   link.TargetURL,
		Short:  link.ShortCode,
		Clicks: link.Clicks,
		Date:   link.CreatedAt,
	})
}

// Delete handles DELETE /shortUrls/:id/delete. Only the owner may delete;
// everyone else gets 403.
func (h *LinkHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.links.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.LinksDeletedTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}
