package handler

import (
	"time"

	"github.com/linkshrink/linkshrink/internal/core/domain"
)

type createLinkRequest struct {
	// FullURL is stored as-is; the target is deliberately not validated
	// beyond presence.
	FullURL string `json:"fullUrl" form:"fullUrl" validate:"required"`
}

type linkResponse struct {
	ID     string    `json:"id"`
	Full   string    `json:"full"`
	Short  string    `json:"short"`
	Clicks int64     `json:"clicks"`
	Date   time.Time `json:"date"`
}

type decodeResponse struct {
	Full   string    `json:"full"`
	Short  string    `json:"short"`
	Clicks int64     `json:"clicks"`
	Date   time.Time `json:"date"`
}

func toLinkResponse(link *domain.ShortURL) linkResponse {
	return linkResponse{
		ID:     link.ID,
		Full:   link.TargetURL,
		Short:  link.ShortCode,
		Clicks: link.Clicks,
		Date:   link.CreatedAt,
	}
}
