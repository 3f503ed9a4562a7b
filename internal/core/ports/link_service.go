package ports

import (
	"context"

	"github.com/linkshrink/linkshrink/internal/core/domain"
)

// LinkService defines use-case operations for short links.
type LinkService interface {
	// Create generates a unique short code for targetURL and persists the
	// link under ownerID.
	Create(ctx context.Context, ownerID, targetURL string) (*domain.ShortURL, error)
	// Resolve looks up a short code, counts the click, and returns the link.
	Resolve(ctx context.Context, code string) (*domain.ShortURL, error)
	// Decode returns link details without touching the click counter.
	Decode(ctx context.Context, code string) (*domain.ShortURL, error)
	List(ctx context.Context) ([]domain.ShortURL, error)
	// Delete removes a link owned by requesterID along with the owner's
	// reference to it. Non-owners get domain.ErrForbidden.
	Delete(ctx context.Context, id, requesterID string) error
}
