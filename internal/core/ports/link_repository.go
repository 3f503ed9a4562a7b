package ports

import (
	"context"

	"github.com/linkshrink/linkshrink/internal/core/domain"
)

// ShortURLRepository defines persistence operations for short links.
type ShortURLRepository interface {
	// Insert persists a new link. Returns domain.ErrCodeTaken when the
	// short code collides with an existing one (unique index).
	Insert(ctx context.Context, link *domain.ShortURL) (*domain.ShortURL, error)
	FindByCode(ctx context.Context, code string) (*domain.ShortURL, error)
	FindByID(ctx context.Context, id string) (*domain.ShortURL, error)
	// FindByIDAndOwner retrieves a link scoped by both id and owner.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.ShortURL, error)
	// FindAll returns every stored link, newest first.
	FindAll(ctx context.Context) ([]domain.ShortURL, error)
	// IncrementClicks atomically bumps the click counter and returns the
	// updated link. Returns domain.ErrLinkNotFound for an unknown code.
	IncrementClicks(ctx context.Context, code string) (*domain.ShortURL, error)
	Delete(ctx context.Context, id string) error
}
