package ports

import (
	"context"

	"github.com/linkshrink/linkshrink/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken (enforced by a unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AddLink appends a short URL id to the user's link list.
	AddLink(ctx context.Context, userID, linkID string) error
	// RemoveLink removes a short URL id from the user's link list.
	RemoveLink(ctx context.Context, userID, linkID string) error
}
