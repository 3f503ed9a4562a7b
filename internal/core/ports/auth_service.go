package ports

import (
	"context"

	"github.com/linkshrink/linkshrink/internal/core/domain"
)

// AuthService implements account registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials. Unknown username and wrong password both
	// fail with domain.ErrInvalidCredentials so callers cannot enumerate
	// accounts.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
