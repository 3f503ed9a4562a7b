package ports

import "context"

// SessionStore holds server-side session state keyed by an opaque token.
// The token travels to the client in a cookie; the store maps it back to
// the authenticated user's id.
type SessionStore interface {
	// Create binds userID to a fresh opaque token and returns the token.
	Create(ctx context.Context, userID string) (string, error)
	// Get resolves a token to the user id it was bound to. Returns
	// domain.ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (string, error)
	// Destroy invalidates a token. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}
