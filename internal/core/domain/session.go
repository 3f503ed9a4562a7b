package domain

import "errors"

// ErrSessionNotFound is returned when a session token is unknown or expired.
// Callers treat it as "anonymous request", never as a hard failure.
var ErrSessionNotFound = errors.New("session not found")
