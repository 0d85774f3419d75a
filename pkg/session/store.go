// Package session holds the server-side mapping from opaque session ids to
// issued tokens. The browser cookie carries only the session id; the token
// itself never leaves the server.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session id is unknown or has expired.
var ErrNotFound = errors.New("session not found")

// Store is the pluggable session backing: an in-memory map for development
// and tests, redis for production.
type Store interface {
	Put(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
