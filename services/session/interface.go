package session

import (
	"context"
	"errors"

	"scheduly/models"
)

// ErrNotFound is returned for unknown or expired sessions. Handlers map it
// to a 404; every other error is a backend failure.
var ErrNotFound = errors.New("session not found")

// Store is the keyed session store the service layer talks to. The scheduling
// engine never sees it: handlers read state out, invoke the engine, and write
// the result back. Entries expire after the store's configured lifetime.
type Store interface {
	Create(ctx context.Context, sessionID string, state models.SessionState) error
	Get(ctx context.Context, sessionID string) (*models.SessionRecord, error)
	Update(ctx context.Context, sessionID string, state models.SessionState) error
	Delete(ctx context.Context, sessionID string) error
	// CleanupExpired removes expired sessions and returns how many were
	// dropped. Backends with native TTL support may report zero.
	CleanupExpired(ctx context.Context) (int, error)
	Close(ctx context.Context) error
}
