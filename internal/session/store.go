package session

import (
	"context"
	"time"

	"gestion-etudiants/internal/auth"
)

// Session represents an authenticated browsing session. The identity
// snapshot is immutable once created; only existence toggles.
type Session struct {
	Token     string // opaque token delivered via cookie
	Identity  auth.Identity
	CreatedAt time.Time
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved. The in-memory
// implementation is the canonical one; the interface keeps handlers
// and guards independent of the backing store.
type Store interface {
	// Create associates a freshly minted token with its identity.
	Create(ctx context.Context, s Session) error
	// Resolve returns the session for a token, or nil when the token
	// is absent, expired, or was never issued.
	Resolve(ctx context.Context, token string) (*Session, error)
	// Destroy terminates the association. Destroying an unknown token
	// is not an error.
	Destroy(ctx context.Context, token string) error
}
