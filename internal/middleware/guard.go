package middleware

import (
	"context"

	"gestion-etudiants/internal/auth"
	"gestion-etudiants/internal/session"
)

// Verdict is the typed outcome of a request guard. The routing layer
// interprets it; the decision itself stays testable without HTTP.
type Verdict int

const (
	// VerdictAllow lets the handler run with the resolved identity.
	VerdictAllow Verdict = iota
	// VerdictRedirectLogin short-circuits to a /login redirect.
	VerdictRedirectLogin
	// VerdictForbidden short-circuits with an access-denied response.
	VerdictForbidden
)

// Guard evaluates session and role checks against the session store.
type Guard struct {
	Sessions session.Store
}

func NewGuard(store session.Store) *Guard {
	return &Guard{Sessions: store}
}

// Check resolves the token and, when needAdmin is set, verifies the
// role. Session presence is evaluated before role, so an
// unauthenticated request to an admin route redirects to login rather
// than reporting forbidden.
func (g *Guard) Check(
	ctx context.Context,
	token string,
	needAdmin bool,
) (auth.Identity, Verdict) {

	if token == "" {
		return auth.Identity{}, VerdictRedirectLogin
	}

	sess, err := g.Sessions.Resolve(ctx, token)
	if err != nil || sess == nil {
		return auth.Identity{}, VerdictRedirectLogin
	}

	if needAdmin && !sess.Identity.IsAdmin() {
		return auth.Identity{}, VerdictForbidden
	}

	return sess.Identity, VerdictAllow
}
