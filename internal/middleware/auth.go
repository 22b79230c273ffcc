package middleware

import (
	"net/http"

	"gestion-etudiants/internal/auth"
	"gestion-etudiants/internal/session"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

// IdentityFromContext extracts the authenticated identity placed in
// the gin context by RequireSession.
func IdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	ident, ok := v.(auth.Identity)
	return ident, ok
}

// RequireSession resolves the session cookie and aborts with a
// redirect to /login when no active session exists.
func RequireSession(guard *Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := session.ReadCookie(c.Request)

		ident, verdict := guard.Check(c.Request.Context(), token, false)
		if verdict != VerdictAllow {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireAdmin checks the role of the identity established by
// RequireSession. Routes must chain RequireSession first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFromContext(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !ident.IsAdmin() {
			c.String(http.StatusForbidden, "Accès refusé")
			c.Abort()
			return
		}
		c.Next()
	}
}
