package handler

import (
	"net/http"

	"gestion-etudiants/internal/session"

	"github.com/gin-gonic/gin"
)

// Logout destroys the current session unconditionally and redirects
// to /login, whether or not a session existed.
func (h *Handler) Logout(c *gin.Context) {
	if token, ok := session.ReadCookie(c.Request); ok {
		// Best-effort: destroying an unknown token is not an error.
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.Redirect(http.StatusFound, "/login")
}
