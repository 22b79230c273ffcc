package handler

import (
	"errors"
	"net/http"

	"gestion-etudiants/internal/auth"
	"gestion-etudiants/internal/auth/credentials"
	"gestion-etudiants/internal/logger"
	"gestion-etudiants/internal/session"

	"github.com/gin-gonic/gin"
)

const msgUsernameTaken = "Nom d'utilisateur déjà utilisé"

func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"error": nil})
}

func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"error": "Nom d'utilisateur et mot de passe requis",
		})
		return
	}

	role := h.requestedRole(c)

	_, err := h.accounts.Register(c.Request.Context(), username, password, role)

	if errors.Is(err, credentials.ErrUsernameTaken) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"error": msgUsernameTaken,
		})
		return
	}
	if err != nil {
		logger.Error("registration failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Erreur serveur")
		return
	}

	// No session is created on registration.
	c.Redirect(http.StatusFound, "/login")
}

// requestedRole grants the admin role only when the request already
// carries an active admin session; everyone else registers as a
// standard user.
func (h *Handler) requestedRole(c *gin.Context) auth.Role {
	if auth.Role(c.PostForm("role")) != auth.RoleAdmin {
		return auth.RoleUser
	}

	token, ok := session.ReadCookie(c.Request)
	if !ok {
		return auth.RoleUser
	}

	sess, err := h.sessions.Resolve(c.Request.Context(), token)
	if err != nil || sess == nil || !sess.Identity.IsAdmin() {
		return auth.RoleUser
	}

	return auth.RoleAdmin
}
