package handler

import (
	"net/http"
	"time"

	"gestion-etudiants/internal/logger"
	"gestion-etudiants/internal/session"

	"github.com/gin-gonic/gin"
)

// Wrong password and unknown username both surface this exact message.
const msgInvalidCredentials = "Identifiants invalides"

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"error": nil})
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	ident, err := h.accounts.Authenticate(
		c.Request.Context(),
		username,
		password,
	)

	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"error": msgInvalidCredentials,
		})
		return
	}

	token, err := session.GenerateToken()
	if err != nil {
		logger.Error("session token generation failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Erreur serveur")
		return
	}

	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	if err := h.sessions.Create(
		c.Request.Context(),
		session.Session{
			Token:     token,
			Identity:  ident,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		logger.Error("session creation failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Erreur serveur")
		return
	}

	session.SetCookie(c.Writer, token, expiresAt, h.cookieOpts)

	logger.Info("login", map[string]any{
		"username": ident.Username,
		"role":     string(ident.Role),
		"ip":       c.ClientIP(),
	})

	c.Redirect(http.StatusFound, "/")
}
