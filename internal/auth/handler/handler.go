// Package handler implements the account-facing routes: registration,
// login, and logout. All three render views or redirect; none of them
// is behind a guard.
package handler

import (
	"time"

	"gestion-etudiants/internal/auth/credentials"
	"gestion-etudiants/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	accounts   *credentials.Service
	sessions   session.Store
	sessionTTL time.Duration
	cookieOpts session.CookieOptions
}

func NewHandler(
	accounts *credentials.Service,
	sessions session.Store,
	sessionTTL time.Duration,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		cookieOpts: cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}
