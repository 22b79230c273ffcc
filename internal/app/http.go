package app

import (
	"context"
	"net/http"

	"gestion-etudiants/internal/auth/credentials"
	"gestion-etudiants/internal/auth/handler"
	"gestion-etudiants/internal/config"
	"gestion-etudiants/internal/logger"
	"gestion-etudiants/internal/middleware"
	"gestion-etudiants/internal/session"
	"gestion-etudiants/internal/students"
	"gestion-etudiants/internal/web"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	accountStore := credentials.NewSQLStore(infra.DB)
	accountService := credentials.NewService(accountStore)

	if cfg.SeedAccountsPath != "" {
		if err := accountService.SeedFromFile(ctx, cfg.SeedAccountsPath); err != nil {
			return nil, nil, err
		}
		logger.Info("accounts seeded", map[string]any{
			"path": cfg.SeedAccountsPath,
		})
	}

	sessionStore := session.NewMemoryStore()
	guard := middleware.NewGuard(sessionStore)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(
		accountService,
		sessionStore,
		cfg.SessionTTL,
		cookieOpts,
	)

	studentStore := students.NewSQLStore(infra.DB)
	studentHandler := students.NewHandler(studentStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())
	router.SetHTMLTemplate(web.Templates())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("")
	protected.Use(middleware.RequireSession(guard))

	protected.GET("/", studentHandler.Index)

	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/add", studentHandler.AddForm)
	admin.POST("/add", studentHandler.Add)
	admin.GET("/edit/:id", studentHandler.EditForm)
	admin.POST("/edit/:id", studentHandler.Edit)
	admin.POST("/delete/:id", studentHandler.Delete)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
