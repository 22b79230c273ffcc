package app

import (
	"context"
	"database/sql"

	"gestion-etudiants/internal/config"
	"gestion-etudiants/internal/db"
	"gestion-etudiants/internal/logger"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB *db.DB
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	database := &db.DB{DB: sqlDB}

	if err := db.RunMigration(ctx, database); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	return &Infra{
		DB: database,
	}, nil
}
