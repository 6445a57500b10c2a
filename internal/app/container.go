package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"gigconnect/internal/config"
	"gigconnect/internal/database"
	dbpostgres "gigconnect/internal/database/postgres"
	"gigconnect/internal/database/seeder"
	"gigconnect/internal/infrastructure/cache"
)

// Container holds the process-wide resources: the database pool and the
// redis client behind the rate limiter.
type Container struct {
	Config config.Config
	DB     database.DB
	Redis  *cache.Redis
	Logger zerolog.Logger
}

func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := seeder.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
