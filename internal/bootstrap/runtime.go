// Package bootstrap establishes runtime dependencies for the cmd
// entrypoints: database, Redis, and optional demo seeding.
package bootstrap

import (
	"fmt"
	"strings"

	"alcove/internal/cache"
	"alcove/internal/config"
	"alcove/internal/database"
	"alcove/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates the database with demo forums, users, and
	// posts. Refused outside development and test environments.
	SeedDemoData bool
	SeedOptions  seed.Options
}

// InitRuntime connects to DB and Redis and optionally runs demo seeding.
// The Redis client may be nil when the instance is unreachable; callers
// degrade to uncached operation.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if strings.EqualFold(cfg.Env, "production") {
			return nil, nil, fmt.Errorf("demo seeding is not allowed in production")
		}
		if err := seed.Seed(db, opts.SeedOptions); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
