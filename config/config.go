package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. When DatabaseURL is empty the server
// runs on the in-memory store; otherwise it connects to Postgres.
type Config struct {
	HTTPPort     string `envconfig:"PORT" default:"5000"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	SnapshotPath string `envconfig:"SNAPSHOT_PATH"`
	SnapshotCron string `envconfig:"SNAPSHOT_CRON" default:"@every 5m"`
}

func Load() (*Config, error) {
	// .env is optional, real env vars win either way
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
