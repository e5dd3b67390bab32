package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"3000"`
	PostgresConnStr string        `envconfig:"POSTGRES_CONN_STR" required:"true"`
	PlayerRefresh   time.Duration `envconfig:"PLAYER_REFRESH_INTERVAL" default:"24h"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
