package config

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr   string `env:"MURAL_LISTEN_ADDR,default=:8080"`
	DatabasePath string `env:"MURAL_DB_PATH,default=./mural.db"`
	LogLevel     string `env:"MURAL_LOG_LEVEL,default=info"`
}

// Load reads the optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}
