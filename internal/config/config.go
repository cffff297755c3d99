// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DBPath      string `env:"DB_PATH" envDefault:"data/leaderboard.db"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"static"`
	GamePolicy  string `env:"GAME_POLICY" envDefault:"target_score"`
	TargetScore int    `env:"TARGET_SCORE" envDefault:"3"`
	TotalRounds int    `env:"TOTAL_ROUNDS" envDefault:"10"`
	Debug       bool   `env:"DEBUG"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
