package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	MatrixHomeserver  string `envconfig:"MATRIX_HOMESERVER" required:"true"`
	MatrixUser        string `envconfig:"MATRIX_USER" required:"true"`
	MatrixAccessToken string `envconfig:"MATRIX_ACCESS_TOKEN" required:"true"`
	MatrixRoomID      string `envconfig:"MATRIX_ROOM_ID" required:"true"`

	AllowedPlatforms []string `envconfig:"ALLOWED_PLATFORMS" default:"Epic Games Store,Steam,GOG"`
	StateFile        string   `envconfig:"STATE_FILE" default:"state.json"`

	GamerPowerURL string        `envconfig:"GAMERPOWER_API" default:"https://www.gamerpower.com/api/giveaways?type=game&platform=pc"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

func Load() (*Config, error) {
	// A .env file is a convenience for local runs; in CI the environment
	// is set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %v", err)
	}

	cfg.AllowedPlatforms = normalizeList(cfg.AllowedPlatforms)
	if len(cfg.AllowedPlatforms) == 0 {
		return nil, fmt.Errorf("ALLOWED_PLATFORMS must contain at least one platform")
	}

	return &cfg, nil
}

// normalizeList trims each entry and drops empty ones, so values like
// "Epic Games Store, Steam," are accepted.
func normalizeList(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
