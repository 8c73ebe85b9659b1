package main

import (
	"strings"

	"github.com/danmuck/bowlctl/internal/config"
	"github.com/danmuck/bowlctl/internal/game"
)

type options struct {
	configPath string
	serve      bool
	addr       string
}

// resolveConfig loads the optional config file and applies flag overrides.
func resolveConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if path := strings.TrimSpace(opts.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if opts.serve {
		cfg.Server.Enabled = true
	}
	if addr := strings.TrimSpace(opts.addr); addr != "" {
		cfg.Server.Addr = addr
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func gameConfig(cfg config.Config) game.Config {
	return game.Config{
		MaxCompetitors:  cfg.MaxCompetitors,
		MaxBallAttempts: cfg.MaxBallAttempts,
	}
}
