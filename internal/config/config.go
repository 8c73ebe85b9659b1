package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultMaxCompetitors = 6
	DefaultServerAddr     = "127.0.0.1:8090"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	MaxCompetitors  int          `toml:"max_competitors"`
	MaxBallAttempts int          `toml:"max_ball_attempts"`
	ClearScreen     bool         `toml:"clear_screen"`
	Server          ServerConfig `toml:"server"`
}

type ServerConfig struct {
	Enabled     bool     `toml:"enabled"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

func Default() Config {
	return Config{
		MaxCompetitors:  DefaultMaxCompetitors,
		MaxBallAttempts: 0,
		Server: ServerConfig{
			Addr:        DefaultServerAddr,
			CorsOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load reads a TOML file and overlays the keys it defines onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	if meta.IsDefined("max_competitors") {
		cfg.MaxCompetitors = raw.MaxCompetitors
	}
	if meta.IsDefined("max_ball_attempts") {
		cfg.MaxBallAttempts = raw.MaxBallAttempts
	}
	if meta.IsDefined("clear_screen") {
		cfg.ClearScreen = raw.ClearScreen
	}
	if meta.IsDefined("server", "enabled") {
		cfg.Server.Enabled = raw.Server.Enabled
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = normalizeOrigins(raw.Server.CorsOrigins)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.MaxCompetitors < 1 {
		return fmt.Errorf("%w: max_competitors must be at least 1", ErrInvalidConfig)
	}
	if cfg.MaxBallAttempts < 0 {
		return fmt.Errorf("%w: max_ball_attempts must not be negative", ErrInvalidConfig)
	}
	if cfg.Server.Enabled {
		if strings.TrimSpace(cfg.Server.Addr) == "" {
			return fmt.Errorf("%w: server addr is required when enabled", ErrInvalidConfig)
		}
		if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
			return fmt.Errorf("%w: server addr %q: %v", ErrInvalidConfig, cfg.Server.Addr, err)
		}
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
