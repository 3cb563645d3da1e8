// Package config loads grid settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// EnvPath names the config file when no -config flag is given.
const EnvPath = "GRID_CONFIG"

type Config struct {
	Theme          string `toml:"theme"`
	SeedRows       int    `toml:"seed_rows"`
	StartEditing   bool   `toml:"start_editing"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
	JSONIndent     int    `toml:"json_indent"`
	Highlight      bool   `toml:"highlight"`
	HighlightStyle string `toml:"highlight_style"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:          "classic",
		SeedRows:       20,
		StartEditing:   true,
		LogLevel:       "info",
		JSONIndent:     2,
		Highlight:      true,
		HighlightStyle: "monokai",
	}
}

// Load decodes path over the defaults. An empty path falls back to
// $GRID_CONFIG; with neither, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPath))
	}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the grid cannot work with.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown %q (classic|neon|mono)", c.Theme)
	}
	if c.SeedRows < 0 {
		return fmt.Errorf("seed_rows: must be >= 0, got %d", c.SeedRows)
	}
	if c.JSONIndent < 0 || c.JSONIndent > 8 {
		return fmt.Errorf("json_indent: must be 0..8, got %d", c.JSONIndent)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}
