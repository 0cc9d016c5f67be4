// Package config loads game settings for the command line host.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianw11/gamebase/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// PlayerConfig seats one player. An empty Bot means a human at the terminal;
// otherwise it names the bot level.
type PlayerConfig struct {
	Name string `mapstructure:"name"`
	Bot  string `mapstructure:"bot"`
}

// Config is the full set of game settings.
type Config struct {
	Players         []PlayerConfig `mapstructure:"players"`
	Pile            int            `mapstructure:"pile"`
	MaxTake         int            `mapstructure:"max_take"`
	Seed            uint64         `mapstructure:"seed"`
	MaxIllegalTurns int            `mapstructure:"max_illegal_turns"`
	Shuffle         bool           `mapstructure:"shuffle"`
	FirstPlayer     int            `mapstructure:"first_player"`
	Debug           bool           `mapstructure:"debug"`
	LogLevel        string         `mapstructure:"log_level"`
	LogFormat       string         `mapstructure:"log_format"`
}

// Default returns the settings used when no file is given: one human
// against a perfect bot.
func Default() Config {
	return Config{
		Players: []PlayerConfig{
			{Name: "You"},
			{Name: "Bot", Bot: "perfect"},
		},
		Pile:            21,
		MaxTake:         3,
		MaxIllegalTurns: 5,
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

// Load reads a YAML or JSON file over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode merges raw into cfg. Scalars are converted loosely, so "5" and 5
// are both accepted; unknown keys are rejected. A players list replaces the
// current one.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks values the engine cannot check for itself.
func (c Config) Validate() error {
	if c.Pile < 1 {
		return fmt.Errorf("pile must be positive, got %d", c.Pile)
	}
	if c.MaxTake < 1 {
		return fmt.Errorf("max_take must be positive, got %d", c.MaxTake)
	}
	if c.MaxIllegalTurns < 0 {
		return fmt.Errorf("max_illegal_turns must not be negative, got %d", c.MaxIllegalTurns)
	}
	if c.FirstPlayer < 0 || (len(c.Players) > 0 && c.FirstPlayer >= len(c.Players)) {
		return fmt.Errorf("first_player %d is not a seat", c.FirstPlayer)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	for i, p := range c.Players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player %d has no name", i)
		}
	}
	return nil
}

// Humans counts the players without a bot level.
func (c Config) Humans() int {
	n := 0
	for _, p := range c.Players {
		if p.Bot == "" {
			n++
		}
	}
	return n
}
