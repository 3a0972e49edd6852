// Package config provides YAML-based configuration loading for the
// snake platform. The field dimensions are deliberately not configurable;
// only presentation and timing knobs live here.
package config

import (
	"fmt"
	"time"
)

// Config contains all user-tunable settings.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Theme ThemeConfig `yaml:"theme"`
}

// GameConfig defines timing parameters.
type GameConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"` // Game-logic tick cadence
	FrameRate      int `yaml:"frame_rate"`       // Render frames per second
}

// ThemeConfig defines the glyphs used to draw the field. Each value must
// be a single character.
type ThemeConfig struct {
	Head  string `yaml:"head"`
	Body  string `yaml:"body"`
	Fruit string `yaml:"fruit"`
}

// TickInterval returns the tick cadence as a duration.
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickIntervalMS) * time.Millisecond
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Game.TickIntervalMS <= 0 {
		return fmt.Errorf("config: tick_interval_ms must be positive, got %d", c.Game.TickIntervalMS)
	}
	if c.Game.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.Game.FrameRate)
	}
	for name, glyph := range map[string]string{
		"head":  c.Theme.Head,
		"body":  c.Theme.Body,
		"fruit": c.Theme.Fruit,
	} {
		if n := len([]rune(glyph)); n != 1 {
			return fmt.Errorf("config: theme.%s must be a single character, got %q", name, glyph)
		}
	}
	return nil
}

// themeRune returns the single rune of a theme glyph, with a fallback
// for unvalidated input.
func themeRune(glyph string, fallback rune) rune {
	rs := []rune(glyph)
	if len(rs) != 1 {
		return fallback
	}
	return rs[0]
}

// HeadRune returns the head glyph as a rune.
func (t ThemeConfig) HeadRune() rune { return themeRune(t.Head, 'O') }

// BodyRune returns the body glyph as a rune.
func (t ThemeConfig) BodyRune() rune { return themeRune(t.Body, 'o') }

// FruitRune returns the fruit glyph as a rune.
func (t ThemeConfig) FruitRune() rune { return themeRune(t.Fruit, '*') }
