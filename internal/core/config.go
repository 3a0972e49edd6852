package core

import "time"

// RuntimeConfig contains configuration passed to a game session at startup.
// The platform fills it from CLI flags, the config file, and the terminal.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	FrameRate    int           // Render frames per second (default 60)
	TickInterval time.Duration // Game-logic tick cadence (default 160ms)
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		FrameRate:    60,
		TickInterval: 160 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}
