// Package config provides YAML-based configuration loading for the game.
// All values here are fixed for the lifetime of a session; nothing in the
// simulation mutates them at runtime.
package config

// Config contains the full game configuration.
type Config struct {
	Playfield Playfield `yaml:"playfield"`
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Pipes     Pipes     `yaml:"pipes"`
}

// Playfield defines the logical simulation area. The simulation runs in
// these units regardless of terminal size; the presentation layer scales.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the per-tick physics parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set on flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
}

// Bird defines the player entity geometry.
type Bird struct {
	X      float64 `yaml:"x"`       // Fixed horizontal position during play
	Size   float64 `yaml:"size"`    // Square hitbox edge length
	StartY float64 `yaml:"start_y"` // Vertical position on session reset
}

// Pipes defines the obstacle geometry and movement.
type Pipes struct {
	Width         float64 `yaml:"width"`          // Horizontal extent of a pipe
	Gap           float64 `yaml:"gap"`            // Vertical gap between segments
	Speed         float64 `yaml:"speed"`          // Leftward movement per tick
	SpawnInterval float64 `yaml:"spawn_interval"` // Horizontal distance between spawns
	Margin        float64 `yaml:"margin"`         // Gap band keep-out at top and bottom
}
