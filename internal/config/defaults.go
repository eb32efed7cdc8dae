package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  400,
			Height: 600,
		},
		Physics: Physics{
			Gravity:      0.8,
			FlapImpulse:  -8.0,
			MaxFallSpeed: 10.0,
		},
		Bird: Bird{
			X:      80,
			Size:   30,
			StartY: 285,
		},
		Pipes: Pipes{
			Width:         60,
			Gap:           150,
			Speed:         2.5,
			SpawnInterval: 220,
			Margin:        80,
		},
	}
}
