package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Gravity <= 0 {
		t.Error("gravity must be positive (downward)")
	}
	if cfg.Physics.FlapImpulse >= 0 {
		t.Error("flap impulse must be negative (upward)")
	}
	if cfg.Physics.MaxFallSpeed <= 0 {
		t.Error("fall ceiling must be positive")
	}
	if cfg.Pipes.Gap <= cfg.Bird.Size {
		t.Error("pipe gap must fit the bird")
	}
	if 2*cfg.Pipes.Margin+cfg.Pipes.Gap > cfg.Playfield.Height {
		t.Error("margins and gap must fit the playfield height")
	}
	if cfg.Bird.X+cfg.Bird.Size >= cfg.Playfield.Width {
		t.Error("bird must sit inside the playfield")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Loading with no file present in a scratch working dir falls back to
	// the embedded YAML, which must agree with the hardcoded default.
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Physics != Default().Physics {
		t.Errorf("embedded physics %+v differs from hardcoded %+v", loaded.Physics, Default().Physics)
	}
	if loaded.Pipes != Default().Pipes {
		t.Errorf("embedded pipes %+v differs from hardcoded %+v", loaded.Pipes, Default().Pipes)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `
playfield:
  width: 320
  height: 480
physics:
  gravity: 0.5
  flap_impulse: -6.0
  max_fall_speed: 8.0
bird:
  x: 60
  size: 20
  start_y: 230
pipes:
  width: 50
  gap: 120
  speed: 2.0
  spawn_interval: 180
  margin: 60
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Playfield.Width != 320 {
		t.Errorf("playfield width = %v, expected 320", cfg.Playfield.Width)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Pipes.SpawnInterval != 180 {
		t.Errorf("spawn interval = %v, expected 180", cfg.Pipes.SpawnInterval)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with explicit missing path should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed explicit config should fail")
	}
}
