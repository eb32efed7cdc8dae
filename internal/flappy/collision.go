package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Colliding reports whether the bird overlaps the playfield bounds or any
// pipe. Pure function, no side effects; it is the sole authority for ending
// a session and is re-evaluated every tick against the post-advance state.
// Short-circuits on the first overlapping pipe.
func Colliding(b Bird, pipes []Pipe, cfg config.Config) bool {
	// Ceiling and ground, using the bounding box top
	if b.Y <= 0 || b.Y >= cfg.Playfield.Height-cfg.Bird.Size {
		return true
	}

	birdBox := core.NewRectF(b.X, b.Y, cfg.Bird.Size, cfg.Bird.Size)
	width := cfg.Pipes.Width
	for _, p := range pipes {
		if birdBox.Intersects(p.TopRect(width)) || birdBox.Intersects(p.BottomRect(width, cfg.Playfield.Height)) {
			return true
		}
	}
	return false
}
