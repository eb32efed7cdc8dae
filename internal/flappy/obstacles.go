package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Pipe is a vertical obstacle pair with a fixed gap between its segments.
// The invariant BottomY-TopHeight == Pipes.Gap holds for the pipe's lifetime.
type Pipe struct {
	X         float64 // Left edge, decreases over time
	TopHeight float64 // Vertical extent of the upper segment
	BottomY   float64 // Vertical start of the lower segment
	Passed    bool    // Scored-once flag
}

// TopRect returns the collision rectangle for the upper segment.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.TopHeight)
}

// BottomRect returns the collision rectangle for the lower segment.
func (p Pipe) BottomRect(width, playfieldH float64) core.RectF {
	return core.NewRectF(p.X, p.BottomY, width, playfieldH-p.BottomY)
}

// AdvancePipes moves all pipes one tick left, culls pipes that are fully
// off-screen, spawns at a constant horizontal spacing, and flags pipes whose
// trailing edge has crossed the bird's fixed x position. Returns the updated
// slice and the number of pipes passed this tick.
//
// Spacing is distance-based, not time-based: a new pipe appears at the right
// edge as soon as the rightmost pipe has travelled a full spawn interval, so
// pipes stay evenly spaced regardless of spawn-frame timing.
func AdvancePipes(pipes []Pipe, rng *rand.Rand, cfg config.Config) ([]Pipe, int) {
	pc := cfg.Pipes

	for i := range pipes {
		pipes[i].X -= pc.Speed
	}

	// Drop pipes whose right edge is left of the playfield origin
	alive := pipes[:0]
	for _, p := range pipes {
		if p.X+pc.Width > 0 {
			alive = append(alive, p)
		}
	}
	pipes = alive

	if len(pipes) == 0 || pipes[len(pipes)-1].X <= cfg.Playfield.Width-pc.SpawnInterval {
		pipes = append(pipes, spawnPipe(rng, cfg))
	}

	passed := 0
	for i := range pipes {
		if !pipes[i].Passed && pipes[i].X+pc.Width < cfg.Bird.X {
			pipes[i].Passed = true
			passed++
		}
	}

	return pipes, passed
}

// spawnPipe creates a pipe at the playfield's right edge with the gap band
// uniformly distributed inside [Margin, Height-Margin].
func spawnPipe(rng *rand.Rand, cfg config.Config) Pipe {
	pc := cfg.Pipes

	top := pc.Margin
	maxTop := cfg.Playfield.Height - pc.Margin - pc.Gap
	if maxTop > top {
		top += rng.Float64() * (maxTop - top)
	}

	return Pipe{
		X:         cfg.Playfield.Width,
		TopHeight: top,
		BottomY:   top + pc.Gap,
	}
}
