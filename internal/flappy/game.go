package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Minimum terminal size the renderer can express the playfield in.
const (
	minScreenW = 24
	minScreenH = 10
)

// Visual characters for rendering
const (
	birdChar      = '▶'
	birdBodyChar  = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// Game adapts a Session to the platform's core.Game contract. It owns the
// terminal-cell projection of the logical playfield; the session itself
// never learns about screens.
type Game struct {
	cfg      config.Config
	score    *ScoreTracker
	session  *Session
	runtime  core.RuntimeConfig
	tooSmall bool
}

// NewGame creates a game bound to the given configuration and score store.
// The store may be nil; scores then live in memory only.
func NewGame(cfg config.Config, store HighScoreStore) *Game {
	return &Game{
		cfg:   cfg,
		score: NewScoreTracker(store),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game. The score tracker is kept so the
// high score stays monotonic across resets within the process.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.runtime.Seed == 0 {
		g.runtime.Seed = time.Now().UnixNano()
	}
	g.tooSmall = rc.ScreenW < minScreenW || rc.ScreenH < minScreenH
	g.session = NewSession(g.cfg, g.runtime.Seed, g.score)
}

// Step processes one driver tick: input first, then the simulation. Input
// handling and tick processing share this single execution context, so no
// locking is needed anywhere in the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}
	if in.Has(core.ActionFlap) {
		g.session.Flap()
	}

	g.session.Tick()

	return core.StepResult{State: g.State()}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Playing:   g.session.State() == StatePlaying,
		GameOver:  g.session.State() == StateGameOver,
		Paused:    g.session.State() == StatePaused,
	}
}

// Render projects the current snapshot onto the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	snap := g.session.Snapshot()
	sx := float64(dst.Width()) / g.cfg.Playfield.Width
	sy := float64(dst.Height()-1) / g.cfg.Playfield.Height

	// Ground
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), groundChar)

	for _, p := range snap.Pipes {
		g.drawPipe(dst, p, sx, sy)
	}
	g.drawBird(dst, snap.Bird, sx, sy)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, snap.HighScore))

	switch snap.State {
	case StateStart:
		g.drawCenteredMessage(dst, "FLAPPY BIRD", "Press Space to flap")
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press Space to play again", snap.Score))
	}
}

// drawBird renders the bird's hitbox as terminal cells.
func (g *Game) drawBird(dst *core.Screen, b Bird, sx, sy float64) {
	x := int(b.X * sx)
	y := int(b.Y * sy)
	w := core.Max(1, int(g.cfg.Bird.Size*sx))
	h := core.Max(1, int(g.cfg.Bird.Size*sy))

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := birdBodyChar
			if dx == w-1 && dy == 0 {
				ch = birdChar
			}
			dst.SetColored(x+dx, y+dy, ch, core.ColorBrightYellow)
		}
	}
}

// drawPipe renders both segments of a pipe with gap caps.
func (g *Game) drawPipe(dst *core.Screen, p Pipe, sx, sy float64) {
	x := int(p.X * sx)
	w := core.Max(1, int(g.cfg.Pipes.Width*sx))
	topEnd := int(p.TopHeight * sy)
	bottomStart := int(p.BottomY * sy)
	groundY := dst.Height() - 1

	for y := 0; y < topEnd; y++ {
		ch := pipeChar
		if y == topEnd-1 {
			ch = pipeCapTop
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y, ch, core.ColorBrightGreen)
		}
	}

	for y := bottomStart; y < groundY; y++ {
		ch := pipeChar
		if y == bottomStart {
			ch = pipeCapBottom
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y, ch, core.ColorBrightGreen)
		}
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
