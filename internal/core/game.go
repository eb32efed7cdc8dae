package core

// Game is the contract between a simulation and the platform.
// Implementations contain pure logic with no terminal dependencies;
// the platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current platform-visible game state.
	State() GameState
}
