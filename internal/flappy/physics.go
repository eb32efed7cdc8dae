package flappy

import "github.com/vovakirdan/flappy-tui/internal/config"

// Bird is the player entity. X is fixed while a session is playing;
// only Y and Velocity change per tick.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64
}

// AdvanceBird applies one tick of gravity and moves the bird.
// Velocity is clamped to the fall ceiling after gravity accrues; there is
// no clamp on the upward side, so deceleration out of a flap is unbounded.
func AdvanceBird(b Bird, phy config.Physics) Bird {
	v := b.Velocity + phy.Gravity
	if v > phy.MaxFallSpeed {
		v = phy.MaxFallSpeed
	}
	b.Velocity = v
	b.Y += v
	return b
}

// FlapBird applies the flap impulse. The impulse is an assignment, not an
// addition: repeated flaps never accumulate.
func FlapBird(b Bird, phy config.Physics) Bird {
	b.Velocity = phy.FlapImpulse
	return b
}
