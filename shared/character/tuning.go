// Package character is the motion and animation core for top-down
// characters: a body integrated per axis, pushed out of static obstacles,
// and driven by a small state machine that also picks the clip to play.
//
// It has no ebiten dependency; frames and obstacles are reached through the
// Clips and Obstacles interfaces.
package character

// Tuning holds the per-character constants.
type Tuning struct {
	MaxSpeed     float64 // velocity magnitude cap, units per second
	Friction     float64 // negative drag coefficient applied to velocity
	Force        float64 // acceleration while a direction is held
	FrameRate    float64 // animation frames per second
	RunThreshold float64 // speed separating Idle from Run
	DashDuration float64 // seconds spent in Dash
	HitboxInset  float64 // fraction of the render rect trimmed off the hitbox
}

// DefaultTuning returns the values the player is tuned with.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     60,
		Friction:     -15,
		Force:        2000,
		FrameRate:    15,
		RunThreshold: 1,
		DashDuration: 3,
		HitboxInset:  0.5,
	}
}
