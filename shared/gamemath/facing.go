package gamemath

import "math"

// Facing is one of the four coarse compass directions used to pick clips.
type Facing int

const (
	FacingDown Facing = iota
	FacingRight
	FacingUp
	FacingLeft
)

var facingNames = [...]string{
	FacingDown:  "down",
	FacingRight: "right",
	FacingUp:    "up",
	FacingLeft:  "left",
}

func (f Facing) String() string {
	if f < 0 || int(f) >= len(facingNames) {
		return "down"
	}
	return facingNames[f]
}

var down = Vec2{X: 0, Y: 1}

// FacingFromAngle buckets an angle, in degrees relative to "down", into a
// facing. Any angle is accepted and normalized into [0, 360) first.
func FacingFromAngle(deg float64) Facing {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a >= 45 && a < 135:
		return FacingRight
	case a >= 135 && a < 225:
		return FacingUp
	case a >= 225 && a < 315:
		return FacingLeft
	default:
		return FacingDown
	}
}

// FacingOf maps a velocity to a facing. There is no hysteresis: a velocity
// hovering around a bucket edge flips between the two directions.
func FacingOf(v Vec2) Facing {
	return FacingFromAngle(v.AngleTo(down))
}
