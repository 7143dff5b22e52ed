package character

import "github.com/automoto/overworld/shared/gamemath"

// Intent is one frame's logical movement request.
type Intent struct {
	Left, Right, Up, Down bool
	// Dash should be set on the frame the dash input goes down only.
	Dash bool
}

// Acceleration turns held directions into an acceleration of the given
// magnitude per axis. Left wins over right and up wins over down.
func (in Intent) Acceleration(force float64) gamemath.Vec2 {
	var acc gamemath.Vec2
	switch {
	case in.Left:
		acc.X = -force
	case in.Right:
		acc.X = force
	}
	switch {
	case in.Up:
		acc.Y = -force
	case in.Down:
		acc.Y = force
	}
	return acc
}
