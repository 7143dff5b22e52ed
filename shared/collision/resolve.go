// Package collision pushes a moving hitbox out of static obstacles one axis
// at a time.
package collision

import "github.com/automoto/overworld/shared/gamemath"

// Axis selects which coordinate ResolveAxis corrects.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ResolveAxis moves hitbox out of every obstacle it overlaps, along axis
// only. vel is the velocity component on that axis: a positive value pushes
// the hitbox back against the obstacle's near side, anything else pushes it
// out past the far side.
//
// Obstacles are checked in order against the hitbox as already corrected by
// earlier ones. It reports whether any correction was made.
func ResolveAxis(hitbox *gamemath.Rect, vel float64, axis Axis, obstacles []gamemath.Rect) bool {
	moved := false
	for _, o := range obstacles {
		if !hitbox.Intersects(o) {
			continue
		}
		moved = true
		switch axis {
		case AxisX:
			if vel > 0 {
				hitbox.SetRight(o.Left())
			} else {
				hitbox.SetLeft(o.Right())
			}
		case AxisY:
			if vel > 0 {
				hitbox.SetBottom(o.Top())
			} else {
				hitbox.SetTop(o.Bottom())
			}
		}
	}
	return moved
}
