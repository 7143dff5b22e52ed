// Package gamemath holds the small amount of geometry the simulation needs.
// It must stay free of ebiten and any graphics dependency so the motion core
// can be exercised headless.
package gamemath

import "math"

// Vec2 is a 2D vector in world units. Y grows downward, as on screen.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing the same way as v.
// The zero vector has no direction and comes back unchanged.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// AngleTo returns the signed angle in degrees that rotates v onto o.
// The result is in (-360, 360); callers normalize it as needed.
func (v Vec2) AngleTo(o Vec2) float64 {
	return (math.Atan2(o.Y, o.X) - math.Atan2(v.Y, v.X)) * 180 / math.Pi
}
