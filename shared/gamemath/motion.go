package gamemath

import "math"

// IntegrateAxis advances one axis by dt.
//
// Friction is a negative coefficient, so acc picks up a drag proportional to
// speed. The position term is vel*dt + 0.5*vel*dt rather than the textbook
// 0.5*acc*dt*dt; movement is tuned against this form.
func IntegrateAxis(pos, vel, acc, friction, dt float64) (newPos, newVel, newAcc float64) {
	acc += vel * friction
	vel += acc * dt
	pos += vel*dt + (0.5*vel)*dt
	return pos, vel, acc
}

// ClampSpeed rescales v to exactly max when its magnitude reaches max.
// Smaller vectors, including the zero vector, are returned untouched.
func ClampSpeed(v Vec2, max float64) Vec2 {
	if max <= 0 {
		return v
	}
	if v.Magnitude() >= max {
		return v.Normalize().Scale(max)
	}
	return v
}

// Round converts a continuous coordinate to a pixel, rounding halves to even.
func Round(f float64) int {
	return int(math.RoundToEven(f))
}
