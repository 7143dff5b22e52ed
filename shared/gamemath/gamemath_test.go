package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFacingOfCardinalVelocities(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Facing
	}{
		{"down", Vec2{X: 0, Y: 5}, FacingDown},
		{"right", Vec2{X: 5, Y: 0}, FacingRight},
		{"up", Vec2{X: 0, Y: -5}, FacingUp},
		{"left", Vec2{X: -5, Y: 0}, FacingLeft},
		{"down-right leans right", Vec2{X: 5, Y: 5}, FacingRight},
		{"up-left leans left", Vec2{X: -5, Y: -5}, FacingLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FacingOf(tt.v))
		})
	}
}

func TestFacingFromAngleBucketEdges(t *testing.T) {
	assert.Equal(t, FacingDown, FacingFromAngle(44.999))
	assert.Equal(t, FacingRight, FacingFromAngle(45))
	assert.Equal(t, FacingUp, FacingFromAngle(135))
	assert.Equal(t, FacingLeft, FacingFromAngle(225))
	assert.Equal(t, FacingDown, FacingFromAngle(315))
	assert.Equal(t, FacingLeft, FacingFromAngle(-90))
	assert.Equal(t, FacingRight, FacingFromAngle(450))
}

func TestFacingFromAngleIsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deg := rapid.Float64Range(-1e6, 1e6).Draw(t, "deg")
		f := FacingFromAngle(deg)
		assert.GreaterOrEqual(t, int(f), int(FacingDown))
		assert.LessOrEqual(t, int(f), int(FacingLeft))
	})
}

func TestClampSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Vec2{
			X: rapid.Float64Range(-500, 500).Draw(t, "x"),
			Y: rapid.Float64Range(-500, 500).Draw(t, "y"),
		}
		max := rapid.Float64Range(1, 200).Draw(t, "max")

		got := ClampSpeed(v, max)

		assert.LessOrEqual(t, got.Magnitude(), max+1e-9)
		if v.Magnitude() >= max {
			assert.InDelta(t, max, got.Magnitude(), 1e-9)
		} else {
			assert.Equal(t, v, got)
		}
	})
}

func TestClampSpeedLeavesZeroAlone(t *testing.T) {
	assert.Equal(t, Vec2{}, ClampSpeed(Vec2{}, 60))
}

func TestFrictionAloneBleedsSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		friction := rapid.Float64Range(-50, -0.1).Draw(t, "friction")
		// explicit Euler only damps while friction*dt stays inside (-2, 0)
		dt := rapid.Float64Range(0.0001, 1/-friction).Draw(t, "dt")
		vel := rapid.Float64Range(-100, 100).Draw(t, "vel")
		pos := 0.0

		for i := 0; i < 50; i++ {
			before := math.Abs(vel)
			pos, vel, _ = IntegrateAxis(pos, vel, 0, friction, dt)
			assert.LessOrEqual(t, math.Abs(vel), before+1e-12)
		}
	})
}

func TestIntegrateAxisUsesVelocityWeightedStep(t *testing.T) {
	pos, vel, acc := IntegrateAxis(10, 0, -2000, -15, 0.016)

	assert.InDelta(t, -2000, acc, 1e-9)
	assert.InDelta(t, -32, vel, 1e-9)
	assert.InDelta(t, 10-32*0.016*1.5, pos, 1e-9)
}

func TestRoundHalvesToEven(t *testing.T) {
	assert.Equal(t, 2, Round(2.5))
	assert.Equal(t, 4, Round(3.5))
	assert.Equal(t, -2, Round(-2.5))
	assert.Equal(t, 3, Round(2.6))
}

func TestRectInflateShrinksAroundCentre(t *testing.T) {
	r := NewRect(10, 20, 16, 32)
	in := r.Inflate(-8, -16)

	assert.Equal(t, NewRect(14, 28, 8, 16), in)
	assert.Equal(t, r.Center(), in.Center())
	assert.True(t, r.Contains(in))
}

func TestRectIntersectsIgnoresTouchingEdges(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.False(t, a.Intersects(NewRect(10, 0, 10, 10)))
	assert.False(t, a.Intersects(NewRect(0, 10, 10, 10)))
	assert.True(t, a.Intersects(NewRect(9, 9, 10, 10)))
}

func TestCameraOffsetCentresTarget(t *testing.T) {
	off := CameraOffset(Vec2{X: 200, Y: 150}, 320, 180)
	assert.Equal(t, Vec2{X: 40, Y: 60}, off)
}

func TestFollowSnapsWithoutSmoothing(t *testing.T) {
	target := Vec2{X: 12, Y: -4}
	assert.Equal(t, target, Follow(Vec2{}, target, 1))
	assert.Equal(t, target, Follow(Vec2{}, target, 0))
	assert.Equal(t, Vec2{X: 6, Y: -2}, Follow(Vec2{}, target, 0.5))
}

func TestClampOffsetKeepsCameraInLevel(t *testing.T) {
	assert.Equal(t, Vec2{X: 0, Y: 0}, ClampOffset(Vec2{X: -20, Y: -5}, 320, 180, 640, 480))
	assert.Equal(t, Vec2{X: 320, Y: 300}, ClampOffset(Vec2{X: 900, Y: 400}, 320, 180, 640, 480))
	assert.Equal(t, Vec2{X: -80, Y: 0}, ClampOffset(Vec2{X: 10, Y: 0}, 320, 180, 160, 480))
}
