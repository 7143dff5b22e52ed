package collision

import (
	"testing"

	"github.com/automoto/overworld/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveXMovingRightStopsAtLeftEdge(t *testing.T) {
	hitbox := gamemath.NewRect(10, 10, 8, 8)
	wall := gamemath.NewRect(16, 0, 16, 32)

	moved := ResolveAxis(&hitbox, 40, AxisX, []gamemath.Rect{wall})

	require.True(t, moved)
	assert.Equal(t, wall.Left(), hitbox.Right())
	assert.Equal(t, 10, hitbox.Y)
}

func TestResolveXMovingLeftStopsAtRightEdge(t *testing.T) {
	hitbox := gamemath.NewRect(14, 10, 8, 8)
	wall := gamemath.NewRect(0, 0, 16, 32)

	ResolveAxis(&hitbox, -40, AxisX, []gamemath.Rect{wall})

	assert.Equal(t, wall.Right(), hitbox.Left())
}

func TestResolveStationaryPushesPastFarSide(t *testing.T) {
	hitbox := gamemath.NewRect(4, 4, 8, 8)
	wall := gamemath.NewRect(0, 8, 32, 16)

	ResolveAxis(&hitbox, 0, AxisY, []gamemath.Rect{wall})

	assert.Equal(t, wall.Bottom(), hitbox.Top())
	assert.Equal(t, 4, hitbox.X)
}

func TestResolveYMovingDownLandsOnTop(t *testing.T) {
	hitbox := gamemath.NewRect(4, 4, 8, 8)
	floor := gamemath.NewRect(0, 10, 32, 16)

	ResolveAxis(&hitbox, 25, AxisY, []gamemath.Rect{floor})

	assert.Equal(t, floor.Top(), hitbox.Bottom())
}

func TestResolveTouchingEdgesIsNotACollision(t *testing.T) {
	hitbox := gamemath.NewRect(0, 0, 8, 8)
	wall := gamemath.NewRect(8, 0, 8, 8)

	moved := ResolveAxis(&hitbox, 10, AxisX, []gamemath.Rect{wall})

	assert.False(t, moved)
	assert.Equal(t, gamemath.NewRect(0, 0, 8, 8), hitbox)
}

func TestResolveWithNoObstacles(t *testing.T) {
	hitbox := gamemath.NewRect(3, 3, 8, 8)
	assert.False(t, ResolveAxis(&hitbox, 5, AxisX, nil))
}

func genRect(t *rapid.T, label string) gamemath.Rect {
	return gamemath.NewRect(
		rapid.IntRange(-64, 64).Draw(t, label+"x"),
		rapid.IntRange(-64, 64).Draw(t, label+"y"),
		rapid.IntRange(1, 32).Draw(t, label+"w"),
		rapid.IntRange(1, 32).Draw(t, label+"h"),
	)
}

func TestResolveKeepsOtherAxis(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hitbox := genRect(t, "hitbox")
		obstacles := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) gamemath.Rect {
			return genRect(t, "obstacle")
		}), 0, 6).Draw(t, "obstacles")
		vel := rapid.Float64Range(-100, 100).Draw(t, "vel")
		axis := Axis(rapid.IntRange(0, 1).Draw(t, "axis"))

		before := hitbox
		ResolveAxis(&hitbox, vel, axis, obstacles)

		assert.Equal(t, before.W, hitbox.W)
		assert.Equal(t, before.H, hitbox.H)
		if axis == AxisX {
			assert.Equal(t, before.Y, hitbox.Y)
		} else {
			assert.Equal(t, before.X, hitbox.X)
		}
	})
}

func TestResolveIsIdempotentOnceClear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hitbox := genRect(t, "hitbox")
		obstacle := genRect(t, "obstacle")
		vel := rapid.Float64Range(-100, 100).Draw(t, "vel")
		axis := Axis(rapid.IntRange(0, 1).Draw(t, "axis"))
		obstacles := []gamemath.Rect{obstacle}

		ResolveAxis(&hitbox, vel, axis, obstacles)
		require.False(t, hitbox.Intersects(obstacle))

		after := hitbox
		moved := ResolveAxis(&hitbox, vel, axis, obstacles)
		assert.False(t, moved)
		assert.Equal(t, after, hitbox)
	})
}
