package character

import (
	"testing"

	"github.com/automoto/overworld/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const frame = 1.0 / 60

func allClips(frames int) ClipTable {
	t := ClipTable{}
	for _, k := range []Kind{Idle, Run, Dash} {
		for f := gamemath.FacingDown; f <= gamemath.FacingLeft; f++ {
			t[ClipName(k.Label(), f)] = frames
		}
	}
	return t
}

func TestNewCentresHitboxInsideRect(t *testing.T) {
	b := New(0, 0, 16, 16, DefaultTuning())

	assert.Equal(t, gamemath.NewRect(4, 4, 8, 8), b.Hitbox)
	assert.Equal(t, gamemath.Vec2{X: 8, Y: 8}, b.Pos)
	assert.True(t, b.Rect.Contains(b.Hitbox))
	assert.Equal(t, Idle, b.State.Kind)
	assert.Equal(t, gamemath.FacingDown, b.Facing)
}

func TestIdleAtRestStaysPut(t *testing.T) {
	b := New(32, 32, 16, 16, DefaultTuning())
	start := b.Pos

	b.Tick(0.016, Intent{}, allClips(4), nil)

	assert.Equal(t, Idle, b.State.Kind)
	assert.Equal(t, start, b.Pos)
	assert.Equal(t, "idle_down", b.Anim.Clip)
	assert.Equal(t, 0, b.Anim.Frame())
	assert.InDelta(t, 0.24, b.Anim.Index, 1e-9)
}

func TestHoldingLeftSwitchesToRunOnSecondTick(t *testing.T) {
	b := New(100, 100, 16, 16, DefaultTuning())
	clips := allClips(4)
	left := Intent{Left: true}

	b.Tick(0.016, left, clips, nil)
	require.Equal(t, Idle, b.State.Kind)
	assert.InDelta(t, -32, b.Vel.X, 1e-9)

	b.Tick(0.016, left, clips, nil)
	assert.Equal(t, Run, b.State.Kind)
	assert.Equal(t, gamemath.FacingLeft, b.Facing)
	assert.Equal(t, "run_left", b.Anim.Clip)
	assert.InDelta(t, 0.24, b.Anim.Index, 1e-9)
}

func TestHoldingLeftSettlesAtMaxSpeed(t *testing.T) {
	b := New(1000, 100, 16, 16, DefaultTuning())
	clips := allClips(4)

	for i := 0; i < 600; i++ {
		b.Tick(frame, Intent{Left: true}, clips, nil)
		require.GreaterOrEqual(t, b.Vel.X, -60-1e-9)
	}

	assert.InDelta(t, -60, b.Vel.X, 1e-9)
	assert.Zero(t, b.Vel.Y)
	assert.Equal(t, Run, b.State.Kind)
}

func TestLeftBeatsRightAndUpBeatsDown(t *testing.T) {
	acc := Intent{Left: true, Right: true, Up: true, Down: true}.Acceleration(2000)
	assert.Equal(t, gamemath.Vec2{X: -2000, Y: -2000}, acc)
}

func TestReleasingInputReturnsToIdle(t *testing.T) {
	b := New(1000, 100, 16, 16, DefaultTuning())
	clips := allClips(4)
	for i := 0; i < 60; i++ {
		b.Tick(frame, Intent{Right: true}, clips, nil)
	}
	require.Equal(t, Run, b.State.Kind)

	for i := 0; i < 120 && b.State.Kind == Run; i++ {
		b.Tick(frame, Intent{}, clips, nil)
	}

	assert.Equal(t, Idle, b.State.Kind)
	assert.Less(t, b.Vel.Magnitude(), b.Tuning.RunThreshold)
	assert.Equal(t, gamemath.FacingRight, b.Facing)
}

func TestDashEndsOnceTimerDropsBelowZero(t *testing.T) {
	b := New(0, 0, 16, 16, DefaultTuning())
	clips := allClips(3)
	b.State = Enter(Dash, &b)
	require.Equal(t, 3.0, b.State.Timer)

	for i := 0; i < 3; i++ {
		b.Tick(1, Intent{}, clips, nil)
	}
	assert.Equal(t, Dash, b.State.Kind)
	assert.Equal(t, 0.0, b.State.Timer)

	b.Tick(1, Intent{}, clips, nil)
	assert.Equal(t, Dash, b.State.Kind)
	assert.Equal(t, -1.0, b.State.Timer)

	b.Tick(1, Intent{}, clips, nil)
	assert.Equal(t, Idle, b.State.Kind)
}

func TestDashHoldsLastFrameAndStopsTheBody(t *testing.T) {
	b := New(50, 50, 16, 16, DefaultTuning())
	clips := allClips(3)
	b.Vel = gamemath.Vec2{X: 30}
	b.Tick(frame, Intent{Dash: true}, clips, nil)
	require.Equal(t, Dash, b.State.Kind)
	assert.Equal(t, "attack_right", b.Anim.Clip)
	start := b.Pos

	for i := 0; i < 30; i++ {
		b.Tick(frame, Intent{Right: true}, clips, nil)
	}

	assert.Equal(t, Dash, b.State.Kind)
	assert.Equal(t, 2, b.Anim.Frame())
	assert.True(t, b.Anim.Finished)
	assert.True(t, b.Vel.IsZero())
	assert.Equal(t, start, b.Pos)
}

func TestWallStopsBodyWithoutZeroingVelocity(t *testing.T) {
	b := New(0, 0, 16, 16, DefaultTuning())
	wall := gamemath.NewRect(40, -100, 16, 300)
	walls := StaticObstacles{wall}
	clips := allClips(4)

	for i := 0; i < 300; i++ {
		b.Tick(frame, Intent{Right: true}, clips, walls)
		require.False(t, b.Hitbox.Intersects(wall), "tick %d", i)
	}

	assert.Equal(t, wall.Left(), b.Hitbox.Right())
	assert.Equal(t, float64(b.Hitbox.CenterX()), b.Pos.X)
	assert.InDelta(t, 60, b.Vel.X, 1e-9)
}

func TestUnknownClipPanics(t *testing.T) {
	b := New(0, 0, 16, 16, DefaultTuning())
	assert.Panics(t, func() {
		b.Tick(frame, Intent{}, ClipTable{}, nil)
	})
}

func TestNextIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(0, 0, 16, 16, DefaultTuning())
		b.State = State{
			Kind:  Kind(rapid.IntRange(0, 2).Draw(t, "kind")),
			Timer: rapid.Float64Range(-2, 4).Draw(t, "timer"),
		}
		b.Vel = gamemath.Vec2{
			X: rapid.Float64Range(-80, 80).Draw(t, "vx"),
			Y: rapid.Float64Range(-80, 80).Draw(t, "vy"),
		}
		in := Intent{Dash: rapid.Bool().Draw(t, "dash")}
		before := b

		k1, ok1 := b.State.Next(&b, in)
		k2, ok2 := b.State.Next(&b, in)

		assert.Equal(t, k1, k2)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, before, b)
	})
}

func TestTickKeepsBodyConsistent(t *testing.T) {
	room := StaticObstacles{
		gamemath.NewRect(0, 0, 160, 16),
		gamemath.NewRect(0, 144, 160, 16),
		gamemath.NewRect(0, 0, 16, 160),
		gamemath.NewRect(144, 0, 16, 160),
		gamemath.NewRect(64, 64, 32, 16),
	}
	clips := allClips(5)

	rapid.Check(t, func(t *rapid.T) {
		b := New(24, 24, 16, 16, DefaultTuning())
		steps := rapid.IntRange(1, 300).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			in := Intent{
				Left:  rapid.Bool().Draw(t, "left"),
				Right: rapid.Bool().Draw(t, "right"),
				Up:    rapid.Bool().Draw(t, "up"),
				Down:  rapid.Bool().Draw(t, "down"),
				Dash:  rapid.IntRange(0, 40).Draw(t, "dash") == 0,
			}
			b.Tick(frame, in, clips, room)

			require.LessOrEqual(t, b.Vel.Magnitude(), b.Tuning.MaxSpeed+1e-9)
			require.Equal(t, gamemath.Round(b.Pos.X), b.Hitbox.CenterX())
			require.Equal(t, gamemath.Round(b.Pos.Y), b.Hitbox.CenterY())
			require.True(t, b.Rect.Contains(b.Hitbox))
			require.GreaterOrEqual(t, b.Anim.Frame(), 0)
			require.Less(t, b.Anim.Frame(), 5)
			for _, wall := range room {
				require.False(t, b.Hitbox.Intersects(wall))
			}
		}
	})
}
