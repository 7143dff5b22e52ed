package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAdvanceLoopsToFirstFrame(t *testing.T) {
	var p Progress
	for i := 0; i < 3; i++ {
		p.Advance("run_left", 1, 4, true)
	}
	assert.Equal(t, 3, p.Frame())

	p.Advance("run_left", 1, 4, true)
	assert.Equal(t, 0, p.Frame())
	assert.False(t, p.Finished)
}

func TestAdvanceHoldsLastFrameWithoutLoop(t *testing.T) {
	var p Progress
	for i := 0; i < 10; i++ {
		p.Advance("attack_down", 1, 4, false)
	}
	assert.Equal(t, 3, p.Frame())
	assert.True(t, p.Finished)
	assert.Equal(t, "attack_down", p.Clip)
}

func TestRestartKeepsClip(t *testing.T) {
	p := Progress{Clip: "idle_up", Index: 2.5, Finished: true}
	p.Restart()
	assert.Equal(t, "idle_up", p.Clip)
	assert.Zero(t, p.Index)
	assert.False(t, p.Finished)
}

func TestAdvancePanicsOnEmptyClip(t *testing.T) {
	var p Progress
	assert.Panics(t, func() { p.Advance("idle_down", 0.25, 0, true) })
}

func TestFrameAlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var p Progress
		count := rapid.IntRange(1, 12).Draw(t, "count")
		loop := rapid.Bool().Draw(t, "loop")
		steps := rapid.SliceOfN(rapid.Float64Range(0, 2), 1, 50).Draw(t, "steps")
		for _, s := range steps {
			p.Advance("clip", s, count, loop)
			if f := p.Frame(); f < 0 || f >= count {
				t.Fatalf("frame %d outside clip of %d frames", f, count)
			}
		}
	})
}
