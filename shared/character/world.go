package character

import (
	"fmt"

	"github.com/automoto/overworld/shared/gamemath"
)

// Clips reports how many frames each named clip has. Asking for a clip that
// does not exist is a programming error and must panic.
type Clips interface {
	FrameCount(clip string) int
}

// Obstacles answers which static hitboxes may overlap area. It may return
// more than actually overlap; the resolver re-checks each one.
type Obstacles interface {
	Near(area gamemath.Rect) []gamemath.Rect
}

// ClipTable is a Clips backed by a plain map of frame counts.
type ClipTable map[string]int

func (t ClipTable) FrameCount(clip string) int {
	n, ok := t[clip]
	if !ok || n <= 0 {
		panic(fmt.Sprintf("character: no frames for clip %q", clip))
	}
	return n
}

// StaticObstacles is an Obstacles that offers every hitbox for every query.
type StaticObstacles []gamemath.Rect

func (s StaticObstacles) Near(gamemath.Rect) []gamemath.Rect {
	return s
}
