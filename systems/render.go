package systems

import (
	"sort"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the room's pre-rendered tile layers.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	room := components.Level.Get(levelEntry).Room
	if room == nil || room.Background == nil {
		return
	}

	camX, camY := CameraOffset(ecs)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-camX), float64(-camY))
	screen.DrawImage(room.Background, op)
}

// Reused between frames to avoid allocating the draw list.
var drawOrder []*donburi.Entry

// DrawCharacters draws each character's current frame at its render rect.
// Lower rects draw later so characters further down overlap those above.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	drawOrder = drawOrder[:0]
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		drawOrder = append(drawOrder, e)
	})
	sort.SliceStable(drawOrder, func(i, j int) bool {
		return components.Character.Get(drawOrder[i]).Body.Rect.Bottom() <
			components.Character.Get(drawOrder[j]).Body.Rect.Bottom()
	})

	camX, camY := CameraOffset(ecs)
	for _, e := range drawOrder {
		body := components.Character.Get(e).Body
		frame := components.Animation.Get(e).Frame(body.Anim)
		if frame == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(body.Rect.X-camX), float64(body.Rect.Y-camY))
		screen.DrawImage(frame, op)
	}
}
