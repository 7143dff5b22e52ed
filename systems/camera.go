package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera centres the view on the player's render rect.
func UpdateCamera(ecs *ecs.ECS) {
	moveCamera(ecs, cfg.Camera.FollowSmoothing)
}

// SnapCamera puts the camera straight on its target, used when a room opens
// so the view does not sweep in from the origin.
func SnapCamera(ecs *ecs.ECS) {
	moveCamera(ecs, 1)
}

func moveCamera(ecs *ecs.ECS, smoothing float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Character.Get(playerEntry).Body

	target := gamemath.CameraOffset(body.Rect.Center(), cfg.C.Width, cfg.C.Height)
	if cfg.Camera.ClampToLevel {
		if levelEntry, ok := components.Level.First(ecs.World); ok {
			room := components.Level.Get(levelEntry).Room
			target = gamemath.ClampOffset(target, cfg.C.Width, cfg.C.Height, room.Width, room.Height)
		}
	}

	offset := gamemath.Follow(toVec2(camera.Offset), target, smoothing)
	camera.Offset = math.NewVec2(offset.X, offset.Y)
}

// CameraOffset returns the world position of the screen's top-left corner,
// rounded to whole pixels so tiles and sprites stay aligned.
func CameraOffset(ecs *ecs.ECS) (int, int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	o := components.Camera.Get(cameraEntry).Offset
	return gamemath.Round(o.X), gamemath.Round(o.Y)
}

func toVec2(v math.Vec2) gamemath.Vec2 {
	return gamemath.Vec2{X: v.X, Y: v.Y}
}
