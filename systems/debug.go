package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/shared/collision"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision shapes and prints the player's motion state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camX, camY := CameraOffset(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := gamemath.NewRect(camX, camY, width, height)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			r := collision.ObjectRect(obj)
			if !r.Intersects(view) {
				continue
			}
			switch {
			case obj.HasTags(tags.ResolvSolid):
				strokeRect(screen, r, camX, camY, cfg.Debug.SolidColor)
			case obj.HasTags(tags.ResolvExit):
				strokeRect(screen, r, camX, camY, cfg.Debug.ExitColor)
			}
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Character.Get(playerEntry).Body
	strokeRect(screen, body.Rect, camX, camY, cfg.Debug.RectColor)
	strokeRect(screen, body.Hitbox, camX, camY, cfg.Debug.HitboxColor)

	lines := []string{
		fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("force: %.1f, %.1f", body.Acc.X, body.Acc.Y),
		fmt.Sprintf("vel: %.1f, %.1f", body.Vel.X, body.Vel.Y),
		fmt.Sprintf("state: %s", body.State.Kind),
		fmt.Sprintf("facing: %s", body.Facing),
	}
	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 4, (i+1)*cfg.Debug.LineHeight, cfg.Debug.TextColor)
	}
}

// strokeRect draws a one pixel outline of a world-space rect.
func strokeRect(screen *ebiten.Image, r gamemath.Rect, camX, camY int, c color.Color) {
	x := float32(r.X - camX)
	y := float32(r.Y - camY)
	w := float32(r.W)
	h := float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
