package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSplash pulses the start hint and calls onStart when the player
// confirms.
func NewUpdateSplash(onStart func()) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			onStart()
			return
		}

		splashEntry, ok := components.Splash.First(ecs.World)
		if !ok {
			return
		}
		splash := components.Splash.Get(splashEntry)

		dt := float32(1.0 / float64(ebiten.TPS()))
		alpha, _, finished := splash.Pulse.Update(dt)
		splash.Alpha = alpha
		if finished {
			splash.Pulse.Reset()
		}
	}
}

// DrawSplash renders the title screen
func DrawSplash(ecs *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Splash.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Splash.Title
	titleWidth := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, (width-titleWidth)/2, cfg.Splash.TitleY, cfg.Splash.TitleColor)

	alpha := float32(1)
	if splashEntry, ok := components.Splash.First(ecs.World); ok {
		alpha = clamp01(components.Splash.Get(splashEntry).Alpha)
	}
	hintColor := cfg.Splash.HintColor
	hintColor.R = uint8(float32(hintColor.R) * alpha)
	hintColor.G = uint8(float32(hintColor.G) * alpha)
	hintColor.B = uint8(float32(hintColor.B) * alpha)
	hintColor.A = uint8(float32(hintColor.A) * alpha)

	hintFont := fonts.Regular.Get()
	hint := splashHint(getOrCreateInput(ecs).LastInputMethod)
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, (width-hintWidth)/2, height-40, hintColor)
}

// splashHint names the confirm button of the device last used
func splashHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return cfg.Splash.PlayStationHint
	case components.InputXbox:
		return cfg.Splash.XboxHint
	default:
		return cfg.Splash.Hint
	}
}
