package systems

import (
	"strings"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/character"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Kept across frames so polling does not allocate.
var gamepadIDs []ebiten.GamepadID

// Device family per gamepad, detected once from its name.
var gamepadMethods = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput snapshots every bound action for this frame. It runs before
// any system that reads the snapshot.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed bool
	gamepad, gamepadUsed := ebiten.GamepadID(0), false
	for id, binding := range cfg.Input.Bindings {
		if keysHeld(binding.Keys) {
			input.Current[id] = true
			keyboardUsed = true
		}
		if gp, ok := buttonsHeld(binding.StandardGamepadButtons); ok {
			input.Current[id] = true
			gamepad, gamepadUsed = gp, true
		}
	}

	if gp, ok := pollLeftStick(input); ok {
		gamepad, gamepadUsed = gp, true
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = gamepadMethod(gamepad)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

func keysHeld(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// buttonsHeld reports the first standard-layout gamepad holding any of
// buttons.
func buttonsHeld(buttons []ebiten.StandardGamepadButton) (ebiten.GamepadID, bool) {
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return gp, true
			}
		}
	}
	return 0, false
}

// pollLeftStick folds the left stick into the four move actions. Tilts
// inside the deadzone are ignored.
func pollLeftStick(input *components.InputData) (ebiten.GamepadID, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	var active ebiten.GamepadID
	used := false

	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)

		tilts := [...]struct {
			on     bool
			action cfg.ActionID
		}{
			{h < -deadzone, cfg.ActionMoveLeft},
			{h > deadzone, cfg.ActionMoveRight},
			{v < -deadzone, cfg.ActionMoveUp},
			{v > deadzone, cfg.ActionMoveDown},
		}
		for _, t := range tilts {
			if t.on {
				input.Current[t.action] = true
				active, used = gp, true
			}
		}
	}
	return active, used
}

func gamepadMethod(gp ebiten.GamepadID) components.InputMethod {
	if method, ok := gamepadMethods[gp]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(gp))
	for _, hint := range []string{"playstation", "dualshock", "dualsense", "ps4", "ps5"} {
		if strings.Contains(name, hint) {
			method = components.InputPlayStation
			break
		}
	}
	gamepadMethods[gp] = method
	return method
}

// getOrCreateInput returns the world's input snapshot, creating it on first
// use.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives an action's edges from the last two snapshots.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr, prev := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PlayerIntent turns this frame's input into a movement request. Dash only
// fires on the frame its button goes down.
func PlayerIntent(input *components.InputData) character.Intent {
	return character.Intent{
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
		Up:    input.Current[cfg.ActionMoveUp],
		Down:  input.Current[cfg.ActionMoveDown],
		Dash:  GetAction(input, cfg.ActionDash).JustPressed,
	}
}
