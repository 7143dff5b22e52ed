package gamemath

// CameraOffset returns the world position of the screen's top-left corner
// when the screen is centred on target.
func CameraOffset(target Vec2, screenW, screenH int) Vec2 {
	return target.Sub(Vec2{X: float64(screenW) / 2, Y: float64(screenH) / 2})
}

// Follow moves current toward target by the smoothing fraction (0..1].
// A smoothing of 1, or an unset 0, snaps straight to target.
func Follow(current, target Vec2, smoothing float64) Vec2 {
	if smoothing >= 1 || smoothing <= 0 {
		return target
	}
	return current.Add(target.Sub(current).Scale(smoothing))
}

// ClampOffset keeps a camera offset inside a level of levelW x levelH.
// A level narrower than the screen is centred on that axis.
func ClampOffset(offset Vec2, screenW, screenH, levelW, levelH int) Vec2 {
	offset.X = clampAxis(offset.X, screenW, levelW)
	offset.Y = clampAxis(offset.Y, screenH, levelH)
	return offset
}

func clampAxis(v float64, screen, level int) float64 {
	if level <= screen {
		return float64(level-screen) / 2
	}
	maxV := float64(level - screen)
	if v < 0 {
		return 0
	}
	if v > maxV {
		return maxV
	}
	return v
}
