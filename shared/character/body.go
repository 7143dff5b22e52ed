package character

import (
	"github.com/automoto/overworld/shared/animation"
	"github.com/automoto/overworld/shared/collision"
	"github.com/automoto/overworld/shared/gamemath"
)

// Body is a character's kinematic, geometric and animation state.
//
// Pos is continuous; Hitbox is centred on Pos rounded to the pixel and Rect,
// the render rectangle, is centred on Hitbox.
type Body struct {
	Pos gamemath.Vec2
	Vel gamemath.Vec2
	Acc gamemath.Vec2

	Rect      gamemath.Rect
	Hitbox    gamemath.Rect
	OldHitbox gamemath.Rect

	Facing gamemath.Facing
	State  State
	Anim   animation.Progress
	Tuning Tuning
}

// New places a body whose frameW x frameH render rect has its top-left at
// (x, y). It starts Idle, facing down.
func New(x, y, frameW, frameH int, tuning Tuning) Body {
	b := Body{
		Rect:   gamemath.NewRect(x, y, frameW, frameH),
		Facing: gamemath.FacingDown,
		Tuning: tuning,
	}
	b.Hitbox = b.Rect.Inflate(
		-int(float64(frameW)*tuning.HitboxInset),
		-int(float64(frameH)*tuning.HitboxInset),
	)
	b.Pos = b.Hitbox.Center()
	b.Rect.SetCenterX(b.Hitbox.CenterX())
	b.Rect.SetCenterY(b.Hitbox.CenterY())
	b.OldHitbox = b.Hitbox
	b.State = Enter(Idle, &b)
	return b
}

// Tick advances the body by one frame: face the current velocity, switch
// state if the current one says so, then update whichever state is current.
func (b *Body) Tick(dt float64, in Intent, clips Clips, obstacles Obstacles) {
	b.OldHitbox = b.Hitbox
	b.faceVelocity()
	if kind, ok := b.State.Next(b, in); ok {
		b.State = Enter(kind, b)
	}
	b.State.Update(dt, b, in, clips, obstacles)
}

// ClipName joins a state label and a facing into a clip name.
func ClipName(label string, f gamemath.Facing) string {
	return label + "_" + f.String()
}

// Animate plays the label clip for the current facing.
func (b *Body) Animate(label string, step float64, loop bool, clips Clips) {
	clip := ClipName(label, b.Facing)
	b.Anim.Advance(clip, step, clips.FrameCount(clip), loop)
}

// Integrate moves the body along x and then y, resolving collisions after
// each axis, and finally caps the speed.
func (b *Body) Integrate(dt, friction float64, obstacles Obstacles) {
	b.Pos.X, b.Vel.X, b.Acc.X = gamemath.IntegrateAxis(b.Pos.X, b.Vel.X, b.Acc.X, friction, dt)
	b.Hitbox.SetCenterX(gamemath.Round(b.Pos.X))
	b.Rect.SetCenterX(b.Hitbox.CenterX())
	b.resolve(collision.AxisX, obstacles)

	b.Pos.Y, b.Vel.Y, b.Acc.Y = gamemath.IntegrateAxis(b.Pos.Y, b.Vel.Y, b.Acc.Y, friction, dt)
	b.Hitbox.SetCenterY(gamemath.Round(b.Pos.Y))
	b.Rect.SetCenterY(b.Hitbox.CenterY())
	b.resolve(collision.AxisY, obstacles)

	b.Vel = gamemath.ClampSpeed(b.Vel, b.Tuning.MaxSpeed)
}

func (b *Body) resolve(axis collision.Axis, obstacles Obstacles) {
	if obstacles == nil {
		return
	}
	near := obstacles.Near(b.Hitbox)
	if len(near) == 0 {
		return
	}
	switch axis {
	case collision.AxisX:
		if collision.ResolveAxis(&b.Hitbox, b.Vel.X, axis, near) {
			b.Rect.SetCenterX(b.Hitbox.CenterX())
			b.Pos.X = float64(b.Hitbox.CenterX())
		}
	case collision.AxisY:
		if collision.ResolveAxis(&b.Hitbox, b.Vel.Y, axis, near) {
			b.Rect.SetCenterY(b.Hitbox.CenterY())
			b.Pos.Y = float64(b.Hitbox.CenterY())
		}
	}
}

// faceVelocity keeps the last facing while the body is at rest.
func (b *Body) faceVelocity() {
	if b.Vel.IsZero() {
		return
	}
	b.Facing = gamemath.FacingOf(b.Vel)
}
