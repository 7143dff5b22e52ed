package character

import "github.com/automoto/overworld/shared/gamemath"

// Kind identifies a state.
type Kind int

const (
	Idle Kind = iota
	Run
	Dash
)

var kindNames = [...]string{Idle: "Idle", Run: "Run", Dash: "Dash"}

// clip labels, joined with a facing to name a clip ("run_left").
var kindLabels = [...]string{Idle: "idle", Run: "run", Dash: "attack"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Label is the clip prefix the state animates with.
func (k Kind) Label() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return kindLabels[Idle]
	}
	return kindLabels[k]
}

// State is the current discrete state. Only Dash uses Timer.
type State struct {
	Kind  Kind
	Timer float64
}

// Enter builds a fresh state of kind for b. Every state starts its clip from
// the first frame; Dash arms its countdown.
func Enter(kind Kind, b *Body) State {
	b.Anim.Restart()
	s := State{Kind: kind}
	if kind == Dash {
		s.Timer = b.Tuning.DashDuration
	}
	return s
}

// Next decides whether s hands over to another state this frame. It only
// reads b and in.
func (s State) Next(b *Body, in Intent) (Kind, bool) {
	speed := b.Vel.Magnitude()
	switch s.Kind {
	case Idle:
		if in.Dash {
			return Dash, true
		}
		if speed > b.Tuning.RunThreshold {
			return Run, true
		}
	case Run:
		if in.Dash {
			return Dash, true
		}
		if speed < b.Tuning.RunThreshold {
			return Idle, true
		}
	case Dash:
		if s.Timer < 0 {
			return Idle, true
		}
	}
	return s.Kind, false
}

// Update runs one frame of s against b.
func (s *State) Update(dt float64, b *Body, in Intent, clips Clips, obstacles Obstacles) {
	switch s.Kind {
	case Idle, Run:
		b.Animate(s.Kind.Label(), b.Tuning.FrameRate*dt, true, clips)
		b.Acc = in.Acceleration(b.Tuning.Force)
		b.Integrate(dt, b.Tuning.Friction, obstacles)
	case Dash:
		s.Timer -= dt
		b.Animate(s.Kind.Label(), b.Tuning.FrameRate*dt, false, clips)
		b.Vel = gamemath.Vec2{}
	}
}
