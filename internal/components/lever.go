package components

import (
	"handlab/internal/engine"
	"handlab/internal/interact"
)

func init() {
	engine.RegisterComponent("Lever",
		func(props map[string]any) engine.Component {
			l := NewLever()
			if v, ok := props["minAngle"].(float64); ok {
				l.MinAngle = float32(v)
			}
			if v, ok := props["maxAngle"].(float64); ok {
				l.MaxAngle = float32(v)
			}
			if v, ok := props["target"].(string); ok {
				l.TargetName = v
			}
			return l
		},
		func(c engine.Component) map[string]any {
			l, ok := c.(*Lever)
			if !ok {
				return nil
			}
			return map[string]any{
				"minAngle": float64(l.MinAngle),
				"maxAngle": float64(l.MaxAngle),
				"target":   l.TargetName,
			}
		})
}

// Lever is a grip-held switch. While a hand holds it, its deflection tracks
// the hand's height relative to the pivot; crossing the midpoint fires
// OnToggle. The lever itself never leaves its pivot - grabbing it grabs the
// mechanism, not the object.
type Lever struct {
	interact.Holdable

	MinAngle float32 // degrees, lever at rest
	MaxAngle float32 // degrees, lever fully pulled
	Angle    float32

	// OnToggle fires with true when the lever crosses past its midpoint,
	// false when it crosses back.
	OnToggle engine.EventWithArg[bool]

	// TargetName optionally names an object whose Active flag follows the
	// lever state (a lamp, a door). Resolved lazily on first toggle.
	TargetName string

	target engine.GameObjectRef
	on     bool
}

func NewLever() *Lever {
	l := &Lever{MinAngle: -40, MaxAngle: 40}
	l.InputMode = interact.ModeGrip
	return l
}

func (l *Lever) Start() {
	l.Angle = l.MinAngle
}

func (l *Lever) Update(deltaTime float32) {
	h := l.HeldBy()
	if h == nil {
		return
	}
	g := l.GetGameObject()
	hand := h.GetGameObject()
	if g == nil || hand == nil {
		return
	}

	// Hand height above the pivot maps linearly onto the deflection range.
	delta := hand.WorldPosition().Y - g.WorldPosition().Y
	span := l.MaxAngle - l.MinAngle
	t := (delta + 1) / 2 // one unit below pivot = rest, one above = full pull
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	l.Angle = l.MinAngle + span*t
	g.Transform.Rotation.X = l.Angle

	mid := l.MinAngle + span/2
	if !l.on && l.Angle > mid {
		l.on = true
		l.applyToggle(true)
	} else if l.on && l.Angle <= mid {
		l.on = false
		l.applyToggle(false)
	}
}

func (l *Lever) applyToggle(on bool) {
	l.OnToggle.Invoke(on)

	g := l.GetGameObject()
	if l.TargetName == "" || g == nil || g.Scene == nil {
		return
	}
	if !l.target.IsValid() {
		l.target.Set(g.Scene.FindByName(l.TargetName))
	}
	if t := l.target.Get(g.Scene); t != nil {
		t.Active = on
	}
}

// IsOn reports whether the lever is past its midpoint.
func (l *Lever) IsOn() bool { return l.on }
