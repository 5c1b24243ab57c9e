package components

import (
	"handlab/internal/engine"
	"handlab/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Prop",
		func(props map[string]any) engine.Component {
			p := NewProp()
			if m, ok := props["mode"].(string); ok {
				p.InputMode = interact.ModeFromString(m)
			}
			if o, ok := props["holdOffset"].([]any); ok && len(o) == 3 {
				p.HoldOffset = vec3FromAny(o)
			}
			return p
		},
		func(c engine.Component) map[string]any {
			p, ok := c.(*Prop)
			if !ok {
				return nil
			}
			return map[string]any{
				"mode": p.InputMode.String(),
				"holdOffset": []any{
					float64(p.HoldOffset.X), float64(p.HoldOffset.Y), float64(p.HoldOffset.Z),
				},
			}
		})
}

// Prop is a generic holdable item. While held it rides the hand as a child
// object; on release it detaches with the hand's current velocity, so a fast
// release is a throw.
type Prop struct {
	interact.Holdable

	// HoldOffset is the local position relative to the hand while held.
	HoldOffset rl.Vector3
}

func NewProp() *Prop {
	p := &Prop{}
	p.InputMode = interact.ModeGrip
	return p
}

func (p *Prop) Start() {
	p.OnGrabbed.AddListener(p.attach)
	p.OnReleased.AddListener(p.detach)
}

func (p *Prop) attach(h *interact.Hand) {
	g := p.GetGameObject()
	hand := h.GetGameObject()
	if g == nil || hand == nil {
		return
	}

	hand.AddChild(g)
	g.Transform.Position = p.HoldOffset
	g.Transform.Rotation = rl.Vector3{}

	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		rb.Velocity = rl.Vector3{}
		rb.Wake()
	}
	if world := p.world(); world != nil {
		world.SetKinematic(g, true)
	}
}

func (p *Prop) detach(h *interact.Hand) {
	g := p.GetGameObject()
	hand := h.GetGameObject()
	if g == nil {
		return
	}

	// Convert back to world coordinates before leaving the hand
	worldPos := g.WorldPosition()
	worldRot := g.WorldRotation()
	if hand != nil {
		hand.RemoveChild(g)
	}
	g.Transform.Position = worldPos
	g.Transform.Rotation = worldRot

	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		rb.Velocity = h.Velocity()
		rb.Wake()
	}
	if world := p.world(); world != nil {
		world.SetKinematic(g, false)
	}
}

func (p *Prop) world() engine.WorldAccess {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil {
		return nil
	}
	return g.Scene.World
}
