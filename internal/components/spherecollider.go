package components

import (
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("SphereCollider",
		func(props map[string]any) engine.Component {
			c := NewSphereCollider(0.5)
			if r, ok := props["radius"].(float64); ok {
				c.Radius = float32(r)
			}
			if t, ok := props["isTrigger"].(bool); ok {
				c.IsTrigger = t
			}
			return c
		},
		func(c engine.Component) map[string]any {
			s, ok := c.(*SphereCollider)
			if !ok {
				return nil
			}
			return map[string]any{
				"radius":    float64(s.Radius),
				"isTrigger": s.IsTrigger,
			}
		})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3

	// IsTrigger colliders never block probes or rigid bodies; they only
	// report overlaps to TriggerHandler components on the same object.
	IsTrigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}
