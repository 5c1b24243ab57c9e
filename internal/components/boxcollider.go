package components

import (
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider",
		func(props map[string]any) engine.Component {
			c := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
			if s, ok := props["size"].([]any); ok && len(s) == 3 {
				c.Size = vec3FromAny(s)
			}
			if o, ok := props["offset"].([]any); ok && len(o) == 3 {
				c.Offset = vec3FromAny(o)
			}
			if t, ok := props["isTrigger"].(bool); ok {
				c.IsTrigger = t
			}
			return c
		},
		func(c engine.Component) map[string]any {
			b, ok := c.(*BoxCollider)
			if !ok {
				return nil
			}
			return map[string]any{
				"size":      []any{float64(b.Size.X), float64(b.Size.Y), float64(b.Size.Z)},
				"offset":    []any{float64(b.Offset.X), float64(b.Offset.Y), float64(b.Offset.Z)},
				"isTrigger": b.IsTrigger,
			}
		})
}

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	ws := g.WorldScale()
	return rl.Vector3{
		X: b.Size.X * ws.X,
		Y: b.Size.Y * ws.Y,
		Z: b.Size.Z * ws.Z,
	}
}

func vec3FromAny(v []any) rl.Vector3 {
	var out rl.Vector3
	if x, ok := v[0].(float64); ok {
		out.X = float32(x)
	}
	if y, ok := v[1].(float64); ok {
		out.Y = float32(y)
	}
	if z, ok := v[2].(float64); ok {
		out.Z = float32(z)
	}
	return out
}
