package components

import (
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
)

func init() {
	engine.RegisterComponent("ShapeRenderer",
		func(props map[string]any) engine.Component {
			r := NewShapeRenderer(ShapeBox, rl.Vector3{X: 1, Y: 1, Z: 1}, 0.5, rl.Gray)
			if k, ok := props["shape"].(string); ok && k == "sphere" {
				r.Kind = ShapeSphere
			}
			if s, ok := props["size"].([]any); ok && len(s) == 3 {
				r.Size = vec3FromAny(s)
			}
			if v, ok := props["radius"].(float64); ok {
				r.Radius = float32(v)
			}
			if c, ok := props["color"].(string); ok {
				r.Color = colorByName(c)
			}
			return r
		},
		func(c engine.Component) map[string]any {
			r, ok := c.(*ShapeRenderer)
			if !ok {
				return nil
			}
			kind := "box"
			if r.Kind == ShapeSphere {
				kind = "sphere"
			}
			return map[string]any{
				"shape":  kind,
				"size":   []any{float64(r.Size.X), float64(r.Size.Y), float64(r.Size.Z)},
				"radius": float64(r.Radius),
				"color":  colorName(r.Color),
			}
		})
}

// ShapeRenderer draws a primitive at the object's world transform. It keeps
// no GPU state, so scenes can be built and torn down headlessly; Draw is
// only ever called inside an open 3D mode.
type ShapeRenderer struct {
	engine.BaseComponent
	Kind   Shape
	Size   rl.Vector3 // box dimensions
	Radius float32    // sphere radius
	Color  rl.Color
}

func NewShapeRenderer(kind Shape, size rl.Vector3, radius float32, color rl.Color) *ShapeRenderer {
	return &ShapeRenderer{Kind: kind, Size: size, Radius: radius, Color: color}
}

func (s *ShapeRenderer) Draw() {
	g := s.GetGameObject()
	if g == nil || !g.Active || !g.Alive() {
		return
	}
	pos := g.WorldPosition()
	switch s.Kind {
	case ShapeSphere:
		rl.DrawSphere(pos, s.Radius, s.Color)
		rl.DrawSphereWires(pos, s.Radius, 8, 8, rl.Black)
	default:
		ws := g.WorldScale()
		rl.DrawCube(pos, s.Size.X*ws.X, s.Size.Y*ws.Y, s.Size.Z*ws.Z, s.Color)
		rl.DrawCubeWires(pos, s.Size.X*ws.X, s.Size.Y*ws.Y, s.Size.Z*ws.Z, rl.Black)
	}
}

var namedColors = map[string]rl.Color{
	"red":    rl.Red,
	"blue":   rl.Blue,
	"green":  rl.Green,
	"purple": rl.Purple,
	"orange": rl.Orange,
	"yellow": rl.Yellow,
	"brown":  rl.Brown,
	"gray":   rl.Gray,
	"white":  rl.White,
}

func colorByName(name string) rl.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return rl.Gray
}

func colorName(c rl.Color) string {
	for name, col := range namedColors {
		if col == c {
			return name
		}
	}
	return "gray"
}
