package world

import (
	"handlab/internal/components"
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 60.0

// Draw renders the floor and every ShapeRenderer in the scene. Must be
// called inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawPlane(rl.Vector3{Y: w.Physics.FloorY}, rl.Vector2{X: FloorSize, Y: FloorSize}, rl.LightGray)

	// Every object, children included, is registered in the scene's flat
	// list - no recursion needed here.
	for _, obj := range w.Scene.GameObjects {
		if !obj.Alive() || !obj.Active {
			continue
		}
		if r := engine.GetComponent[*components.ShapeRenderer](obj); r != nil {
			r.Draw()
		}
	}
}
