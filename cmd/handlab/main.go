package main

import (
	"fmt"
	"log"
	"os"

	"handlab/internal/components"
	"handlab/internal/engine"
	"handlab/internal/input"
	"handlab/internal/interact"
	"handlab/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	scenePath := "assets/scenes/lab.json"
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "handlab")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	w := world.New()
	if err := world.LoadScene(w, scenePath); err != nil {
		log.Fatalf("load scene: %v", err)
	}

	// Gamepad gives continuous grip pressure; keyboard/mouse is the digital
	// fallback with the same semantics.
	var src input.Source
	if rl.IsGamepadAvailable(0) {
		log.Println("input: gamepad detected, using analog actuation")
		src = input.NewGamepadSource(0)
	} else {
		log.Println("input: no gamepad, using keyboard/mouse fallback")
		src = input.NewKeyboardMouseSource()
	}

	rig, left, right := createRig(w, src)

	w.Scene.Start()

	for !rl.WindowShouldClose() {
		deltaTime := rl.GetFrameTime()
		w.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(26, 28, 36, 255))

		rl.BeginMode3D(rig.Camera())
		w.Draw()
		rl.EndMode3D()

		drawHUD(left, right)
		rl.EndDrawing()
	}
}

// createRig builds the desktop head rig with a hand parented to each side.
// Without tracking hardware the hands stay at their rig offsets and follow
// head movement; with tracked poses they adopt controller positions instead.
func createRig(w *world.World, src input.Source) (*components.HeadRig, *interact.Hand, *interact.Hand) {
	rigObj := engine.NewGameObject("Rig")
	rigObj.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: 8}
	rig := components.NewHeadRig()
	rigObj.AddComponent(rig)
	w.SpawnObject(rigObj)

	left := createHand(w, rigObj, rig, src, input.Left, rl.Vector3{X: -0.8, Y: 1.2, Z: -1.5})
	right := createHand(w, rigObj, rig, src, input.Right, rl.Vector3{X: 0.8, Y: 1.2, Z: -1.5})
	return rig, left, right
}

func createHand(w *world.World, rigObj *engine.GameObject, rig *components.HeadRig, src input.Source, side input.Side, offset rl.Vector3) *interact.Hand {
	obj := engine.NewGameObject("Hand_" + side.String())
	obj.Transform.Position = offset

	hand := interact.NewHand(side, src)
	hand.World = w
	hand.Viewpoint = rig
	obj.AddComponent(hand)

	// Reach volume around the palm
	reach := components.NewSphereCollider(1.2)
	reach.IsTrigger = true
	obj.AddComponent(reach)

	obj.AddComponent(components.NewShapeRenderer(
		components.ShapeSphere, rl.Vector3{}, 0.25, rl.SkyBlue))

	rigObj.AddChild(obj)
	w.SpawnObject(obj)
	return hand
}

func drawHUD(left, right *interact.Hand) {
	gui.Panel(rl.NewRectangle(10, 10, 260, 80), "hands")
	gui.Label(rl.NewRectangle(20, 35, 240, 20), handLine(left))
	gui.Label(rl.NewRectangle(20, 58, 240, 20), handLine(right))
	rl.DrawFPS(1180, 10)
}

func handLine(h *interact.Hand) string {
	held := "idle"
	if g := h.Held(); g != nil {
		held = "holding " + g.GetGameObject().Name
	}
	return fmt.Sprintf("%s: %s (near %d)", h.Side, held, h.Proximity().Len())
}
