// grabsim drives the grab state machine headlessly with a scripted input
// source: the hand flies to a prop, squeezes, carries it, and lets go at
// speed. Useful for soak-testing hold/release behavior without a window.
package main

import (
	"flag"
	"log"

	"handlab/internal/components"
	"handlab/internal/engine"
	"handlab/internal/input"
	"handlab/internal/interact"
	"handlab/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tickRate = 90.0

func main() {
	seconds := flag.Float64("seconds", 4, "simulated duration")
	flag.Parse()

	w := world.New()

	table := engine.NewGameObject("Table")
	table.Transform.Position = rl.Vector3{X: 0, Y: 0.5, Z: 0}
	table.AddComponent(components.NewBoxCollider(rl.Vector3{X: 4, Y: 1, Z: 2}))
	w.SpawnObject(table)

	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{X: 0, Y: 1.3, Z: 0}
	ball.AddComponent(components.NewSphereCollider(0.3))
	ball.AddComponent(components.NewRigidbody())
	prop := components.NewProp()
	ball.AddComponent(prop)
	w.SpawnObject(ball)

	src := input.NewScriptedSource()

	handObj := engine.NewGameObject("Hand_right")
	hand := interact.NewHand(input.Right, src)
	hand.World = w
	handObj.AddComponent(hand)
	reach := components.NewSphereCollider(1.0)
	reach.IsTrigger = true
	handObj.AddComponent(reach)
	w.SpawnObject(handObj)

	prop.OnGrabbed.AddListener(func(h *interact.Hand) {
		log.Printf("ball grabbed by %s hand", h.Side)
	})
	prop.OnReleased.AddListener(func(h *interact.Hand) {
		log.Printf("ball released by %s hand (velocity %.1f)", h.Side,
			rl.Vector3Length(h.Velocity()))
	})

	w.Scene.Start()

	dt := float32(1.0 / tickRate)
	ticks := int(*seconds * tickRate)
	for i := 0; i < ticks; i++ {
		t := float32(i) * dt
		scriptHand(src, t)
		w.Update(dt)
	}

	if held := hand.Held(); held != nil {
		log.Printf("end of run: still holding %s", held.GetGameObject().Name)
	} else {
		log.Printf("end of run: hand idle, ball at %.2f %.2f %.2f",
			ball.Transform.Position.X, ball.Transform.Position.Y, ball.Transform.Position.Z)
	}
}

// scriptHand moves the tracked pose through approach, grab, carry, throw.
// Pose Z sits at -2 so the palm, after the grip offset, lands on the ball.
func scriptHand(src *input.ScriptedSource, t float32) {
	switch {
	case t < 1.0:
		// Fly in from the side toward the ball
		x := 5 - 5*t
		src.SetPose(input.Right, input.Pose{Position: rl.Vector3{X: x, Y: 1.3, Z: -2}})
		src.SetGrip(input.Right, 0)
	case t < 1.2:
		// Squeeze
		src.SetGrip(input.Right, 0.9)
	case t < 2.5:
		// Carry upward and sideways while gripping
		p := (t - 1.2) / 1.3
		src.SetPose(input.Right, input.Pose{
			Position: rl.Vector3{X: -4 * p, Y: 1.3 + 2*p, Z: -2},
		})
	default:
		// Open the hand mid-swing
		src.SetGrip(input.Right, 0)
	}
}
