package world

import (
	"testing"

	"handlab/internal/components"
	"handlab/internal/engine"
	"handlab/internal/input"
	"handlab/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const dt = float32(1.0 / 90.0)

type grabRig struct {
	world *World
	hand  *interact.Hand
	src   *input.ScriptedSource
	ball  *engine.GameObject
	prop  *components.Prop
	rb    *components.Rigidbody
}

// newGrabRig builds a minimal playable setup: a dynamic ball on the floor and
// a scripted hand with a trigger volume around the palm.
func newGrabRig() *grabRig {
	w := New()

	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{Y: 0.3}
	ball.AddComponent(components.NewSphereCollider(0.3))
	rb := components.NewRigidbody()
	rb.Bounciness = 0
	ball.AddComponent(rb)
	prop := components.NewProp()
	ball.AddComponent(prop)
	w.SpawnObject(ball)

	src := input.NewScriptedSource()
	hand := interact.NewHand(input.Right, src)
	hand.World = w

	handObj := engine.NewGameObject("RightHand")
	palm := components.NewSphereCollider(1.0)
	palm.IsTrigger = true
	handObj.AddComponent(palm)
	handObj.AddComponent(hand)
	w.SpawnObject(handObj)

	w.Scene.Start()

	return &grabRig{world: w, hand: hand, src: src, ball: ball, prop: prop, rb: rb}
}

// palmPose returns the controller pose that, after the grip offset, lands the
// palm at the given point.
func palmPose(at rl.Vector3) input.Pose {
	return input.Pose{Position: rl.Vector3{X: at.X, Y: at.Y, Z: at.Z - interact.GripOffset}}
}

func (r *grabRig) tick(n int) {
	for i := 0; i < n; i++ {
		r.world.Update(dt)
	}
}

func TestWorldGrabCarryThrow(t *testing.T) {
	r := newGrabRig()

	// Reach for the ball with the grip squeezed.
	r.src.SetPose(input.Right, palmPose(rl.Vector3{Y: 0.3}))
	r.src.SetGrip(input.Right, 0.9)
	r.tick(3)

	if r.hand.Held() != interact.Grabbable(r.prop) {
		t.Fatal("Expected the hand to be holding the ball")
	}
	if r.ball.Parent == nil {
		t.Error("Held props ride the hand as children")
	}
	if !r.rb.IsKinematic {
		t.Error("Held props leave the simulation")
	}
	foundKinematic := false
	for _, obj := range r.world.Physics.Kinematics {
		if obj == r.ball {
			foundKinematic = true
		}
	}
	if !foundKinematic {
		t.Error("Held props should be on the kinematic list")
	}

	// Carry it up; the ball follows the palm instead of falling.
	r.src.SetPose(input.Right, palmPose(rl.Vector3{Y: 2}))
	r.tick(2)
	pos := r.ball.WorldPosition()
	if pos.Y < 1.9 || pos.Y > 2.1 {
		t.Errorf("Expected the carried ball at Y~2, got %v", pos.Y)
	}

	// Yank sideways and let go in the same tick: the release inherits the
	// hand's velocity, so the ball flies.
	r.src.SetPose(input.Right, palmPose(rl.Vector3{X: 1, Y: 2}))
	r.src.SetGrip(input.Right, 0)
	r.tick(1)

	if r.hand.Held() != nil {
		t.Fatal("Expected the release to go through")
	}
	if r.ball.Parent != nil {
		t.Error("Released props detach from the hand")
	}
	if r.rb.IsKinematic {
		t.Error("Released props rejoin the simulation")
	}
	if r.rb.Velocity.X <= 0 {
		t.Errorf("Expected a throw along +X, got velocity %v", r.rb.Velocity)
	}
}

func TestWorldDestroyHeldObject(t *testing.T) {
	r := newGrabRig()

	r.src.SetPose(input.Right, palmPose(rl.Vector3{Y: 0.3}))
	r.src.SetGrip(input.Right, 0.9)
	r.tick(3)
	if r.hand.Held() == nil {
		t.Fatal("Expected a hold before destroying")
	}

	r.world.Destroy(r.ball)
	if r.ball.Alive() {
		t.Error("Destroy marks objects dead immediately")
	}

	r.tick(1)
	if r.hand.Held() != nil {
		t.Error("The hand should drop a destroyed object")
	}
	if r.world.Scene.FindByName("Ball") != nil {
		t.Error("Destroyed objects leave the scene at end of tick")
	}
	if len(r.world.Physics.Kinematics) != 0 {
		t.Error("Destroyed objects leave the physics lists")
	}
}

func TestWorldTriggerExitEmptiesProximity(t *testing.T) {
	r := newGrabRig()

	// Hover near the ball without squeezing, then walk away.
	r.src.SetPose(input.Right, palmPose(rl.Vector3{Y: 0.3}))
	r.tick(2)
	if r.hand.Proximity().Len() != 1 {
		t.Fatalf("Expected the ball in proximity, got %d entries", r.hand.Proximity().Len())
	}

	r.src.SetPose(input.Right, palmPose(rl.Vector3{X: 10, Y: 0.3}))
	r.tick(2)
	if r.hand.Proximity().Len() != 0 {
		t.Error("Leaving the trigger volume should empty proximity")
	}
}

func TestWorldSetKinematicWithoutRigidbody(t *testing.T) {
	w := New()
	obj := engine.NewGameObject("Decor")
	w.SpawnObject(obj)

	// Must not panic or reclassify anything.
	w.SetKinematic(obj, true)
	if len(w.Physics.Kinematics) != 0 {
		t.Error("Objects without a rigidbody stay where they are")
	}
}

func TestWorldProbeFindsScene(t *testing.T) {
	w := New()
	wall := engine.NewGameObject("Wall")
	wall.Transform.Position = rl.Vector3{Z: -5}
	wall.AddComponent(components.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2}))
	w.SpawnObject(wall)

	hit, ok := w.Probe(rl.Vector3{}, rl.Vector3{Z: -1}, 0.5, 100, nil)
	if !ok || hit.GameObject != wall {
		t.Fatal("Expected the probe to find the wall")
	}
	if hit.Distance <= 0 {
		t.Error("Hit distance should be positive")
	}
}
