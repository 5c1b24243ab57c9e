package components

import (
	"testing"

	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func pistolInScene(world *stubWorld) (*engine.GameObject, *Pistol) {
	scene := engine.NewScene("Test")
	scene.World = world

	obj := engine.NewGameObject("Pistol")
	p := NewPistol()
	obj.AddComponent(p)
	scene.AddGameObject(obj)
	obj.Start()
	return obj, p
}

func TestPistolFiresWhileHeld(t *testing.T) {
	world := newStubWorld()
	_, p := pistolInScene(world)

	h := handAt(rl.Vector3{})
	if !p.TryGrab(h) {
		t.Fatal("Expected grab")
	}

	// One second of holding at the default cooldown yields several shots,
	// spaced by the cooldown rather than one per tick.
	ticks := 90
	for i := 0; i < ticks; i++ {
		p.Update(dt)
	}

	wantMax := int(float32(ticks)*dt/p.Cooldown) + 1
	if len(world.spawned) == 0 {
		t.Fatal("Expected shots while held")
	}
	if len(world.spawned) > wantMax {
		t.Errorf("Cooldown not respected: %d shots in %d ticks", len(world.spawned), ticks)
	}
}

func TestPistolShotCarriesVelocity(t *testing.T) {
	world := newStubWorld()
	_, p := pistolInScene(world)
	p.Cooldown = 0

	h := handAt(rl.Vector3{})
	p.TryGrab(h)
	p.Update(dt)

	if len(world.spawned) == 0 {
		t.Fatal("Expected a shot")
	}
	shot := world.spawned[0]
	rb := engine.GetComponent[*Rigidbody](shot)
	if rb == nil {
		t.Fatal("Shots need a rigidbody")
	}
	// Zero rotation fires along -Z at muzzle speed.
	if !vecEq(rb.Velocity, rl.Vector3{Z: -p.MuzzleSpeed}) {
		t.Errorf("Expected muzzle velocity (0,0,%v), got %v", -p.MuzzleSpeed, rb.Velocity)
	}
	if engine.GetComponent[*SphereCollider](shot) == nil {
		t.Error("Shots need a collider")
	}
}

func TestPistolIdleWhenUnheld(t *testing.T) {
	world := newStubWorld()
	_, p := pistolInScene(world)

	for i := 0; i < 90; i++ {
		p.Update(dt)
	}
	if len(world.spawned) != 0 {
		t.Error("An unheld pistol must not fire")
	}
}

func TestPistolRidesHand(t *testing.T) {
	world := newStubWorld()
	obj, p := pistolInScene(world)

	h := handAt(rl.Vector3{X: 2})
	p.TryGrab(h)
	if obj.Parent != h.GetGameObject() {
		t.Error("A held pistol rides the hand")
	}

	p.TryRelease(h)
	if obj.Parent != nil {
		t.Error("A released pistol leaves the hand")
	}
	if !vecEq(obj.Transform.Position, rl.Vector3{X: 2}) {
		t.Errorf("A released pistol keeps its world position, got %v", obj.Transform.Position)
	}
}
