package components

import (
	"testing"

	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// stubWorld records WorldAccess calls so holdables can be tested without a
// full physics world.
type stubWorld struct {
	spawned   []*engine.GameObject
	kinematic map[*engine.GameObject]bool
}

func newStubWorld() *stubWorld {
	return &stubWorld{kinematic: make(map[*engine.GameObject]bool)}
}

func (s *stubWorld) Probe(origin, direction rl.Vector3, radius, maxDistance float32, excluding *engine.GameObject) (engine.ProbeHit, bool) {
	return engine.ProbeHit{}, false
}

func (s *stubWorld) GetCollidableObjects() []*engine.GameObject { return nil }

func (s *stubWorld) SpawnObject(g *engine.GameObject) {
	s.spawned = append(s.spawned, g)
}

func (s *stubWorld) Destroy(g *engine.GameObject) { g.MarkDestroyed() }

func (s *stubWorld) SetKinematic(g *engine.GameObject, kinematic bool) {
	s.kinematic[g] = kinematic
}

func propInScene(world *stubWorld) (*engine.GameObject, *Prop) {
	scene := engine.NewScene("Test")
	scene.World = world

	obj := engine.NewGameObject("Cup")
	p := NewProp()
	obj.AddComponent(p)
	obj.AddComponent(NewRigidbody())
	scene.AddGameObject(obj)
	obj.Start()
	return obj, p
}

func TestPropAttachesToHand(t *testing.T) {
	world := newStubWorld()
	obj, p := propInScene(world)
	p.HoldOffset = rl.Vector3{Z: -0.2}

	h := handAt(rl.Vector3{X: 1, Y: 2})
	if !p.TryGrab(h) {
		t.Fatal("Expected grab")
	}

	if obj.Parent != h.GetGameObject() {
		t.Error("Held props become children of the hand")
	}
	if !vecEq(obj.Transform.Position, p.HoldOffset) {
		t.Errorf("Held props sit at the hold offset, got %v", obj.Transform.Position)
	}
	if !world.kinematic[obj] {
		t.Error("Grabbing should switch the prop kinematic")
	}
	rb := engine.GetComponent[*Rigidbody](obj)
	if rb.Velocity != rl.Vector3Zero() {
		t.Error("Grabbing should zero the prop's velocity")
	}
}

func TestPropDetachKeepsWorldPosition(t *testing.T) {
	world := newStubWorld()
	obj, p := propInScene(world)
	p.HoldOffset = rl.Vector3{Z: -0.5}

	h := handAt(rl.Vector3{X: 1, Y: 2, Z: 3})
	p.TryGrab(h)
	if !p.TryRelease(h) {
		t.Fatal("Expected release")
	}

	if obj.Parent != nil {
		t.Error("Released props leave the hand")
	}
	if !vecEq(obj.Transform.Position, rl.Vector3{X: 1, Y: 2, Z: 2.5}) {
		t.Errorf("Released props keep their world position, got %v", obj.Transform.Position)
	}
	if world.kinematic[obj] {
		t.Error("Releasing should return the prop to the simulation")
	}
}

func TestPropSurvivesWithoutWorld(t *testing.T) {
	obj := engine.NewGameObject("Cup")
	p := NewProp()
	obj.AddComponent(p)
	obj.Start()

	h := handAt(rl.Vector3{})
	// No scene, no world. Attach and detach must not panic.
	if !p.TryGrab(h) {
		t.Fatal("Expected grab")
	}
	if !p.TryRelease(h) {
		t.Fatal("Expected release")
	}
	if obj.Parent != nil {
		t.Error("Prop should detach cleanly without a world")
	}
}

func vecEq(a, b rl.Vector3) bool {
	const eps = 1e-4
	d := rl.Vector3Subtract(a, b)
	return d.X < eps && d.X > -eps && d.Y < eps && d.Y > -eps && d.Z < eps && d.Z > -eps
}
