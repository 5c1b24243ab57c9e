package world

import (
	"log"

	"handlab/internal/components"
	"handlab/internal/engine"
	"handlab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene and the physics world and runs the per-tick pipeline:
// scene component updates, rigid body integration, trigger dispatch, then
// deferred destroys. It implements engine.WorldAccess for components.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World

	pendingDestroy []*engine.GameObject
}

func New() *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewWorld(),
	}
	w.Scene.World = w
	return w
}

// Update advances one simulation tick. Single-threaded and synchronous:
// trigger callbacks fired by the physics pass run before this returns, and
// destroys requested anywhere in the tick apply at the end of it.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Update(deltaTime)
	w.flushDestroyed()
}

// SpawnObject adds an object to the scene and the physics world.
// Implements engine.WorldAccess.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
}

// Destroy marks an object (and its children) dead immediately, so every
// liveness check fails from this tick on, and removes it from the scene and
// physics at the end of the tick. Implements engine.WorldAccess.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || !g.Alive() {
		return
	}
	g.MarkDestroyed()
	w.pendingDestroy = append(w.pendingDestroy, g)
}

func (w *World) flushDestroyed() {
	for _, g := range w.pendingDestroy {
		w.Physics.RemoveObject(g)
		w.Scene.RemoveGameObject(g)
		if g.Parent != nil {
			g.Parent.RemoveChild(g)
		}
	}
	w.pendingDestroy = w.pendingDestroy[:0]
}

// Probe implements engine.WorldAccess by sphere-casting the physics world.
func (w *World) Probe(origin, direction rl.Vector3, radius, maxDistance float32, excluding *engine.GameObject) (engine.ProbeHit, bool) {
	hit, ok := w.Physics.SphereCast(origin, direction, radius, maxDistance, excluding)
	if !ok {
		return engine.ProbeHit{}, false
	}
	return engine.ProbeHit{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

// GetCollidableObjects implements engine.WorldAccess.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	result = append(result, w.Physics.Objects...)
	result = append(result, w.Physics.Kinematics...)
	result = append(result, w.Physics.Statics...)
	return result
}

// SetKinematic implements engine.WorldAccess. It flips the rigidbody flag
// and moves the object between the physics world's simulation lists.
func (w *World) SetKinematic(g *engine.GameObject, kinematic bool) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		log.Printf("world: SetKinematic on %q without rigidbody", g.Name)
		return
	}
	if rb.IsKinematic == kinematic {
		return
	}
	rb.IsKinematic = kinematic
	if kinematic {
		w.Physics.PromoteKinematic(g)
	} else {
		w.Physics.ReleaseKinematic(g)
	}
}

var _ engine.WorldAccess = (*World)(nil)
