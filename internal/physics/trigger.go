package physics

import (
	"handlab/internal/components"
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateTriggers finds every overlap between a trigger collider and any other
// collider, then dispatches OnTriggerEnter/OnTriggerExit for pairs that
// appeared or disappeared since the previous frame.
func (w *World) updateTriggers() {
	w.currentOverlaps = make(map[overlapPair][2]*engine.GameObject)

	all := w.allObjects()
	for _, obj := range all {
		if !obj.Alive() || !hasTriggerCollider(obj) {
			continue
		}
		for _, other := range all {
			if other == obj || !other.Alive() {
				continue
			}
			// Trigger volumes attached to a hand must not fire against the
			// hand's own children (a held item rides the hand).
			if other.Root() == obj.Root() {
				continue
			}
			if !hasSolidCollider(other) {
				continue
			}
			if triggerOverlaps(obj, other) {
				w.currentOverlaps[makePair(obj, other)] = [2]*engine.GameObject{obj, other}
			}
		}
	}

	// New overlaps - enter
	for key, pair := range w.currentOverlaps {
		if _, was := w.activeOverlaps[key]; !was {
			notifyTriggerEnter(pair[0], pair[1])
			notifyTriggerEnter(pair[1], pair[0])
		}
	}

	// Ended overlaps - exit
	for key, pair := range w.activeOverlaps {
		if _, still := w.currentOverlaps[key]; !still {
			notifyTriggerExit(pair[0], pair[1])
			notifyTriggerExit(pair[1], pair[0])
		}
	}

	w.activeOverlaps = w.currentOverlaps
}

func hasTriggerCollider(obj *engine.GameObject) bool {
	if s := engine.GetComponent[*components.SphereCollider](obj); s != nil && s.IsTrigger {
		return true
	}
	if b := engine.GetComponent[*components.BoxCollider](obj); b != nil && b.IsTrigger {
		return true
	}
	return false
}

func hasSolidCollider(obj *engine.GameObject) bool {
	if s := engine.GetComponent[*components.SphereCollider](obj); s != nil && !s.IsTrigger {
		return true
	}
	if b := engine.GetComponent[*components.BoxCollider](obj); b != nil && !b.IsTrigger {
		return true
	}
	return false
}

// triggerOverlaps tests the trigger collider on obj against the solid
// collider on other.
func triggerOverlaps(obj, other *engine.GameObject) bool {
	if s := engine.GetComponent[*components.SphereCollider](obj); s != nil && s.IsTrigger {
		return sphereOverlapsObject(s.GetCenter(), s.Radius, other)
	}
	if b := engine.GetComponent[*components.BoxCollider](obj); b != nil && b.IsTrigger {
		box := NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
		return boxOverlapsObject(box, other)
	}
	return false
}

func sphereOverlapsObject(center rl.Vector3, radius float32, other *engine.GameObject) bool {
	if s := engine.GetComponent[*components.SphereCollider](other); s != nil && !s.IsTrigger {
		dist := rl.Vector3Length(rl.Vector3Subtract(s.GetCenter(), center))
		return dist <= radius+s.Radius
	}
	if b := engine.GetComponent[*components.BoxCollider](other); b != nil && !b.IsTrigger {
		box := NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
		closest := box.ClosestPoint(center)
		dist := rl.Vector3Length(rl.Vector3Subtract(closest, center))
		return dist <= radius
	}
	return false
}

func boxOverlapsObject(box AABB, other *engine.GameObject) bool {
	if s := engine.GetComponent[*components.SphereCollider](other); s != nil && !s.IsTrigger {
		closest := box.ClosestPoint(s.GetCenter())
		dist := rl.Vector3Length(rl.Vector3Subtract(closest, s.GetCenter()))
		return dist <= s.Radius
	}
	if b := engine.GetComponent[*components.BoxCollider](other); b != nil && !b.IsTrigger {
		return box.Intersects(NewAABBFromCenter(b.GetCenter(), b.GetWorldSize()))
	}
	return false
}

func notifyTriggerEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerEnter(other)
		}
	}
}

func notifyTriggerExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerExit(other)
		}
	}
}
