package interact

import "handlab/internal/engine"

// Grabbable is the contract world objects implement to be picked up and let
// go by hands. Concrete kinds (props, levers, weapons) implement it
// independently; a hand only ever sees this interface.
//
// TryGrab and TryRelease are allowed to refuse: an object already held by
// another hand rejects the grab, an object detached by some other path
// rejects the release. Callers treat refusal as "no state change" and simply
// re-evaluate next tick.
type Grabbable interface {
	engine.Component

	// Mode returns the input reading required to hold the object.
	Mode() Mode

	// TryGrab asks the object to become held by the hand. Returns false if
	// it refuses (held elsewhere, destroyed). Must not block.
	TryGrab(h *Hand) bool

	// TryRelease asks the object to stop being held by the hand. Returns
	// false if the hand does not hold it.
	TryRelease(h *Hand) bool
}

// Holdable is the embeddable default implementation of the held-ownership
// half of the Grabbable contract. The heldBy token is the single shared
// state between hands; it is mutated only inside TryGrab/TryRelease, and the
// boolean return is the whole arbitration mechanism. Which hand wins when
// both reach for the same object in one tick follows the per-hand update
// order, which is deliberately not guaranteed.
type Holdable struct {
	engine.BaseComponent
	InputMode Mode

	// OnGrabbed and OnReleased fire after a grab or release is accepted.
	// Concrete kinds subscribe to attach models, toggle physics, and so on.
	OnGrabbed  engine.EventWithArg[*Hand]
	OnReleased engine.EventWithArg[*Hand]

	heldBy *Hand
}

func (d *Holdable) Mode() Mode { return d.InputMode }

// HeldBy returns the hand currently holding the object, or nil.
func (d *Holdable) HeldBy() *Hand { return d.heldBy }

func (d *Holdable) TryGrab(h *Hand) bool {
	if h == nil || !d.GetGameObject().Alive() {
		return false
	}
	if d.heldBy == h {
		// Re-entrant grab of an already-held object is a no-op accept.
		return true
	}
	if d.heldBy != nil {
		return false
	}
	d.heldBy = h
	d.OnGrabbed.Invoke(h)
	return true
}

func (d *Holdable) TryRelease(h *Hand) bool {
	if d.heldBy == nil || d.heldBy != h {
		return false
	}
	d.heldBy = nil
	d.OnReleased.Invoke(h)
	return true
}

// FirstGrabbable returns the first-declared Grabbable on the object, or
// failing that on its hierarchy root. Returns nil for dead objects.
func FirstGrabbable(obj *engine.GameObject) Grabbable {
	if !obj.Alive() {
		return nil
	}
	if gs := engine.GetComponents[Grabbable](obj); len(gs) > 0 {
		return gs[0]
	}
	if root := obj.Root(); root != obj {
		if gs := engine.GetComponents[Grabbable](root); len(gs) > 0 {
			return gs[0]
		}
	}
	return nil
}
