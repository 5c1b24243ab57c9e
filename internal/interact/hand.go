package interact

import (
	"handlab/internal/engine"
	"handlab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Deadzone is the fraction of full actuator range below which a
	// continuous reading counts as not pressed. Exactly at the deadzone is
	// still not pressed; only strictly above actuates.
	Deadzone = 0.25

	// GripOffset shifts the hand backward from the reported controller pose,
	// compensating for grip-point placement versus the palm origin.
	GripOffset = 2.0

	// AutoDetachDistance releases a passively held object once it drifts
	// this far from the hand. Passive objects have no press to let go with,
	// so distance is their only release path besides losing the candidate.
	AutoDetachDistance = 3.0
)

// Hand is the per-hand grab controller. Each tick it adopts the tracked
// controller pose, re-resolves the best grab candidate from scratch, and
// settles into one of two states: Holding (Held() != nil) while input
// actively sustains a hold, Idle otherwise. Holding nothing is the default
// outcome of a tick.
//
// Hands are strictly single-threaded: Update, the trigger callbacks, and all
// contract calls run serialized inside the host's frame.
type Hand struct {
	engine.BaseComponent
	Side  input.Side
	Input input.Source

	// World performs the aim probes. Usually the scene's world; nil degrades
	// to proximity-only resolution.
	World engine.WorldAccess

	// Viewpoint supplies the head pose for viewpoint probes; nil skips them.
	Viewpoint engine.Viewpoint

	current   Grabbable
	proximity ProximitySet
	velocity  rl.Vector3
	lastPos   rl.Vector3
	hasLast   bool
}

func NewHand(side input.Side, src input.Source) *Hand {
	return &Hand{Side: side, Input: src}
}

// Held returns the grabbable currently held, or nil when idle.
func (h *Hand) Held() Grabbable { return h.current }

// Velocity is the hand's world-space velocity in units per second, derived
// from the frame-to-frame position delta. Unsmoothed and unclamped.
func (h *Hand) Velocity() rl.Vector3 { return h.velocity }

// Proximity exposes the hand's candidate set; trigger volumes and tests
// populate it.
func (h *Hand) Proximity() *ProximitySet { return &h.proximity }

func (h *Hand) Update(deltaTime float32) {
	h.updatePose(deltaTime)
	h.proximity.Prune()
	h.updateGrab()
}

// updatePose adopts the tracked controller pose with the grip offset and
// derives velocity. With no pose available the hand stays where the scene
// rig put it; velocity still tracks whatever motion the rig applies.
func (h *Hand) updatePose(deltaTime float32) {
	g := h.GetGameObject()
	if g == nil {
		return
	}

	if h.Input != nil {
		if pose, ok := h.Input.Pose(h.Side); ok {
			g.Transform.Rotation = pose.Rotation
			back := rl.Vector3Scale(g.Forward(), -GripOffset)
			g.Transform.Position = rl.Vector3Add(pose.Position, back)
		}
	}

	pos := g.WorldPosition()
	if h.hasLast && deltaTime > 0 {
		h.velocity = rl.Vector3Scale(rl.Vector3Subtract(pos, h.lastPos), 1/deltaTime)
	} else {
		h.velocity = rl.Vector3{}
	}
	h.lastPos = pos
	h.hasLast = true
}

// updateGrab is the state machine tick: recompute the candidate, and either
// sustain/start a hold or release. Grab state is a function of current
// inputs and positions, never a latched event.
func (h *Hand) updateGrab() {
	if h.current != nil && !h.current.GetGameObject().Alive() {
		// Held object was destroyed externally; drop the reference without
		// a release call.
		h.current = nil
	}

	candidate := h.resolveCandidate()
	if candidate == nil || !h.actuated(candidate.Mode()) {
		h.releaseCurrent()
		return
	}

	if h.current != nil && candidate == h.current {
		if h.current.Mode() == ModePassive && h.heldDistance() > AutoDetachDistance {
			h.releaseCurrent()
		}
		return
	}

	if candidate.TryGrab(h) {
		h.current = candidate
		h.proximity.Remove(candidate)
	}
	// Rejection (held by the other hand) leaves state unchanged; discovery
	// re-runs next tick anyway.
}

// releaseCurrent issues the release call. A refused release leaves the hold
// in place for re-evaluation next tick.
func (h *Hand) releaseCurrent() {
	if h.current == nil {
		return
	}
	if !h.current.GetGameObject().Alive() {
		h.current = nil
		return
	}
	if h.current.TryRelease(h) {
		h.current = nil
	}
}

// actuated interprets the required input mode against the current actuator
// readings. Passive mode needs no press. A missing input source reads as
// not actuated, degrading the hand to idle.
func (h *Hand) actuated(m Mode) bool {
	if m == ModePassive {
		return true
	}
	if h.Input == nil {
		return false
	}
	if h.Input.Tracked() {
		v := h.Input.Grip(h.Side)
		if m == ModeTrigger {
			v = h.Input.Trigger(h.Side)
		}
		return v > Deadzone
	}
	if m == ModeTrigger {
		return h.Input.TriggerDown(h.Side)
	}
	return h.Input.GripDown(h.Side)
}

func (h *Hand) heldDistance() float32 {
	obj := h.current.GetGameObject()
	return rl.Vector3Length(rl.Vector3Subtract(obj.WorldPosition(), h.GetGameObject().WorldPosition()))
}

// OnTriggerEnter adds grabbables carried by colliders entering the hand's
// trigger volume. Implements engine.TriggerHandler.
func (h *Hand) OnTriggerEnter(other *engine.GameObject) {
	if g := FirstGrabbable(other); g != nil {
		h.proximity.Add(g)
	}
}

// OnTriggerExit removes them when the collider leaves.
func (h *Hand) OnTriggerExit(other *engine.GameObject) {
	if g := FirstGrabbable(other); g != nil {
		h.proximity.Remove(g)
	}
}
