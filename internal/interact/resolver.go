package interact

import (
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Probe geometry. The tilt leans the hand probe toward the palm to match
// how a controller is naturally gripped.
const (
	ProbeTiltDegrees  = 45.0
	ProbeRadius       = 0.5  // baseline probe thickness
	ProbeRadiusHand   = 5.0  // forgiving hand probe, last resort
	ProbeRadiusHead   = 10.0 // forgiving viewpoint probe
	probeRange        = 1e6  // effectively unbounded
)

// resolveCandidate picks the single best grab candidate. Priority order,
// first valid result wins:
//
//  1. the object already held (a hold is never stolen mid-grip)
//  2. nearest live entry in the proximity set
//  3. tilted forward probe from the hand, baseline radius
//  4. viewpoint probe, baseline radius
//  5. viewpoint probe, forgiving radius
//  6. hand probe, forgiving radius
//
// Returns nil when every rung comes up empty.
func (h *Hand) resolveCandidate() Grabbable {
	if h.current != nil && h.current.GetGameObject().Alive() {
		return h.current
	}

	if g := h.GetGameObject(); g != nil {
		if nearest := h.proximity.Nearest(g.WorldPosition()); nearest != nil {
			return nearest
		}
	}

	if c := h.handProbe(ProbeRadius); c != nil {
		return c
	}
	if c := h.headProbe(ProbeRadius); c != nil {
		return c
	}
	if c := h.headProbe(ProbeRadiusHead); c != nil {
		return c
	}
	if c := h.handProbe(ProbeRadiusHand); c != nil {
		return c
	}
	return nil
}

// handProbe casts forward from the hand, tilted about the hand's right axis.
func (h *Hand) handProbe(radius float32) Grabbable {
	g := h.GetGameObject()
	if g == nil || h.World == nil {
		return nil
	}
	tilt := rl.MatrixRotate(g.Right(), ProbeTiltDegrees*rl.Deg2rad)
	dir := rl.Vector3Transform(g.Forward(), tilt)
	return h.probe(g.WorldPosition(), dir, radius)
}

// headProbe casts along the viewpoint's look direction.
func (h *Hand) headProbe(radius float32) Grabbable {
	if h.Viewpoint == nil || h.World == nil {
		return nil
	}
	ex, ey, ez := h.Viewpoint.EyePosition()
	lx, ly, lz := h.Viewpoint.LookDirection()
	origin := rl.Vector3{X: ex, Y: ey, Z: ez}
	dir := rl.Vector3{X: lx, Y: ly, Z: lz}
	return h.probe(origin, dir, radius)
}

func (h *Hand) probe(origin, dir rl.Vector3, radius float32) Grabbable {
	hit, ok := h.World.Probe(origin, dir, radius, probeRange, h.GetGameObject())
	if !ok {
		return nil
	}
	return FirstGrabbable(hit.GameObject)
}

var _ engine.TriggerHandler = (*Hand)(nil)
