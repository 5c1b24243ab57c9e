package interact

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProximitySet tracks the grabbables currently inside a hand's trigger
// volume, keyed by owning object UID. Membership is the only state kept;
// distances are always computed fresh from live positions at resolution
// time, never cached.
type ProximitySet struct {
	entries map[uint64]Grabbable
}

func (p *ProximitySet) init() {
	if p.entries == nil {
		p.entries = make(map[uint64]Grabbable)
	}
}

// Add inserts a grabbable; duplicate adds are no-ops.
func (p *ProximitySet) Add(g Grabbable) {
	if g == nil || !g.GetGameObject().Alive() {
		return
	}
	p.init()
	p.entries[g.GetGameObject().UID] = g
}

// Remove drops a grabbable if present.
func (p *ProximitySet) Remove(g Grabbable) {
	if g == nil || p.entries == nil {
		return
	}
	delete(p.entries, g.GetGameObject().UID)
}

func (p *ProximitySet) Contains(g Grabbable) bool {
	if g == nil || p.entries == nil {
		return false
	}
	_, ok := p.entries[g.GetGameObject().UID]
	return ok
}

func (p *ProximitySet) Len() int {
	return len(p.entries)
}

// Prune removes entries whose objects have been destroyed.
func (p *ProximitySet) Prune() {
	for uid, g := range p.entries {
		if !g.GetGameObject().Alive() {
			delete(p.entries, uid)
		}
	}
}

// Nearest returns the live entry closest to from by straight-line distance.
// Exact distance ties break toward the lower object UID so repeated
// resolutions are stable; beyond that no ordering is guaranteed.
func (p *ProximitySet) Nearest(from rl.Vector3) Grabbable {
	var best Grabbable
	var bestDist float32
	var bestUID uint64
	for uid, g := range p.entries {
		obj := g.GetGameObject()
		if !obj.Alive() {
			continue
		}
		dist := rl.Vector3Length(rl.Vector3Subtract(obj.WorldPosition(), from))
		if best == nil || dist < bestDist || (dist == bestDist && uid < bestUID) {
			best = g
			bestDist = dist
			bestUID = uid
		}
	}
	return best
}
