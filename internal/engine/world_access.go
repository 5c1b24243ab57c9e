package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// ProbeHit holds information about a spatial probe hit.
// Defined here to avoid circular imports with the physics package.
type ProbeHit struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// Probe casts a sphere of the given radius along direction and returns
	// the nearest solid hit. The excluding object (and its children) never
	// appears in results.
	Probe(origin, direction rl.Vector3, radius, maxDistance float32, excluding *GameObject) (ProbeHit, bool)

	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)

	// SetKinematic switches an object between simulated and carried. Held
	// items ride the hand instead of the integrator.
	SetKinematic(g *GameObject, kinematic bool)
}
