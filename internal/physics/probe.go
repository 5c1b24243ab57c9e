package physics

import (
	"math"

	"handlab/internal/components"
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit holds information about a sphere-cast hit.
type Hit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// SphereCast sweeps a sphere of the given radius along direction and returns
// the closest solid hit. Trigger colliders never block the cast. The
// excluding object and everything under its hierarchy root are skipped, so
// an object probing the world never hits itself or what it is carrying.
func (w *World) SphereCast(origin, direction rl.Vector3, radius, maxDistance float32, excluding *engine.GameObject) (Hit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit Hit
	closestHit.Distance = maxDistance
	hit := false

	var excludeRoot *engine.GameObject
	if excluding != nil {
		excludeRoot = excluding.Root()
	}

	for _, obj := range w.allObjects() {
		if !obj.Alive() {
			continue
		}
		if excludeRoot != nil && obj.Root() == excludeRoot {
			continue
		}

		// Box collider: thin ray against the box expanded by the cast radius
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && !box.IsTrigger {
			aabb := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize()).Expand(radius)
			if hitInfo, ok := castBox(origin, direction, aabb, maxDistance); ok {
				if hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		// Sphere collider: thin ray against the sphere grown by the cast radius
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && !sphere.IsTrigger {
			if hitInfo, ok := castSphere(origin, direction, sphere.GetCenter(), sphere.Radius+radius, maxDistance); ok {
				if hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

func castBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (Hit, bool) {
	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (box.Min.X - origin.X) / direction.X
		t2 := (box.Max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < box.Min.X || origin.X > box.Max.X {
		return Hit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (box.Min.Y - origin.Y) / direction.Y
		t2 := (box.Max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < box.Min.Y || origin.Y > box.Max.Y {
		return Hit{}, false
	}

	if tmin > tmax {
		return Hit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (box.Min.Z - origin.Z) / direction.Z
		t2 := (box.Max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < box.Min.Z || origin.Z > box.Max.Z {
		return Hit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-box.Min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if abs(point.X-box.Max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if abs(point.Y-box.Min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if abs(point.Y-box.Max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if abs(point.Z-box.Min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func castSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return Hit{Point: point, Normal: normal, Distance: t}, true
}
