package physics

import (
	"handlab/internal/components"
	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(pos.X / CellSize),
		Y: int(pos.Y / CellSize),
		Z: int(pos.Z / CellSize),
	}
}

// overlapPair identifies two overlapping objects by UID, smaller first, so
// the pair reads the same regardless of check order.
type overlapPair struct {
	A, B uint64
}

func makePair(a, b *engine.GameObject) overlapPair {
	if a.UID > b.UID {
		a, b = b, a
	}
	return overlapPair{A: a.UID, B: b.UID}
}

type World struct {
	Gravity    rl.Vector3
	FloorY     float32
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (hands, held items)
	Statics    []*engine.GameObject // no rigidbody (walls, floor, furniture)
	grid       map[CellKey][]*engine.GameObject

	// Trigger-volume overlap tracking for enter/exit callbacks
	activeOverlaps  map[overlapPair][2]*engine.GameObject
	currentOverlaps map[overlapPair][2]*engine.GameObject
}

func NewWorld() *World {
	return &World{
		Gravity:         rl.Vector3{X: 0, Y: -20.0, Z: 0},
		Objects:         make([]*engine.GameObject, 0),
		Kinematics:      make([]*engine.GameObject, 0),
		Statics:         make([]*engine.GameObject, 0),
		grid:            make(map[CellKey][]*engine.GameObject),
		activeOverlaps:  make(map[overlapPair][2]*engine.GameObject),
		currentOverlaps: make(map[overlapPair][2]*engine.GameObject),
	}
}

func (w *World) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		w.Statics = append(w.Statics, g)
	} else if rb.IsKinematic {
		w.Kinematics = append(w.Kinematics, g)
	} else {
		w.Objects = append(w.Objects, g)
	}
}

func (w *World) RemoveObject(g *engine.GameObject) {
	for i, obj := range w.Objects {
		if obj == g {
			w.Objects = append(w.Objects[:i], w.Objects[i+1:]...)
			return
		}
	}
	for i, obj := range w.Kinematics {
		if obj == g {
			w.Kinematics = append(w.Kinematics[:i], w.Kinematics[i+1:]...)
			return
		}
	}
	for i, obj := range w.Statics {
		if obj == g {
			w.Statics = append(w.Statics[:i], w.Statics[i+1:]...)
			return
		}
	}
}

// PromoteKinematic moves an object into the kinematic list (held items stop
// simulating). ReleaseKinematic returns it to the dynamic list.
func (w *World) PromoteKinematic(g *engine.GameObject) {
	w.RemoveObject(g)
	w.Kinematics = append(w.Kinematics, g)
}

func (w *World) ReleaseKinematic(g *engine.GameObject) {
	w.RemoveObject(g)
	w.Objects = append(w.Objects, g)
}

func (w *World) allObjects() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(w.Objects)+len(w.Kinematics)+len(w.Statics))
	all = append(all, w.Objects...)
	all = append(all, w.Kinematics...)
	all = append(all, w.Statics...)
	return all
}

// rebuildGrid clears and repopulates the spatial hash grid
func (w *World) rebuildGrid() {
	for k := range w.grid {
		delete(w.grid, k)
	}
	for _, obj := range w.Objects {
		cell := posToCell(obj.Transform.Position)
		w.grid[cell] = append(w.grid[cell], obj)
	}
}

// getNeighborObjects returns all dynamic objects in the same cell and the 26
// neighboring cells.
func (w *World) getNeighborObjects(obj *engine.GameObject) []*engine.GameObject {
	cell := posToCell(obj.Transform.Position)
	var neighbors []*engine.GameObject
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				neighbors = append(neighbors, w.grid[key]...)
			}
		}
	}
	return neighbors
}

func (w *World) Update(deltaTime float32) {
	// 1. Integrate dynamic rigidbodies
	for _, obj := range w.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping || !obj.Alive() {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
		}
		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)

		w.resolveFloor(obj, rb)
		rb.TrySleep(deltaTime)
	}

	// 2. Dynamic vs dynamic, broad-phased through the grid
	w.rebuildGrid()
	checked := make(map[overlapPair]bool)
	for _, obj := range w.Objects {
		for _, other := range w.getNeighborObjects(obj) {
			if obj == other {
				continue
			}
			key := makePair(obj, other)
			if checked[key] {
				continue
			}
			checked[key] = true
			w.resolveDynamicPair(obj, other)
		}
	}

	// 3. Dynamic vs static
	for _, obj := range w.Objects {
		for _, static := range w.Statics {
			w.resolveStatic(obj, static)
		}
	}

	// 4. Trigger volume overlaps
	w.updateTriggers()
}

// resolveFloor keeps dynamic objects above the floor plane with bounce and
// horizontal friction on contact.
func (w *World) resolveFloor(obj *engine.GameObject, rb *components.Rigidbody) {
	bottom := obj.Transform.Position.Y
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		bottom = sphere.GetCenter().Y - sphere.Radius
	} else if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		bottom = box.GetCenter().Y - box.GetWorldSize().Y/2
	}
	if bottom >= w.FloorY {
		return
	}

	obj.Transform.Position.Y += w.FloorY - bottom
	if rb.Velocity.Y < 0 {
		rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness
		if rb.Velocity.Y < 0.5 {
			rb.Velocity.Y = 0
		}
	}
	damp := 1 - rb.Friction
	rb.Velocity.X *= damp
	rb.Velocity.Z *= damp
}

// resolveDynamicPair pushes two overlapping dynamic spheres apart and
// exchanges velocity along the contact normal.
func (w *World) resolveDynamicPair(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil {
		return
	}
	if rbA.IsSleeping && rbB.IsSleeping {
		return
	}

	sa := engine.GetComponent[*components.SphereCollider](a)
	sb := engine.GetComponent[*components.SphereCollider](b)
	if sa == nil || sb == nil || sa.IsTrigger || sb.IsTrigger {
		return
	}

	delta := rl.Vector3Subtract(sb.GetCenter(), sa.GetCenter())
	dist := rl.Vector3Length(delta)
	minDist := sa.Radius + sb.Radius
	if dist >= minDist || dist == 0 {
		return
	}

	normal := rl.Vector3Scale(delta, 1/dist)
	push := (minDist - dist) / 2
	a.Transform.Position = rl.Vector3Subtract(a.Transform.Position, rl.Vector3Scale(normal, push))
	b.Transform.Position = rl.Vector3Add(b.Transform.Position, rl.Vector3Scale(normal, push))

	relVel := rl.Vector3DotProduct(rl.Vector3Subtract(rbA.Velocity, rbB.Velocity), normal)
	if relVel <= 0 {
		return
	}
	bounce := (rbA.Bounciness + rbB.Bounciness) / 2
	impulse := rl.Vector3Scale(normal, relVel*(0.5+bounce/2))
	rbA.Velocity = rl.Vector3Subtract(rbA.Velocity, impulse)
	rbB.Velocity = rl.Vector3Add(rbB.Velocity, impulse)
	rbA.Wake()
	rbB.Wake()
}

// resolveStatic pushes a dynamic object out of a static box collider.
func (w *World) resolveStatic(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil || rb.IsSleeping {
		return
	}
	box := engine.GetComponent[*components.BoxCollider](static)
	if box == nil || box.IsTrigger {
		return
	}
	staticBox := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())

	var objBox AABB
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && !sphere.IsTrigger {
		r := sphere.Radius
		objBox = NewAABBFromCenter(sphere.GetCenter(), rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
	} else if b := engine.GetComponent[*components.BoxCollider](obj); b != nil && !b.IsTrigger {
		objBox = NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
	} else {
		return
	}

	push := objBox.Resolve(staticBox)
	if push == rl.Vector3Zero() {
		return
	}
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)

	// Kill velocity into the surface, bounce a little out of it
	if push.Y > 0 && rb.Velocity.Y < 0 {
		rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness
	} else if push.Y < 0 && rb.Velocity.Y > 0 {
		rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness
	}
	if push.X != 0 {
		rb.Velocity.X = -rb.Velocity.X * rb.Bounciness
	}
	if push.Z != 0 {
		rb.Velocity.Z = -rb.Velocity.Z * rb.Bounciness
	}
}
