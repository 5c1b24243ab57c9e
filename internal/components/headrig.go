package components

import (
	"math"

	"handlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HeadRig is the desktop stand-in for a tracked headset: mouse look plus
// WASD movement on the horizontal plane. It provides the viewpoint that aim
// probes fall back to, and the camera for the demo window.
type HeadRig struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32

	// ReadDevices gates raylib input polling so the rig can exist in
	// headless runs.
	ReadDevices bool
}

func NewHeadRig() *HeadRig {
	return &HeadRig{
		Yaw:         -90.0,
		MoveSpeed:   6.0,
		LookSpeed:   0.1,
		EyeHeight:   1.7,
		ReadDevices: true,
	}
}

func (r *HeadRig) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || !r.ReadDevices {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	r.Yaw += mouseDelta.X * r.LookSpeed
	r.Pitch -= mouseDelta.Y * r.LookSpeed
	if r.Pitch > 89 {
		r.Pitch = 89
	}
	if r.Pitch < -89 {
		r.Pitch = -89
	}

	forward, right := r.planarDirections()
	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}
	if length := rl.Vector3Length(moveDir); length > 0 {
		moveDir = rl.Vector3Scale(moveDir, r.MoveSpeed*deltaTime/length)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, moveDir)
	}

	// Keep the rig's yaw on the object so child hands inherit it
	g.Transform.Rotation.Y = -r.Yaw - 90
}

func (r *HeadRig) planarDirections() (forward, right rl.Vector3) {
	yawRad := float64(r.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// EyePosition implements engine.Viewpoint.
func (r *HeadRig) EyePosition() (x, y, z float32) {
	g := r.GetGameObject()
	if g == nil {
		return 0, 0, 0
	}
	pos := g.WorldPosition()
	return pos.X, pos.Y + r.EyeHeight, pos.Z
}

// LookDirection implements engine.Viewpoint.
func (r *HeadRig) LookDirection() (x, y, z float32) {
	yawRad := float64(r.Yaw) * math.Pi / 180
	pitchRad := float64(r.Pitch) * math.Pi / 180
	return float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad))
}

// Camera builds the raylib camera for the demo window.
func (r *HeadRig) Camera() rl.Camera3D {
	ex, ey, ez := r.EyePosition()
	lx, ly, lz := r.LookDirection()
	eye := rl.Vector3{X: ex, Y: ey, Z: ez}
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, rl.Vector3{X: lx, Y: ly, Z: lz}),
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

var _ engine.Viewpoint = (*HeadRig)(nil)
