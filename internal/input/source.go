// Package input abstracts the actuation and pose hardware a hand reads from:
// tracked controllers with continuous grip/trigger pressure, or desktop
// fallbacks where two digital buttons stand in for the actuators.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Side identifies a physical hand.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Pose is a tracked controller pose in world space.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
}

// Source exposes per-hand pose and actuation readings. Implementations must
// degrade gracefully: an absent device reads as no pose and zero actuation,
// never as an error.
type Source interface {
	// Pose returns the tracked controller pose for the side, if any.
	Pose(side Side) (Pose, bool)

	// Grip and Trigger return the continuous actuator pressures in [0,1].
	// Only meaningful when Tracked reports true.
	Grip(side Side) float32
	Trigger(side Side) float32

	// GripDown and TriggerDown are the digital fallback equivalents
	// (down = actuated) used when no tracking hardware is present.
	GripDown(side Side) bool
	TriggerDown(side Side) bool

	// Tracked reports whether continuous actuation hardware is present.
	Tracked() bool
}
