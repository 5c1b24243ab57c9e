package input

import rl "github.com/gen2brain/raylib-go/raylib"

// GamepadSource reads continuous actuation from a gamepad's analog triggers:
// the left/right trigger axis is the grip actuator for that side, the
// bumper is the (digital, reported as 0 or 1) trigger actuator. Gamepads
// carry no positional tracking, so Pose always reports none and hands stay
// wherever the scene rig placed them.
type GamepadSource struct {
	Pad int32
}

func NewGamepadSource(pad int32) *GamepadSource {
	return &GamepadSource{Pad: pad}
}

func (s *GamepadSource) Tracked() bool {
	return rl.IsGamepadAvailable(s.Pad)
}

func (s *GamepadSource) Pose(side Side) (Pose, bool) {
	return Pose{}, false
}

func (s *GamepadSource) Grip(side Side) float32 {
	if !rl.IsGamepadAvailable(s.Pad) {
		return 0
	}
	axis := int32(rl.GamepadAxisLeftTrigger)
	if side == Right {
		axis = int32(rl.GamepadAxisRightTrigger)
	}
	// Raylib trigger axes rest at -1 and saturate at +1
	v := rl.GetGamepadAxisMovement(s.Pad, axis)
	return (v + 1) / 2
}

func (s *GamepadSource) Trigger(side Side) float32 {
	if s.TriggerDown(side) {
		return 1
	}
	return 0
}

func (s *GamepadSource) GripDown(side Side) bool {
	return s.Grip(side) > 0.5
}

func (s *GamepadSource) TriggerDown(side Side) bool {
	if !rl.IsGamepadAvailable(s.Pad) {
		return false
	}
	button := int32(rl.GamepadButtonLeftTrigger1)
	if side == Right {
		button = int32(rl.GamepadButtonRightTrigger1)
	}
	return rl.IsGamepadButtonDown(s.Pad, button)
}
