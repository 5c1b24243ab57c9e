package input

import rl "github.com/gen2brain/raylib-go/raylib"

// KeyboardMouseSource is the non-tracked desktop fallback: two digital
// buttons per hand with down = actuated. Left hand grips with the left
// mouse button and pulls its trigger with Q; right hand uses the right
// mouse button and E.
type KeyboardMouseSource struct{}

func NewKeyboardMouseSource() *KeyboardMouseSource {
	return &KeyboardMouseSource{}
}

func (s *KeyboardMouseSource) Tracked() bool { return false }

func (s *KeyboardMouseSource) Pose(side Side) (Pose, bool) {
	return Pose{}, false
}

func (s *KeyboardMouseSource) Grip(side Side) float32 {
	if s.GripDown(side) {
		return 1
	}
	return 0
}

func (s *KeyboardMouseSource) Trigger(side Side) float32 {
	if s.TriggerDown(side) {
		return 1
	}
	return 0
}

func (s *KeyboardMouseSource) GripDown(side Side) bool {
	if side == Left {
		return rl.IsMouseButtonDown(rl.MouseLeftButton)
	}
	return rl.IsMouseButtonDown(rl.MouseRightButton)
}

func (s *KeyboardMouseSource) TriggerDown(side Side) bool {
	if side == Left {
		return rl.IsKeyDown(rl.KeyQ)
	}
	return rl.IsKeyDown(rl.KeyE)
}
