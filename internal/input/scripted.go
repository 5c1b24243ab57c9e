package input

// ScriptedSource is a programmable Source for tests and headless runs.
// Zero value reads as an absent device: no pose, zero actuation.
type ScriptedSource struct {
	IsTracked bool
	states    map[Side]*scriptedHand
}

type scriptedHand struct {
	pose        Pose
	hasPose     bool
	grip        float32
	trigger     float32
	gripDown    bool
	triggerDown bool
}

func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{
		IsTracked: true,
		states:    make(map[Side]*scriptedHand),
	}
}

func (s *ScriptedSource) hand(side Side) *scriptedHand {
	if s.states == nil {
		s.states = make(map[Side]*scriptedHand)
	}
	h, ok := s.states[side]
	if !ok {
		h = &scriptedHand{}
		s.states[side] = h
	}
	return h
}

// SetPose sets the tracked pose for a side. ClearPose simulates losing
// tracking for that side.
func (s *ScriptedSource) SetPose(side Side, pose Pose) {
	h := s.hand(side)
	h.pose = pose
	h.hasPose = true
}

func (s *ScriptedSource) ClearPose(side Side) {
	s.hand(side).hasPose = false
}

func (s *ScriptedSource) SetGrip(side Side, v float32) {
	h := s.hand(side)
	h.grip = v
	h.gripDown = v > 0.5
}

func (s *ScriptedSource) SetTrigger(side Side, v float32) {
	h := s.hand(side)
	h.trigger = v
	h.triggerDown = v > 0.5
}

func (s *ScriptedSource) Tracked() bool { return s.IsTracked }

func (s *ScriptedSource) Pose(side Side) (Pose, bool) {
	h := s.hand(side)
	return h.pose, h.hasPose
}

func (s *ScriptedSource) Grip(side Side) float32    { return s.hand(side).grip }
func (s *ScriptedSource) Trigger(side Side) float32 { return s.hand(side).trigger }
func (s *ScriptedSource) GripDown(side Side) bool   { return s.hand(side).gripDown }
func (s *ScriptedSource) TriggerDown(side Side) bool {
	return s.hand(side).triggerDown
}
