// Package interact is the hand/grab core: it decides every tick which world
// object a hand is holding, arbitrates ownership between hands, and resolves
// grab candidates from proximity volumes and aim probes.
package interact

// Mode is the input reading a grabbable requires before a hand may pick
// it up.
type Mode int

const (
	// ModePassive objects need no press at all; proximity or aim is enough.
	// They are subject to the auto-detach distance rule instead.
	ModePassive Mode = iota
	// ModeGrip objects require the grip actuator past the deadzone.
	ModeGrip
	// ModeTrigger objects require the trigger actuator past the deadzone.
	ModeTrigger
)

func (m Mode) String() string {
	switch m {
	case ModePassive:
		return "passive"
	case ModeGrip:
		return "grip"
	case ModeTrigger:
		return "trigger"
	}
	return "unknown"
}

// ModeFromString maps scene-file names to modes. Unknown names read as grip,
// the common case.
func ModeFromString(s string) Mode {
	switch s {
	case "passive":
		return ModePassive
	case "trigger":
		return ModeTrigger
	default:
		return ModeGrip
	}
}
