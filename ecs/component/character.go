package component

// Character holds the movement tuning of the controllable character.
// Both speeds are in world units per second.
type Character struct {
	HorizontalSpeed float64
	JumpSpeed       float64
}

var CharacterComponent = NewComponent[Character]()

// JumpState is the jump availability of a character.
type JumpState uint8

const (
	JumpStateGrounded JumpState = iota
	JumpStateAirborne
)

func (s JumpState) String() string {
	switch s {
	case JumpStateGrounded:
		return "grounded"
	case JumpStateAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Jumper is the two-state grounded/airborne machine of a character.
//
// The zero value is grounded. The state only moves through RequestJump
// (grounded to airborne) and ReportGroundContact (airborne to grounded);
// there is no other way to write it.
type Jumper struct {
	state JumpState
}

var JumperComponent = NewComponent[Jumper]()

// State returns the current jump state.
func (j *Jumper) State() JumpState {
	if j == nil {
		return JumpStateGrounded
	}
	return j.state
}

// IsAirborne reports whether the character has jumped and not yet touched anything.
func (j *Jumper) IsAirborne() bool {
	return j.State() == JumpStateAirborne
}

// RequestJump moves a grounded character to airborne and reports whether it did.
// An airborne character is left as is.
func (j *Jumper) RequestJump() bool {
	if j == nil || j.state == JumpStateAirborne {
		return false
	}
	j.state = JumpStateAirborne
	return true
}

// ReportGroundContact returns the character to grounded. Calling it while
// already grounded is a no-op.
func (j *Jumper) ReportGroundContact() {
	if j == nil {
		return
	}
	j.state = JumpStateGrounded
}
