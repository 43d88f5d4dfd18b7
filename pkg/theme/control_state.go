package theme

import "fmt"

// ControlState is the interaction state a per-state style applies to.
type ControlState int

const (
	// StateNormal is the resting state and the fallback for every other state.
	StateNormal ControlState = iota
	// StateHighlighted applies while a segment is pressed.
	StateHighlighted
	// StateSelected applies to the selected segment.
	StateSelected
	// StateDisabled applies to disabled segments.
	StateDisabled
)

// String returns a human-readable representation of the state.
func (s ControlState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateSelected:
		return "selected"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("ControlState(%d)", int(s))
	}
}

// ParseControlState parses a state name as produced by String.
func ParseControlState(s string) (ControlState, error) {
	switch s {
	case "normal":
		return StateNormal, nil
	case "highlighted":
		return StateHighlighted, nil
	case "selected":
		return StateSelected, nil
	case "disabled":
		return StateDisabled, nil
	default:
		return 0, fmt.Errorf("unknown control state %q", s)
	}
}
