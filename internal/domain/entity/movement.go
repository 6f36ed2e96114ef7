package entity

import "fmt"

// FallRule selects which time base scales a shape group's displacement
type FallRule int

const (
	// FallTick moves speed*dt, where dt is the duration of the tick that
	// crossed the step interval.
	FallTick FallRule = iota
	// FallAccumulated moves speed*elapsed, the full time since the last step.
	FallAccumulated
)

// String returns the config name of the rule
func (r FallRule) String() string {
	switch r {
	case FallTick:
		return "tick"
	case FallAccumulated:
		return "accumulated"
	default:
		return "unknown"
	}
}

// ParseFallRule converts a config name into a FallRule
func ParseFallRule(s string) (FallRule, error) {
	switch s {
	case "", "tick":
		return FallTick, nil
	case "accumulated":
		return FallAccumulated, nil
	}
	return FallTick, fmt.Errorf("unknown fall rule %q", s)
}

// Priority decides the direction when both keys of an axis are held
type Priority int

const (
	LeftFirst Priority = iota
	RightFirst
	Cancel
)

// String returns the config name of the priority
func (p Priority) String() string {
	switch p {
	case LeftFirst:
		return "left-first"
	case RightFirst:
		return "right-first"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParsePriority converts a config name into a Priority
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "", "left-first":
		return LeftFirst, nil
	case "right-first":
		return RightFirst, nil
	case "cancel":
		return Cancel, nil
	}
	return LeftFirst, fmt.Errorf("unknown horizontal priority %q", s)
}

// Axis returns -1, 0 or +1 for a pair of opposing held keys.
// neg is the left (or up) key, pos the right (or down) key.
func (p Priority) Axis(neg, pos bool) float32 {
	switch {
	case neg && pos:
		switch p {
		case LeftFirst:
			return -1
		case RightFirst:
			return 1
		default:
			return 0
		}
	case neg:
		return -1
	case pos:
		return 1
	}
	return 0
}

// MovementRule is the tunable physics of a shape group step
type MovementRule struct {
	Fall       FallRule
	Horizontal Priority
}

// ParseMovementRule parses both halves of a rule from their config names
func ParseMovementRule(fall, horizontal string) (MovementRule, error) {
	f, err := ParseFallRule(fall)
	if err != nil {
		return MovementRule{}, err
	}
	h, err := ParsePriority(horizontal)
	if err != nil {
		return MovementRule{}, err
	}
	return MovementRule{Fall: f, Horizontal: h}, nil
}
