package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind names an action variant.
type Kind string

const (
	KindSetCount   Kind = "SET_COUNT"
	KindSetText    Kind = "SET_TEXT"
	KindSetColor   Kind = "SET_COLOR"
	KindToggleGood Kind = "TOGGLE_GOOD"
)

var (
	// ErrUnknownAction is returned by ParseAction for a kind outside the
	// four known variants.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidPayload is returned by ParseAction when the argument does not
	// fit the action's payload.
	ErrInvalidPayload = errors.New("invalid action payload")
)

// Action is a request to change one field of State. The set of actions is
// closed: only the types in this package implement it.
type Action interface {
	Kind() Kind
	action()
}

// SetCount replaces Count.
type SetCount struct{ Count int }

// SetText replaces Text.
type SetText struct{ Text string }

// SetColor replaces Color.
type SetColor struct{ Color string }

// ToggleGood flips IsGood.
type ToggleGood struct{}

func (SetCount) Kind() Kind   { return KindSetCount }
func (SetText) Kind() Kind    { return KindSetText }
func (SetColor) Kind() Kind   { return KindSetColor }
func (ToggleGood) Kind() Kind { return KindToggleGood }

func (SetCount) action()   {}
func (SetText) action()    {}
func (SetColor) action()   {}
func (ToggleGood) action() {}

// ParseAction builds an action from its kind name and a single argument.
// Kind matching ignores case and surrounding whitespace. The argument is
// ignored for TOGGLE_GOOD.
func ParseAction(kind, arg string) (Action, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(kind))) {
	case KindSetCount:
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%w: %s count %q", ErrInvalidPayload, KindSetCount, arg)
		}
		return SetCount{Count: n}, nil
	case KindSetText:
		return SetText{Text: arg}, nil
	case KindSetColor:
		return SetColor{Color: arg}, nil
	case KindToggleGood:
		return ToggleGood{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, kind)
	}
}

// Presets returns the actions bound to the reducer panel buttons, in button
// order.
func Presets() []Action {
	return []Action{
		SetCount{Count: 5},
		SetText{Text: "bye"},
		SetColor{Color: "orange"},
		ToggleGood{},
	}
}

// ResetActions returns the actions that bring s back to InitialState.
func ResetActions(s State) []Action {
	actions := []Action{
		SetCount{Count: initialCount},
		SetText{Text: initialText},
		SetColor{Color: initialColor},
	}
	if s.IsGood {
		actions = append(actions, ToggleGood{})
	}
	return actions
}
