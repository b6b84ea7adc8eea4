package state

import "fmt"

// State is the shared demo record. It is always fully populated and is
// handed out by value, so a reader can never change what the store holds.
type State struct {
	Count  int
	Text   string
	Color  string
	IsGood bool
}

const (
	initialCount = 0
	initialText  = "hello"
	initialColor = "red"
)

// InitialState returns the state every store starts from.
func InitialState() State {
	return State{
		Count:  initialCount,
		Text:   initialText,
		Color:  initialColor,
		IsGood: false,
	}
}

// String formats the state for logs.
func (s State) String() string {
	return fmt.Sprintf("{count=%d text=%q color=%q good=%t}", s.Count, s.Text, s.Color, s.IsGood)
}

// Transition applies a to s and returns the next state. Each action replaces
// exactly one field. Anything that is not one of the four known actions
// (including nil) leaves the state unchanged.
func Transition(s State, a Action) State {
	switch a := a.(type) {
	case SetCount:
		s.Count = a.Count
	case SetText:
		s.Text = a.Text
	case SetColor:
		s.Color = a.Color
	case ToggleGood:
		s.IsGood = !s.IsGood
	default:
		// Unknown actions are a no-op.
	}
	return s
}
