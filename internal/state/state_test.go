package state

import "testing"

type bogusAction struct{}

func (bogusAction) Kind() Kind { return "BOGUS" }
func (bogusAction) action()    {}

func TestInitialState(t *testing.T) {
	want := State{Count: 0, Text: "hello", Color: "red", IsGood: false}
	if got := InitialState(); got != want {
		t.Fatalf("InitialState() = %v, want %v", got, want)
	}
	if got := NewStore().State(); got != want {
		t.Fatalf("NewStore().State() = %v, want %v", got, want)
	}
}

func TestTransition_ReplacesOnlyTargetField(t *testing.T) {
	bases := []State{
		InitialState(),
		{Count: -3, Text: "", Color: "blue", IsGood: true},
		{Count: 42, Text: "bye", Color: "", IsGood: false},
	}

	for _, base := range bases {
		got := Transition(base, SetCount{Count: 7})
		want := base
		want.Count = 7
		if got != want {
			t.Fatalf("Transition(%v, SET_COUNT(7)) = %v, want %v", base, got, want)
		}

		got = Transition(base, SetText{Text: "yo"})
		want = base
		want.Text = "yo"
		if got != want {
			t.Fatalf("Transition(%v, SET_TEXT(yo)) = %v, want %v", base, got, want)
		}

		got = Transition(base, SetColor{Color: "green"})
		want = base
		want.Color = "green"
		if got != want {
			t.Fatalf("Transition(%v, SET_COLOR(green)) = %v, want %v", base, got, want)
		}

		got = Transition(base, ToggleGood{})
		want = base
		want.IsGood = !base.IsGood
		if got != want {
			t.Fatalf("Transition(%v, TOGGLE_GOOD) = %v, want %v", base, got, want)
		}
	}
}

func TestTransition_UnknownActionIsNoop(t *testing.T) {
	base := State{Count: 9, Text: "x", Color: "y", IsGood: true}
	if got := Transition(base, bogusAction{}); got != base {
		t.Fatalf("Transition(unknown) = %v, want %v", got, base)
	}
	if got := Transition(base, nil); got != base {
		t.Fatalf("Transition(nil) = %v, want %v", got, base)
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	base := InitialState()
	_ = Transition(base, SetCount{Count: 100})
	if base != InitialState() {
		t.Fatalf("input state changed to %v", base)
	}
}

func TestTransition_SetCountIdempotent(t *testing.T) {
	once := Transition(InitialState(), SetCount{Count: 5})
	twice := Transition(once, SetCount{Count: 5})
	if once != twice {
		t.Fatalf("SET_COUNT(5) twice = %v, want %v", twice, once)
	}
}

func TestStateString(t *testing.T) {
	want := `{count=0 text="hello" color="red" good=false}`
	if got := InitialState().String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
