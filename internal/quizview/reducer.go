package quizview

// EventKind identifies a view event.
type EventKind int

const (
	// EventSelectHuman toggles the human-vs-AI selector to human.
	EventSelectHuman EventKind = iota
	// EventSelectAI toggles the human-vs-AI selector to AI.
	EventSelectAI
	// EventSelectReal toggles the real-vs-fake selector to real.
	EventSelectReal
	// EventSelectFake toggles the real-vs-fake selector to fake.
	EventSelectFake
	// EventSubmit requests submission of the combined answer.
	EventSubmit
)

// Reduce applies one view event to the selection state. Selection events
// always win (the view does not block re-selection, even after submit);
// submit only latches when both selectors are set, and stays latched.
func Reduce(state State, event EventKind) State {
	switch event {
	case EventSelectHuman:
		state.HumanAI = ChoseHuman
	case EventSelectAI:
		state.HumanAI = ChoseAI
	case EventSelectReal:
		state.RealFake = ChoseReal
	case EventSelectFake:
		state.RealFake = ChoseFake
	case EventSubmit:
		if state.ReadyToSubmit() {
			state.Submitted = true
		}
	}
	return state
}
