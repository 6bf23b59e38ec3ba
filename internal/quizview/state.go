package quizview

// HumanAIChoice is the tri-state selector for the human-vs-AI judgment.
type HumanAIChoice int

const (
	// HumanAIUnset means the user has not picked a side yet.
	HumanAIUnset HumanAIChoice = iota
	// ChoseHuman marks the article as human-written.
	ChoseHuman
	// ChoseAI marks the article as AI-generated.
	ChoseAI
)

// RealFakeChoice is the tri-state selector for the real-vs-fake judgment.
type RealFakeChoice int

const (
	// RealFakeUnset means the user has not picked a side yet.
	RealFakeUnset RealFakeChoice = iota
	// ChoseReal marks the article's content as real news.
	ChoseReal
	// ChoseFake marks the article's content as fake news.
	ChoseFake
)

// Answer is the combined submission payload handed to the submit callback.
type Answer struct {
	HumanOptionSelected bool
	IsFakeSelected      bool
}

// State holds the per-article selection state of the view. Both selectors
// stay toggleable until submit; advancement to the next article belongs to
// the caller, not the view.
type State struct {
	HumanAI   HumanAIChoice
	RealFake  RealFakeChoice
	Submitted bool
}

// ReadyToSubmit reports whether both selectors are set.
func (s State) ReadyToSubmit() bool {
	return s.HumanAI != HumanAIUnset && s.RealFake != RealFakeUnset
}

// Answer maps the selections to the callback payload. The second return is
// false while either selector is unset.
func (s State) Answer() (Answer, bool) {
	if !s.ReadyToSubmit() {
		return Answer{}, false
	}
	return Answer{
		HumanOptionSelected: s.HumanAI == ChoseHuman,
		IsFakeSelected:      s.RealFake == ChoseFake,
	}, true
}
