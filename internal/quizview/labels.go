package quizview

// Translation lookup keys, fixed by the view contract.
const (
	KeyAnswerHuman      = "quizViewAnswerHuman"
	KeyAnswerAi         = "quizViewAnswerAi"
	KeyAnswerReal       = "quizViewAnswerReal"
	KeyAnswerFake       = "quizViewAnswerFake"
	KeyQuestionHumanAi  = "quizViewQuestionHumanAi"
	KeyQuestionRealFake = "quizViewQuestionRealFake"
	KeySubmitButton     = "quizViewSubmitButton"
)

// Labels holds the translated strings the view renders.
type Labels struct {
	AnswerHuman      string
	AnswerAi         string
	AnswerReal       string
	AnswerFake       string
	QuestionHumanAi  string
	QuestionRealFake string
	SubmitButton     string
}

// DefaultLabels returns the English strings.
func DefaultLabels() Labels {
	return Labels{
		AnswerHuman:      "Human",
		AnswerAi:         "AI",
		AnswerReal:       "Real",
		AnswerFake:       "Fake",
		QuestionHumanAi:  "Written by a human or by an AI?",
		QuestionRealFake: "Is the content real or fake?",
		SubmitButton:     "Submit",
	}
}

// LabelsFromMap builds Labels from a translation lookup keyed by the fixed
// view keys, falling back to the defaults for missing entries.
func LabelsFromMap(lookup map[string]string) Labels {
	labels := DefaultLabels()
	if lookup == nil {
		return labels
	}
	if v, ok := lookup[KeyAnswerHuman]; ok {
		labels.AnswerHuman = v
	}
	if v, ok := lookup[KeyAnswerAi]; ok {
		labels.AnswerAi = v
	}
	if v, ok := lookup[KeyAnswerReal]; ok {
		labels.AnswerReal = v
	}
	if v, ok := lookup[KeyAnswerFake]; ok {
		labels.AnswerFake = v
	}
	if v, ok := lookup[KeyQuestionHumanAi]; ok {
		labels.QuestionHumanAi = v
	}
	if v, ok := lookup[KeyQuestionRealFake]; ok {
		labels.QuestionRealFake = v
	}
	if v, ok := lookup[KeySubmitButton]; ok {
		labels.SubmitButton = v
	}
	return labels
}
