package quizview

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"judgegpt/internal/models"
)

var (
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	contentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	doneMarker    = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Render("●")
	currentMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Render("●")
	pendingMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("○")

	submitEnabled  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1)
	submitDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	submitHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// renderProgress renders one marker per session position up to the fixed
// maximum, highlighting completed and current positions.
func renderProgress(currentIndex int) string {
	markers := make([]string, 0, models.MaxArticlesPerSession)
	for i := 0; i < models.MaxArticlesPerSession; i++ {
		switch {
		case i < currentIndex:
			markers = append(markers, doneMarker)
		case i == currentIndex:
			markers = append(markers, currentMarker)
		default:
			markers = append(markers, pendingMarker)
		}
	}
	return strings.Join(markers, " ")
}

// renderArticle renders the headline and the entity-decoded content.
func renderArticle(article models.Article, width int) string {
	headline := headlineStyle.Render(article.Headline)
	content := contentStyle.Width(width).Render(html.UnescapeString(article.Content))
	return lipgloss.JoinVertical(lipgloss.Left, headline, "", content)
}

// renderChoices renders both question lines with their toggle buttons.
func renderChoices(state State, labels Labels) string {
	humanAi := questionStyle.Render(labels.QuestionHumanAi) + "\n" +
		StyleFor(humanButtonState(state.HumanAI)).Render(labels.AnswerHuman) + " " +
		StyleFor(aiButtonState(state.HumanAI)).Render(labels.AnswerAi)

	realFake := questionStyle.Render(labels.QuestionRealFake) + "\n" +
		StyleFor(realButtonState(state.RealFake)).Render(labels.AnswerReal) + " " +
		StyleFor(fakeButtonState(state.RealFake)).Render(labels.AnswerFake)

	return lipgloss.JoinVertical(lipgloss.Left, humanAi, "", realFake)
}

// renderSubmit renders the submit control, disabled until both selectors
// are set.
func renderSubmit(state State, labels Labels) string {
	if state.ReadyToSubmit() {
		return submitEnabled.Render(labels.SubmitButton)
	}
	return submitDisabled.Render(labels.SubmitButton) + " " + submitHint.Render("(answer both questions)")
}
