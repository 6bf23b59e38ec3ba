package quizview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"judgegpt/internal/models"
)

// keyMap binds the four toggles, submit and quit.
type keyMap struct {
	Human  key.Binding
	AI     key.Binding
	Real   key.Binding
	Fake   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Human, k.AI, k.Real, k.Fake, k.Submit, k.Quit}
}

// FullHelp returns all bindings.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Human, k.AI, k.Real, k.Fake}, {k.Submit, k.Quit}}
}

func defaultKeyMap(labels Labels) keyMap {
	return keyMap{
		Human:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", labels.AnswerHuman)),
		AI:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", labels.AnswerAi)),
		Real:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", labels.AnswerReal)),
		Fake:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", labels.AnswerFake)),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", labels.SubmitButton)),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model renders one quiz article and collects the two-part answer. It is
// purely presentational: no network or storage calls originate here. The
// session is owned by the caller; the model reads the current article and
// reports the answer through the submit callback.
type Model struct {
	session  models.QuizSession
	labels   Labels
	state    State
	keys     keyMap
	help     help.Model
	onSubmit func(Answer)
	width    int
	aborted  bool
}

// NewModel constructs a view model for the session's current article. The
// callback fires exactly once, when the user submits with both selectors set.
func NewModel(session models.QuizSession, labels Labels, onSubmit func(Answer)) Model {
	return Model{
		session:  session,
		labels:   labels,
		keys:     defaultKeyMap(labels),
		help:     help.New(),
		onSubmit: onSubmit,
		width:    80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key events and drives the selection state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(typed, m.keys.Human):
			m.state = Reduce(m.state, EventSelectHuman)
		case key.Matches(typed, m.keys.AI):
			m.state = Reduce(m.state, EventSelectAI)
		case key.Matches(typed, m.keys.Real):
			m.state = Reduce(m.state, EventSelectReal)
		case key.Matches(typed, m.keys.Fake):
			m.state = Reduce(m.state, EventSelectFake)
		case key.Matches(typed, m.keys.Submit):
			wasSubmitted := m.state.Submitted
			m.state = Reduce(m.state, EventSubmit)
			if m.state.Submitted && !wasSubmitted {
				if answer, ok := m.state.Answer(); ok && m.onSubmit != nil {
					m.onSubmit(answer)
				}
				return m, tea.Quit
			}
		}
		return m, nil
	}
	return m, nil
}

// View renders progress, article, choice groups, submit control and help.
func (m Model) View() string {
	contentWidth := m.width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderProgress(m.session.CurrentArticleIndex),
		"",
		renderArticle(m.session.Current(), contentWidth),
		"",
		renderChoices(m.state, m.labels),
		"",
		renderSubmit(m.state, m.labels),
		"",
		m.help.View(m.keys),
	)
}

// Submitted reports whether the answer was submitted.
func (m Model) Submitted() bool {
	return m.state.Submitted
}

// Aborted reports whether the user quit without submitting.
func (m Model) Aborted() bool {
	return m.aborted
}
