package quizview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"judgegpt/internal/models"
)

func testSession() models.QuizSession {
	return models.QuizSession{
		Articles: []models.Article{
			{UID: "a1", Headline: "First", Content: "one"},
			{UID: "a2", Headline: "Second", Content: "two"},
			{UID: "a3", Headline: "Third", Content: "three"},
		},
		CurrentArticleIndex: 1,
	}
}

func pressKey(m Model, r rune) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func pressEnter(m Model) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

// TestModelSubmitInvokesCallbackOnce walks the worked example: three-article
// session at index 1, select AI then real then submit.
func TestModelSubmitInvokesCallbackOnce(t *testing.T) {
	var calls []Answer
	m := NewModel(testSession(), DefaultLabels(), func(a Answer) {
		calls = append(calls, a)
	})

	m = pressKey(m, 'a')
	m = pressKey(m, 'r')
	m, cmd := pressEnter(m)

	if len(calls) != 1 {
		t.Fatalf("expected exactly one callback, got %d", len(calls))
	}
	if calls[0].HumanOptionSelected || calls[0].IsFakeSelected {
		t.Fatalf("expected {false,false} for ai+real, got %+v", calls[0])
	}
	if !m.Submitted() {
		t.Fatal("expected model to report submitted")
	}
	if cmd == nil {
		t.Fatal("expected quit command after submit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit message after submit")
	}
}

// TestModelSubmitDisabledWhileSelectorUnset verifies enter does nothing until
// both selectors are set.
func TestModelSubmitDisabledWhileSelectorUnset(t *testing.T) {
	called := 0
	m := NewModel(testSession(), DefaultLabels(), func(Answer) { called++ })

	m, cmd := pressEnter(m)
	if called != 0 || cmd != nil {
		t.Fatal("expected submit to be inert with nothing selected")
	}

	m = pressKey(m, 'h')
	m, cmd = pressEnter(m)
	if called != 0 || cmd != nil {
		t.Fatal("expected submit to be inert with one selector set")
	}

	m = pressKey(m, 'f')
	_, cmd = pressEnter(m)
	if called != 1 {
		t.Fatalf("expected one callback after both set, got %d", called)
	}
	if cmd == nil {
		t.Fatal("expected quit command after submit")
	}
}

// TestModelQuitAborts verifies q quits without firing the callback.
func TestModelQuitAborts(t *testing.T) {
	called := 0
	m := NewModel(testSession(), DefaultLabels(), func(Answer) { called++ })

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if !m.Aborted() {
		t.Fatal("expected aborted state")
	}
	if called != 0 {
		t.Fatal("expected no callback on quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

// TestModelViewShowsCurrentArticle verifies the view renders the article the
// session index points at, not its neighbors.
func TestModelViewShowsCurrentArticle(t *testing.T) {
	m := NewModel(testSession(), DefaultLabels(), nil)
	out := m.View()
	if !strings.Contains(out, "Second") {
		t.Fatal("expected current article headline in view")
	}
	if strings.Contains(out, "First") || strings.Contains(out, "Third") {
		t.Fatal("expected only the current article in view")
	}
}
