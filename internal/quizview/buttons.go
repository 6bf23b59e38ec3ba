package quizview

import "github.com/charmbracelet/lipgloss"

// ButtonState enumerates the visual states a choice button can take.
type ButtonState int

const (
	// ButtonUnselected renders a button nobody picked.
	ButtonUnselected ButtonState = iota
	// ButtonSelectedHuman renders the picked human button.
	ButtonSelectedHuman
	// ButtonSelectedAI renders the picked AI button.
	ButtonSelectedAI
	// ButtonSelectedReal renders the picked real button (affirmative color).
	ButtonSelectedReal
	// ButtonSelectedFake renders the picked fake button (negative color).
	ButtonSelectedFake
)

var (
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	humanStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1)
	aiStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1)
	realStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")).Bold(true).Padding(0, 1)
	fakeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124")).Bold(true).Padding(0, 1)
)

// StyleFor resolves a button state to its style. Pure: the same state always
// yields the same style.
func StyleFor(state ButtonState) lipgloss.Style {
	switch state {
	case ButtonSelectedHuman:
		return humanStyle
	case ButtonSelectedAI:
		return aiStyle
	case ButtonSelectedReal:
		return realStyle
	case ButtonSelectedFake:
		return fakeStyle
	default:
		return unselectedStyle
	}
}

// humanButtonState returns the visual state of the "human" button.
func humanButtonState(choice HumanAIChoice) ButtonState {
	if choice == ChoseHuman {
		return ButtonSelectedHuman
	}
	return ButtonUnselected
}

// aiButtonState returns the visual state of the "AI" button.
func aiButtonState(choice HumanAIChoice) ButtonState {
	if choice == ChoseAI {
		return ButtonSelectedAI
	}
	return ButtonUnselected
}

// realButtonState returns the visual state of the "real" button.
func realButtonState(choice RealFakeChoice) ButtonState {
	if choice == ChoseReal {
		return ButtonSelectedReal
	}
	return ButtonUnselected
}

// fakeButtonState returns the visual state of the "fake" button.
func fakeButtonState(choice RealFakeChoice) ButtonState {
	if choice == ChoseFake {
		return ButtonSelectedFake
	}
	return ButtonUnselected
}
