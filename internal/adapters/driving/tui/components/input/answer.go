// Package input provides the free-text answer input for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
)

const (
	defaultPlaceholder = "Votre réponse..."
	charLimit          = 500
	minWidth           = 20
)

// AnswerInput wraps a bubbles textinput for open questions.
type AnswerInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewAnswerInput creates a new answer input component.
func NewAnswerInput(s *styles.Styles) *AnswerInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = defaultPlaceholder
	ti.Focus()
	ti.CharLimit = charLimit
	ti.Width = 50

	return &AnswerInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the answer input.
func (a *AnswerInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (a *AnswerInput) Update(msg tea.Msg) (*AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.textinput, cmd = a.textinput.Update(msg)
	return a, cmd
}

// View renders the answer input.
func (a *AnswerInput) View() string {
	label := a.styles.Title.Render("> ")
	field := a.styles.InputField.Render(a.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (a *AnswerInput) Value() string {
	return a.textinput.Value()
}

// SetValue sets the input value.
func (a *AnswerInput) SetValue(value string) {
	a.textinput.SetValue(value)
}

// SetPlaceholder sets the hint shown while empty. An empty hint restores
// the default one.
func (a *AnswerInput) SetPlaceholder(hint string) {
	if hint == "" {
		hint = defaultPlaceholder
	}
	a.textinput.Placeholder = hint
}

// Placeholder returns the current hint.
func (a *AnswerInput) Placeholder() string {
	return a.textinput.Placeholder
}

// Focus sets focus on the input.
func (a *AnswerInput) Focus() tea.Cmd {
	return a.textinput.Focus()
}

// Blur removes focus from the input.
func (a *AnswerInput) Blur() {
	a.textinput.Blur()
}

// Focused returns whether the input is focused.
func (a *AnswerInput) Focused() bool {
	return a.textinput.Focused()
}

// SetWidth sets the width of the input.
func (a *AnswerInput) SetWidth(width int) {
	a.width = width
	// Account for the prompt and border
	inputWidth := width - 8
	if inputWidth < minWidth {
		inputWidth = minWidth
	}
	a.textinput.Width = inputWidth
}

// Width returns the current width.
func (a *AnswerInput) Width() int {
	return a.width
}

// Reset clears the input and restores the default hint.
func (a *AnswerInput) Reset() {
	a.textinput.Reset()
	a.textinput.Placeholder = defaultPlaceholder
}
