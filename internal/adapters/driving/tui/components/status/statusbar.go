// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
)

// State represents the current run phase for display.
type State string

const (
	StateLoading    State = "loading"
	StateRating     State = "rating"
	StateText       State = "text"
	StateSubmitting State = "submitting"
	StateFinished   State = "finished"
	StateError      State = "error"
)

// Bar displays run status and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	indicator string
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the phase, prefixed by the busy indicator if any.
func (s *Bar) renderLeft() string {
	var text string
	switch s.state {
	case StateLoading:
		text = s.styles.Muted.Render("Chargement du questionnaire...")
	case StateSubmitting:
		text = s.styles.Muted.Render("Génération des recommandations...")
	case StateError:
		if s.message != "" {
			text = s.styles.Error.Render(s.message)
		} else {
			text = s.styles.Error.Render("Erreur")
		}
	case StateRating, StateText:
		// The question entry carries the position; the bar names the phase.
		text = s.styles.Normal.Render(phaseLabel(s.state))
		if s.message != "" {
			text += " " + s.styles.Warning.Render(s.message)
		}
	case StateFinished:
		text = s.styles.Success.Render("Terminé")
	default:
		text = s.styles.Muted.Render(string(s.state))
	}

	if s.indicator != "" {
		return s.indicator + " " + text
	}
	return text
}

func phaseLabel(state State) string {
	if state == StateRating {
		return "Votre note"
	}
	return "Votre réponse"
}

// renderRight renders keybinding hints for the current phase.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateRating:
		bindings = s.keymap.RatingHelp()
	case StateText:
		bindings = s.keymap.TextHelp()
	case StateFinished, StateError:
		bindings = s.keymap.FinishedHelp()
	default:
		bindings = []key.Binding{s.keymap.Quit}
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a message shown next to the phase.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetIndicator sets the busy indicator, typically a spinner frame.
func (s *Bar) SetIndicator(indicator string) {
	s.indicator = indicator
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops the message and indicator, keeping the state.
func (s *Bar) Clear() {
	s.message = ""
	s.indicator = ""
}
