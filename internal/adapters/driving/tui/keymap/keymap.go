// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the chat TUI.
type KeyMap struct {
	// Quit exits the application at any time.
	Quit key.Binding

	// Exit leaves once no question is pending.
	Exit key.Binding

	// Submit sends the current answer.
	Submit key.Binding

	// Left moves the rating selection down.
	Left key.Binding

	// Right moves the rating selection up.
	Right key.Binding

	// Restart begins a new questionnaire.
	Restart key.Binding

	// ScrollUp scrolls the transcript up one page.
	ScrollUp key.Binding

	// ScrollDown scrolls the transcript down one page.
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quitter"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quitter"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "valider"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "moins"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "plus"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recommencer"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "défiler"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "défiler"),
		),
	}
}

// RatingHelp returns keybindings shown while a rating question is pending.
func (k *KeyMap) RatingHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Submit, k.Quit}
}

// TextHelp returns keybindings shown while an open question is pending.
func (k *KeyMap) TextHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ScrollUp, k.Quit}
}

// FinishedHelp returns keybindings shown once no question is pending.
func (k *KeyMap) FinishedHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Exit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
