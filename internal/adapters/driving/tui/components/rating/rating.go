// Package rating provides the five-option rating selector for the TUI.
package rating

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// Selector picks a rating between domain.RatingMin and domain.RatingMax.
// It starts with nothing selected.
type Selector struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	value  int
	scale  string
}

// NewSelector creates a new rating selector.
func NewSelector(s *styles.Styles, km *keymap.KeyMap) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Selector{styles: s, keymap: km}
}

// Update handles selection keys: left and right move, digits select directly.
func (s *Selector) Update(msg tea.Msg) (*Selector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, s.keymap.Left):
		if s.value == 0 {
			s.value = domain.RatingMin
		} else if s.value > domain.RatingMin {
			s.value--
		}
	case keymap.Matches(keyStr, s.keymap.Right):
		if s.value < domain.RatingMax {
			s.value++
		}
	case len(keyStr) == 1 && keyStr[0] >= '0' && keyStr[0] <= '9':
		if v := int(keyStr[0] - '0'); domain.ValidRating(v) {
			s.value = v
		}
	}
	return s, nil
}

// View renders the options with the current one highlighted.
func (s *Selector) View() string {
	opts := make([]string, 0, domain.RatingMax)
	for _, v := range domain.RatingOptions() {
		label := fmt.Sprintf(" %d ", v)
		if v == s.value {
			opts = append(opts, s.styles.Selected.Render(label))
			continue
		}
		opts = append(opts, s.styles.Normal.Render(label))
	}

	out := strings.Join(opts, " ")
	if s.scale != "" {
		out += "\n" + s.styles.Muted.Render(s.scale)
	}
	return out
}

// Value returns the selected rating, or 0 when nothing is selected.
func (s *Selector) Value() int {
	return s.value
}

// SetScale sets the scale legend shown under the options.
func (s *Selector) SetScale(scale string) {
	s.scale = scale
}

// Reset clears the selection and legend.
func (s *Selector) Reset() {
	s.value = 0
	s.scale = ""
}
