// Package transcript renders conversation entries for the terminal.
// It is shared by the chat TUI and the plain console runner.
package transcript

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// Speaker labels.
const (
	BotLabel  = "Vibeyf"
	UserLabel = "Vous"
)

// Body offsets: user replies sit further right than bot messages.
const (
	indent     = 2
	userIndent = 6
)

const boostMarker = "🎯"

// Renderer turns transcript entries into styled terminal text.
type Renderer struct {
	styles *styles.Styles
	width  int
}

// NewRenderer creates a renderer. A zero width disables wrapping.
func NewRenderer(s *styles.Styles) *Renderer {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Renderer{styles: s}
}

// SetWidth sets the wrap width.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Markup renders transcript markup: emphasised spans in bold, line breaks
// kept, everything else verbatim.
func (r *Renderer) Markup(text string) string {
	var sb strings.Builder
	for _, seg := range domain.ParseMarkup(text) {
		switch seg.Kind {
		case domain.SegmentBreak:
			sb.WriteByte('\n')
		case domain.SegmentEmphasis:
			sb.WriteString(r.styles.Emphasis.Render(seg.Text))
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

// Entry renders one entry as a speaker label followed by its indented body.
// Recommendation entries with cards render each card in its own box.
func (r *Renderer) Entry(e domain.TranscriptEntry) string {
	label := r.styles.BotLabel.Render(BotLabel)
	offset := indent
	if e.Origin == domain.OriginUser {
		label = r.styles.UserLabel.Render(UserLabel)
		offset = userIndent
	}

	var body string
	switch {
	case e.Kind == domain.EntryRecommendations && len(e.Cards) > 0:
		body = r.cards(e.Cards, offset)
	case e.Kind == domain.EntryError:
		body = r.styles.Error.Render(r.Markup(e.Text))
	default:
		body = r.Markup(e.Text)
	}

	style := lipgloss.NewStyle().PaddingLeft(offset)
	if r.width > offset {
		style = style.Width(r.width)
	}
	return label + "\n" + style.Render(body)
}

func (r *Renderer) cards(cards []domain.RecommendationCard, offset int) string {
	box := r.styles.Border.Padding(0, 1)
	// The box width excludes its two border columns.
	if r.width > offset+4 {
		box = box.Width(r.width - offset - 2)
	}

	parts := make([]string, 0, len(cards)+1)
	parts = append(parts, r.styles.Emphasis.Render("Recommandations"))
	for _, c := range cards {
		parts = append(parts, box.Render(r.Card(c)))
	}
	return strings.Join(parts, "\n")
}

// Card renders the content of one recommendation card: a ranked title with
// its score, the track or item details, then the score breakdown.
func (r *Renderer) Card(c domain.RecommendationCard) string {
	title := r.styles.Emphasis.Render(fmt.Sprintf("#%d %s", c.Rank, c.Title)) +
		" " + r.styles.Success.Render(fmt.Sprintf("%d%%", c.ScorePercent))
	if c.Boosted {
		title += " " + boostMarker
	}

	lines := []string{title}
	if c.IsTrack() {
		if c.Artist != "" {
			lines = append(lines, c.Artist)
		}
		if c.Genre != "" {
			lines = append(lines, r.styles.Muted.Render("Genre : ")+c.Genre)
		}
		if c.ListenURL != "" {
			lines = append(lines, r.styles.Muted.Render("Écouter : ")+c.ListenURL)
		}
	} else if c.Description != "" {
		lines = append(lines, c.Description)
	}
	lines = append(lines, r.styles.Muted.Render(
		fmt.Sprintf("Sémantique %d%% · Mood %d%% · Préférences %d%%", c.Semantic, c.Mood, c.Preference)))
	return strings.Join(lines, "\n")
}

// Entries renders a sequence of entries separated by blank lines.
func (r *Renderer) Entries(entries []domain.TranscriptEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, r.Entry(e))
	}
	return strings.Join(parts, "\n\n")
}
