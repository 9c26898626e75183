package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "emphasis and line break",
			in:   "**Réponse:** 4/5\nnext line",
			want: []Segment{
				{Kind: SegmentEmphasis, Text: "Réponse:"},
				{Kind: SegmentText, Text: " 4/5"},
				{Kind: SegmentBreak},
				{Kind: SegmentText, Text: "next line"},
			},
		},
		{
			name: "plain text",
			in:   "just words",
			want: []Segment{{Kind: SegmentText, Text: "just words"}},
		},
		{
			name: "unterminated delimiter stays literal",
			in:   "a **b",
			want: []Segment{{Kind: SegmentText, Text: "a **b"}},
		},
		{
			name: "other markup passes through",
			in:   "_x_ `y` <b>z</b>",
			want: []Segment{{Kind: SegmentText, Text: "_x_ `y` <b>z</b>"}},
		},
		{
			name: "empty emphasis stays literal",
			in:   "****",
			want: []Segment{{Kind: SegmentText, Text: "****"}},
		},
		{
			name: "two spans",
			in:   "**a** and **b**",
			want: []Segment{
				{Kind: SegmentEmphasis, Text: "a"},
				{Kind: SegmentText, Text: " and "},
				{Kind: SegmentEmphasis, Text: "b"},
			},
		},
		{
			name: "emphasis does not cross lines",
			in:   "**a\nb**",
			want: []Segment{
				{Kind: SegmentText, Text: "**a"},
				{Kind: SegmentBreak},
				{Kind: SegmentText, Text: "b**"},
			},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMarkup(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMarkup(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Réponse: 4/5\nnext line", PlainText("**Réponse:** 4/5\nnext line"))
	assert.Equal(t, "a **b", PlainText("a **b"))
}
