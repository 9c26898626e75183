package domain

import "strings"

// SegmentKind classifies a parsed markup segment.
type SegmentKind int

// Markup segment kinds.
const (
	SegmentText SegmentKind = iota
	SegmentEmphasis
	SegmentBreak
)

// Segment is one piece of parsed markup.
type Segment struct {
	Kind SegmentKind
	Text string
}

const emphasisDelim = "**"

// ParseMarkup parses the minimal transcript markup: a span delimited by
// double asterisks is emphasised and a newline is a line break. Nothing else
// is interpreted; an unterminated delimiter is kept as literal text.
func ParseMarkup(text string) []Segment {
	var segs []Segment
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			segs = append(segs, Segment{Kind: SegmentBreak})
		}
		segs = appendLine(segs, line)
	}
	return segs
}

func appendLine(segs []Segment, line string) []Segment {
	for line != "" {
		start := strings.Index(line, emphasisDelim)
		if start < 0 {
			return append(segs, Segment{Kind: SegmentText, Text: line})
		}
		end := strings.Index(line[start+len(emphasisDelim):], emphasisDelim)
		if end < 0 {
			return append(segs, Segment{Kind: SegmentText, Text: line})
		}
		end += start + len(emphasisDelim)

		if start > 0 {
			segs = append(segs, Segment{Kind: SegmentText, Text: line[:start]})
		}
		if inner := line[start+len(emphasisDelim) : end]; inner != "" {
			segs = append(segs, Segment{Kind: SegmentEmphasis, Text: inner})
		} else {
			segs = append(segs, Segment{Kind: SegmentText, Text: emphasisDelim + emphasisDelim})
		}
		line = line[end+len(emphasisDelim):]
	}
	return segs
}

// PlainText strips markup, keeping text and line breaks.
func PlainText(text string) string {
	var sb strings.Builder
	for _, seg := range ParseMarkup(text) {
		if seg.Kind == SegmentBreak {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(seg.Text)
	}
	return sb.String()
}
