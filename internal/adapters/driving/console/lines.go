package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// LineSource reads one answer per line, writing a short prompt first.
type LineSource struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewLineSource creates a source reading from in and prompting on prompt.
func NewLineSource(in io.Reader, prompt io.Writer) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(in), prompt: prompt}
}

// Answer implements AnswerSource. It returns io.ErrUnexpectedEOF when input
// ends before the questionnaire does.
func (s *LineSource) Answer(ctx context.Context, q domain.Question, _ domain.Progress) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if q.Kind == domain.KindRating {
		fmt.Fprintf(s.prompt, "(%d-%d) > ", domain.RatingMin, domain.RatingMax)
	} else {
		fmt.Fprint(s.prompt, "> ")
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return s.scanner.Text(), nil
}
