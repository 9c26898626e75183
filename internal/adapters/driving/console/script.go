package console

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// ScriptSource answers from a prepared map keyed by question id.
//
// The YAML form is a flat mapping; list answers may be written either as a
// sequence or as a comma-separated string:
//
//	q1_energie: 4
//	qo1_mood: calme
//	qo4_genres: [rock, jazz]
//
// Answers travel as comma-separated text, so a sequence item may not
// itself contain a comma.
type ScriptSource struct {
	answers map[string]string
}

// NewScriptSource creates a source from ready answers.
func NewScriptSource(answers map[string]string) *ScriptSource {
	return &ScriptSource{answers: answers}
}

// LoadScript reads a YAML answer file.
func LoadScript(path string) (*ScriptSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes YAML answers. Scalars are kept as written; sequences
// are joined with commas and reject items containing one.
func ParseScript(data []byte) (*ScriptSource, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}

	answers := make(map[string]string, len(raw))
	for id, node := range raw {
		switch node.Kind {
		case yaml.ScalarNode:
			answers[id] = node.Value
		case yaml.SequenceNode:
			items := make([]string, 0, len(node.Content))
			for _, item := range node.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("parse answers: %s: list items must be scalars", id)
				}
				if strings.Contains(item.Value, ",") {
					return nil, fmt.Errorf("parse answers: %s: list item %q contains a comma", id, item.Value)
				}
				items = append(items, item.Value)
			}
			answers[id] = strings.Join(items, ", ")
		default:
			return nil, fmt.Errorf("parse answers: %s: unsupported value", id)
		}
	}
	return &ScriptSource{answers: answers}, nil
}

// Answer implements AnswerSource. A question without a scripted answer is
// an error wrapping domain.ErrNotFound.
func (s *ScriptSource) Answer(ctx context.Context, q domain.Question, _ domain.Progress) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a, ok := s.answers[q.ID]
	if !ok {
		return "", fmt.Errorf("%w: no scripted answer for %s", domain.ErrNotFound, q.ID)
	}
	return a, nil
}

// Len returns the number of scripted answers.
func (s *ScriptSource) Len() int {
	return len(s.answers)
}
