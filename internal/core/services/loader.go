package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driving.QuestionnaireService = (*Loader)(nil)

// Loader fetches the question set and flattens it into run order.
type Loader struct {
	source      driven.QuestionnaireSource
	listMarkers []string
}

// NewLoader creates a loader. listMarkers are the identifier substrings
// used to flag list answers when the backend does not declare a format.
func NewLoader(source driven.QuestionnaireSource, listMarkers []string) *Loader {
	return &Loader{
		source:      source,
		listMarkers: listMarkers,
	}
}

// Load fetches the questionnaire and returns it as a validated sequence,
// rating questions first. Every failure wraps domain.ErrLoad.
func (l *Loader) Load(ctx context.Context) (domain.QuestionSequence, error) {
	if l.source == nil {
		return nil, fmt.Errorf("%w: no questionnaire source configured", domain.ErrLoad)
	}

	defer logger.Timed("questionnaire load")()

	q, err := l.source.FetchQuestionnaire(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrLoad) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrLoad)
	}

	for i := range q.Open {
		q.Open[i].IsList = l.isList(q.Open[i])
	}

	seq := q.Flatten()
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}

	logger.Debug("loaded %d rating and %d open questions", len(q.Rating), len(q.Open))
	return seq, nil
}

func (l *Loader) isList(q domain.Question) bool {
	switch q.Format {
	case domain.FormatList:
		return true
	case domain.FormatText:
		return false
	}

	id := strings.ToLower(q.ID)
	for _, marker := range l.listMarkers {
		if marker != "" && strings.Contains(id, strings.ToLower(marker)) {
			logger.Warn("question %s has no declared format, treating as list (matched %q)", q.ID, marker)
			return true
		}
	}
	return false
}
