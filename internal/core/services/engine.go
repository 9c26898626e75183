package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.QuestionnaireRunner = (*Engine)(nil)

// Fixed transcript copy for the run itself.
const (
	welcomeText     = "**Bienvenue sur Vibeyf !**\nRépondez à %d questions pour obtenir des recommandations musicales adaptées à votre profil."
	loadErrorText   = "Impossible de charger le questionnaire. Vérifiez que le serveur est démarré puis réessayez."
	submitErrorText = "Erreur lors de la génération des recommandations. Tapez **r** pour recommencer."
	listHint        = "(plusieurs réponses possibles, séparées par des virgules)"
)

// session is the state of one run. A fresh session is built on every start.
type session struct {
	id         string
	startedAt  time.Time
	sequence   domain.QuestionSequence
	cursor     int
	state      domain.EngineState
	responses  *ResponseStore
	transcript *Transcript
	result     *domain.RecommendationResult
}

// Engine sequences a questionnaire run: it presents one question at a
// time, records answers, submits the completed set and reveals the result.
// The machine is linear and forward-only.
type Engine struct {
	loader     *Loader
	submitter  *Submitter
	renderer   *Renderer
	runs       driven.RunStore
	backendURL string
	now        func() time.Time

	mu      sync.Mutex
	session *session

	obsMu    sync.RWMutex
	observer func(domain.TranscriptEntry)
}

// NewEngine creates an engine. runs may be nil to skip archiving.
func NewEngine(loader *Loader, submitter *Submitter, renderer *Renderer, runs driven.RunStore, backendURL string) *Engine {
	if renderer == nil {
		renderer = NewRenderer(nil)
	}
	return &Engine{
		loader:     loader,
		submitter:  submitter,
		renderer:   renderer,
		runs:       runs,
		backendURL: backendURL,
		now:        time.Now,
		session:    &session{state: domain.StateNotStarted, transcript: NewTranscript(nil), responses: NewResponseStore()},
	}
}

// SetObserver registers a callback invoked for each appended entry.
// The callback runs on the dispatching goroutine and must not call back
// into the engine.
func (e *Engine) SetObserver(fn func(domain.TranscriptEntry)) {
	e.obsMu.Lock()
	defer e.obsMu.Unlock()
	e.observer = fn
}

func (e *Engine) emit(entry domain.TranscriptEntry) {
	e.obsMu.RLock()
	fn := e.observer
	e.obsMu.RUnlock()
	if fn != nil {
		fn(entry)
	}
}

// Start discards any current run and begins a new one.
func (e *Engine) Start(ctx context.Context) error {
	s := &session{
		id:         uuid.New().String(),
		startedAt:  e.now(),
		state:      domain.StateNotStarted,
		responses:  NewResponseStore(),
		transcript: NewTranscript(e.emit),
	}

	e.mu.Lock()
	e.session = s
	e.mu.Unlock()

	logger.Section("Run " + s.id)

	seq, err := e.loader.Load(ctx)
	if err != nil {
		logger.Warn("load failed: %v", err)
		s.transcript.AppendBot(domain.EntryError, loadErrorText)
		return err
	}

	e.mu.Lock()
	if e.session != s {
		e.mu.Unlock()
		return nil
	}
	s.sequence = seq
	s.state = domain.StateAwaitingAnswer
	s.transcript.AppendBot(domain.EntryMessage, fmt.Sprintf(welcomeText, seq.Len()))
	return e.advanceLocked(ctx, s)
}

// Dispatch applies a command to the current run.
func (e *Engine) Dispatch(ctx context.Context, cmd domain.Command) error {
	switch c := cmd.(type) {
	case domain.AnswerSubmitted:
		return e.answer(ctx, c)
	case domain.RestartRequested:
		logger.Debug("restart requested")
		return e.Start(ctx)
	default:
		return fmt.Errorf("%w: unknown command %T", domain.ErrInvalidInput, cmd)
	}
}

func (e *Engine) answer(ctx context.Context, cmd domain.AnswerSubmitted) error {
	e.mu.Lock()
	s := e.session
	if s.state != domain.StateAwaitingAnswer {
		e.mu.Unlock()
		return fmt.Errorf("%w: cannot answer while %s", domain.ErrInvalidState, s.state)
	}

	q := s.sequence[s.cursor]
	if cmd.QuestionID != q.ID {
		e.mu.Unlock()
		return &domain.ValidationError{QuestionID: cmd.QuestionID, Reason: "not the current question"}
	}

	shown, err := e.record(s, q, cmd)
	if err != nil {
		e.mu.Unlock()
		return err
	}

	s.transcript.AppendUser(q.Prompt + "\n**Réponse:** " + shown)
	s.cursor++
	return e.advanceLocked(ctx, s)
}

// record validates and stores an answer, returning its display form.
func (e *Engine) record(s *session, q domain.Question, cmd domain.AnswerSubmitted) (string, error) {
	if q.Kind == domain.KindRating {
		if !domain.ValidRating(cmd.Rating) {
			return "", &domain.ValidationError{QuestionID: q.ID, Reason: "select a rating from 1 to 5"}
		}
		if err := s.responses.SetRating(q.ID, cmd.Rating); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d/%d", cmd.Rating, domain.RatingMax), nil
	}

	if strings.TrimSpace(cmd.Text) == "" {
		return "", &domain.ValidationError{QuestionID: q.ID, Reason: "answer cannot be empty"}
	}
	if q.IsList && len(domain.SplitList(cmd.Text)) == 0 {
		return "", &domain.ValidationError{QuestionID: q.ID, Reason: "list answer has no items"}
	}
	answer, err := s.responses.SetOpen(q.ID, cmd.Text, q.IsList)
	if err != nil {
		return "", err
	}
	return answer.Display(), nil
}

// advanceLocked presents the question under the cursor, or submits once
// every question is answered. It must be called with e.mu held and
// releases it.
func (e *Engine) advanceLocked(ctx context.Context, s *session) error {
	if s.cursor < s.sequence.Len() {
		q := s.sequence[s.cursor]
		progress := domain.Progress{Index: s.cursor + 1, Total: s.sequence.Len()}
		s.transcript.Append(domain.TranscriptEntry{
			Origin:   domain.OriginBot,
			Kind:     domain.EntryQuestion,
			Text:     questionText(q, progress),
			Progress: progress,
			Question: &q,
		})
		e.mu.Unlock()
		return nil
	}

	s.state = domain.StateSubmitting
	responses := s.responses.Snapshot()
	e.mu.Unlock()

	return e.submit(ctx, s, responses)
}

func (e *Engine) submit(ctx context.Context, s *session, responses domain.ResponseSet) error {
	result, err := e.submitter.Submit(ctx, responses)
	if err != nil {
		logger.Warn("submission failed: %v", err)
		s.transcript.AppendBot(domain.EntryError, submitErrorText)
		return err
	}

	e.renderer.RenderResult(ctx, s.transcript, result)

	e.mu.Lock()
	s.result = result
	s.state = domain.StateDone
	e.mu.Unlock()

	e.archive(ctx, s, responses, result)
	return nil
}

// archive keeps the completed run. Failures are logged only.
func (e *Engine) archive(ctx context.Context, s *session, responses domain.ResponseSet, result *domain.RecommendationResult) {
	if e.runs == nil {
		return
	}
	record := &domain.RunRecord{
		ID:          s.id,
		StartedAt:   s.startedAt,
		CompletedAt: e.now(),
		BackendURL:  e.backendURL,
		Responses:   responses,
		Result:      *result,
	}
	if err := e.runs.Save(ctx, record); err != nil {
		logger.Warn("archive run %s: %v", s.id, err)
		return
	}
	logger.Debug("archived run %s", s.id)
}

func questionText(q domain.Question, p domain.Progress) string {
	lines := []string{fmt.Sprintf("**Question %s**", p), q.Prompt}
	switch {
	case q.Kind == domain.KindRating && q.Scale != "":
		lines = append(lines, "("+q.Scale+")")
	case q.Kind == domain.KindOpen && q.IsList:
		lines = append(lines, listHint)
	}
	return strings.Join(lines, "\n")
}

// State returns the current lifecycle state.
func (e *Engine) State() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.state
}

// Current returns the question awaiting an answer.
func (e *Engine) Current() (domain.Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.session
	if s.state != domain.StateAwaitingAnswer {
		return domain.Question{}, false
	}
	return s.sequence[s.cursor], true
}

// Progress returns the 1-based position of the current question.
// The zero value is returned outside the awaiting state.
func (e *Engine) Progress() domain.Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.session
	if s.state != domain.StateAwaitingAnswer {
		return domain.Progress{}
	}
	return domain.Progress{Index: s.cursor + 1, Total: s.sequence.Len()}
}

// Cursor returns the number of questions answered in the current run.
func (e *Engine) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.cursor
}

// Transcript returns a copy of the current run's entries.
func (e *Engine) Transcript() []domain.TranscriptEntry {
	e.mu.Lock()
	t := e.session.transcript
	e.mu.Unlock()
	return t.Entries()
}

// Responses returns a copy of the answers recorded in the current run.
func (e *Engine) Responses() domain.ResponseSet {
	e.mu.Lock()
	r := e.session.responses
	e.mu.Unlock()
	return r.Snapshot()
}

// Result returns the scoring result, or nil until the run is done.
func (e *Engine) Result() *domain.RecommendationResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.result
}

// SessionID returns the identifier of the current run.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.id
}
