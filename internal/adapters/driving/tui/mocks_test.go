package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
)

// Ensure MockRunner implements the interface.
var _ driving.QuestionnaireRunner = (*MockRunner)(nil)

// MockRunner implements driving.QuestionnaireRunner for testing.
type MockRunner struct {
	StartFunc    func(ctx context.Context) error
	DispatchFunc func(ctx context.Context, cmd domain.Command) error

	mu         sync.Mutex
	state      domain.EngineState
	current    *domain.Question
	progress   domain.Progress
	observer   func(domain.TranscriptEntry)
	starts     int
	dispatched []domain.Command
}

func (m *MockRunner) Start(ctx context.Context) error {
	m.mu.Lock()
	m.starts++
	m.mu.Unlock()
	if m.StartFunc != nil {
		return m.StartFunc(ctx)
	}
	return nil
}

func (m *MockRunner) Dispatch(ctx context.Context, cmd domain.Command) error {
	m.mu.Lock()
	m.dispatched = append(m.dispatched, cmd)
	m.mu.Unlock()
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, cmd)
	}
	return nil
}

func (m *MockRunner) State() domain.EngineState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MockRunner) Current() (domain.Question, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return domain.Question{}, false
	}
	return *m.current, true
}

func (m *MockRunner) Progress() domain.Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

func (m *MockRunner) Transcript() []domain.TranscriptEntry {
	return nil
}

func (m *MockRunner) Result() *domain.RecommendationResult {
	return nil
}

func (m *MockRunner) SetObserver(fn func(domain.TranscriptEntry)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observer = fn
}

// awaiting puts the mock on a pending question.
func (m *MockRunner) awaiting(q domain.Question, p domain.Progress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = domain.StateAwaitingAnswer
	m.current = &q
	m.progress = p
}

// finished puts the mock in the done state.
func (m *MockRunner) finished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = domain.StateDone
	m.current = nil
	m.progress = domain.Progress{}
}

func (m *MockRunner) lastDispatched() domain.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.dispatched) == 0 {
		return nil
	}
	return m.dispatched[len(m.dispatched)-1]
}

var (
	ratingQuestion = domain.Question{
		ID:     "q1_energie",
		Kind:   domain.KindRating,
		Prompt: "J'aime la musique énergique",
		Scale:  "1 = pas du tout, 5 = tout à fait",
	}
	listQuestion = domain.Question{
		ID:          "qo4_genres",
		Kind:        domain.KindOpen,
		Prompt:      "Vos genres préférés ?",
		Placeholder: "rock, jazz",
		Format:      domain.FormatList,
		IsList:      true,
	}
)

// stepResult runs the non-blocking parts of a step command and returns the
// StepCompleted it produces, if any.
func stepResult(cmd tea.Cmd) (messages.StepCompleted, bool) {
	if cmd == nil {
		return messages.StepCompleted{}, false
	}
	switch msg := cmd().(type) {
	case messages.StepCompleted:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if res, ok := stepResult(c); ok {
				return res, true
			}
		}
	}
	return messages.StepCompleted{}, false
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
