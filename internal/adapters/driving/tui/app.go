package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/components/rating"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/components/transcript"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// Layout rows outside the transcript viewport.
const (
	headerHeight = 2
	promptHeight = 4
	statusHeight = 1
	minViewport  = 3

	entryBuffer = 64
)

// Status bar copy.
const (
	ratingHint     = "Choisissez une note entre 1 et 5."
	textHint       = "La réponse ne peut pas être vide."
	loadFailure    = "Questionnaire indisponible."
	submitFailure  = "Échec de la génération des recommandations."
	finishedPrompt = "Tapez r pour recommencer ou q pour quitter."
)

// App is the chat TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context passed to runner calls.
	ctx context.Context

	styles   *styles.Styles
	keymap   *keymap.KeyMap
	renderer *transcript.Renderer

	viewport viewport.Model
	spinner  spinner.Model
	input    *input.AnswerInput
	rating   *rating.Selector
	status   *status.Bar

	// entries receives transcript entries from the runner's observer.
	entries   chan domain.TranscriptEntry
	done      chan struct{}
	closeOnce sync.Once

	// log is the transcript of the current run as rendered.
	log []domain.TranscriptEntry

	// busy is true while a start or dispatch call is in flight.
	busy bool

	// err holds the last step error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// It registers itself as the runner's transcript observer.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	a := &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		keymap:   km,
		renderer: transcript.NewRenderer(s),
		viewport: viewport.New(80, 20),
		spinner:  sp,
		input:    input.NewAnswerInput(s),
		rating:   rating.NewSelector(s, km),
		status:   status.NewBar(s, km),
		entries:  make(chan domain.TranscriptEntry, entryBuffer),
		done:     make(chan struct{}),
	}
	ports.Runner.SetObserver(a.publish)
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// publish hands an entry to the UI loop. It runs on the runner's goroutine.
func (a *App) publish(e domain.TranscriptEntry) {
	select {
	case a.entries <- e:
	case <-a.done:
	}
}

// waitForEntry listens for the next published entry.
func (a *App) waitForEntry() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-a.entries:
			return messages.EntryAppended{Entry: e}
		case <-a.done:
			return nil
		}
	}
}

// Init implements tea.Model. It starts the first run.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Vibeyf"),
		a.waitForEntry(),
		a.step(nil),
	)
}

// step runs a runner call off the render loop: Start when cmd is nil,
// Dispatch otherwise.
func (a *App) step(cmd domain.Command) tea.Cmd {
	_, restart := cmd.(domain.RestartRequested)
	restart = restart || cmd == nil

	a.busy = true
	a.status.Clear()
	a.input.Blur()
	if restart {
		a.status.SetState(status.StateLoading)
	}

	runner := a.ports.Runner
	ctx := a.ctx
	run := func() tea.Msg {
		var err error
		if cmd == nil {
			err = runner.Start(ctx)
		} else {
			err = runner.Dispatch(ctx, cmd)
		}
		return messages.StepCompleted{Restart: restart, Err: err}
	}
	return tea.Batch(a.spinner.Tick, run)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.busy {
			a.spinner, cmd = a.spinner.Update(msg)
			a.status.SetIndicator(a.spinner.View())
			return a, cmd
		}
		return a, nil

	case messages.EntryAppended:
		// A new run's transcript restarts at sequence zero.
		if msg.Entry.Seq == 0 {
			a.log = a.log[:0]
		}
		a.log = append(a.log, msg.Entry)
		a.refreshTranscript()
		return a, a.waitForEntry()

	case messages.StepCompleted:
		return a, a.completeStep(msg)

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other input housekeeping
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(keyStr, a.keymap.ScrollUp):
		a.viewport.HalfViewUp()
		return a, nil
	case keymap.Matches(keyStr, a.keymap.ScrollDown):
		a.viewport.HalfViewDown()
		return a, nil
	}

	if a.busy {
		return a, nil
	}

	q, ok := a.ports.Runner.Current()
	if !ok {
		switch {
		case keymap.Matches(keyStr, a.keymap.Restart):
			return a, a.step(domain.RestartRequested{})
		case keymap.Matches(keyStr, a.keymap.Exit):
			return a, tea.Quit
		}
		return a, nil
	}

	var cmd tea.Cmd
	if q.Kind == domain.KindRating {
		if keymap.Matches(keyStr, a.keymap.Submit) {
			return a, a.submitAnswer(domain.AnswerSubmitted{QuestionID: q.ID, Rating: a.rating.Value()})
		}
		a.rating, cmd = a.rating.Update(msg)
		return a, cmd
	}

	if keymap.Matches(keyStr, a.keymap.Submit) {
		return a, a.submitAnswer(domain.AnswerSubmitted{QuestionID: q.ID, Text: a.input.Value()})
	}
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitAnswer dispatches an answer, flagging the submission phase when it
// completes the questionnaire.
func (a *App) submitAnswer(answer domain.AnswerSubmitted) tea.Cmd {
	last := a.ports.Runner.Progress()
	cmd := a.step(answer)
	if !last.IsZero() && last.Index == last.Total {
		a.status.SetState(status.StateSubmitting)
	}
	return cmd
}

// completeStep reacts to a finished start or dispatch call.
func (a *App) completeStep(msg messages.StepCompleted) tea.Cmd {
	a.busy = false
	a.status.SetIndicator("")

	// A rejected answer blocks on the same prompt without a transcript entry.
	var vErr *domain.ValidationError
	if errors.As(msg.Err, &vErr) {
		q, _ := a.ports.Runner.Current()
		if q.Kind == domain.KindRating {
			a.status.SetState(status.StateRating)
			a.status.SetMessage(ratingHint)
			return nil
		}
		a.status.SetState(status.StateText)
		a.status.SetMessage(textHint)
		return a.input.Focus()
	}

	a.err = msg.Err
	cmd := a.syncPrompt()
	if msg.Err != nil {
		a.status.SetState(status.StateError)
		a.status.SetMessage(failureMessage(msg.Err))
	}
	return cmd
}

// syncPrompt prepares the prompt area for the runner's current state.
func (a *App) syncPrompt() tea.Cmd {
	a.status.Clear()
	a.rating.Reset()
	a.input.Reset()
	a.input.Blur()

	switch a.ports.Runner.State() {
	case domain.StateAwaitingAnswer:
		q, _ := a.ports.Runner.Current()
		if q.Kind == domain.KindRating {
			a.status.SetState(status.StateRating)
			a.rating.SetScale(q.Scale)
			return nil
		}
		a.status.SetState(status.StateText)
		a.input.SetPlaceholder(q.Placeholder)
		return a.input.Focus()
	case domain.StateDone:
		a.status.SetState(status.StateFinished)
	default:
		a.status.SetState(status.StateError)
	}
	return nil
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrLoad):
		return loadFailure
	case errors.Is(err, domain.ErrSubmission):
		return submitFailure
	default:
		return err.Error()
	}
}

func (a *App) refreshTranscript() {
	a.viewport.SetContent(a.renderer.Entries(a.log))
	a.viewport.GotoBottom()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialisation..."
	}

	header := a.styles.Title.Render("Vibeyf") +
		a.styles.Muted.Render(" · recommandations musicales") + "\n"

	prompt := lipgloss.NewStyle().Height(promptHeight).Render(a.promptView())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.viewport.View(),
		prompt,
		a.status.View(),
	)
}

func (a *App) promptView() string {
	if a.busy {
		return ""
	}
	q, ok := a.ports.Runner.Current()
	if !ok {
		return a.styles.Muted.Render(finishedPrompt)
	}
	if q.Kind == domain.KindRating {
		return a.rating.View()
	}
	return a.input.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Close releases the observer so an in-flight step never blocks on a
// closed UI.
func (a *App) Close() {
	a.closeOnce.Do(func() { close(a.done) })
}

// Log returns the rendered transcript entries of the current run.
func (a *App) Log() []domain.TranscriptEntry {
	return a.log
}

// Busy returns whether a runner call is in flight.
func (a *App) Busy() bool {
	return a.busy
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Err returns the last step error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and lays out the components.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	vpHeight := height - headerHeight - promptHeight - statusHeight
	if vpHeight < minViewport {
		vpHeight = minViewport
	}
	a.viewport.Width = width
	a.viewport.Height = vpHeight
	a.renderer.SetWidth(width)
	a.input.SetWidth(width)
	a.status.SetWidth(width)
	a.refreshTranscript()
}
