// Package drill implements the active drill screen: an asynchronously
// fetched question batch served one question at a time under an optional
// per-question countdown.
package drill

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sambit/prepdrill/internal/coach"
	engine "github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/questiongen"
	"github.com/sambit/prepdrill/internal/router"
	"github.com/sambit/prepdrill/internal/screen"
	"github.com/sambit/prepdrill/internal/screens/results"
	"github.com/sambit/prepdrill/internal/ui/components"
	"github.com/sambit/prepdrill/internal/ui/layout"
	"github.com/sambit/prepdrill/internal/user"
)

// fetchTimeout bounds the batch fetch. A drill that has not loaded in a
// minute is not going to.
const fetchTimeout = 60 * time.Second

// DrillScreen implements screen.Screen for an active drill.
type DrillScreen struct {
	sess    *user.Session
	fetcher *questiongen.Fetcher
	coach   *coach.Coach
	topic   engine.Topic

	machine   *engine.Machine
	questions []engine.Question

	// gen tags async fetches so a completion arriving after the screen
	// moved on is recognized as stale and dropped.
	gen     int
	loading bool

	input    components.TextInput
	options  components.OptionList
	mcActive bool

	remainingSec       int
	showingQuitConfirm bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.EscHandler = (*DrillScreen)(nil)

// New creates a DrillScreen for the given topic. The drill mode (timed or
// untimed) comes from the session context at construction time.
func New(sess *user.Session, fetcher *questiongen.Fetcher, coachSvc *coach.Coach, topic engine.Topic) *DrillScreen {
	return &DrillScreen{
		sess:    sess,
		fetcher: fetcher,
		coach:   coachSvc,
		topic:   topic,
		gen:     1,
		loading: true,
	}
}

func (s *DrillScreen) Title() string {
	return "Drill: " + s.topic.DisplayName()
}

// HandlesEsc keeps the router from popping an in-progress drill; Esc is
// routed here so it can raise the quit confirmation instead.
func (s *DrillScreen) HandlesEsc() bool {
	return true
}

func (s *DrillScreen) Init() tea.Cmd {
	return s.fetchBatch()
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.loading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+S", Description: "Skip"},
	}
	if s.mcActive {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Select"}}, hints...)
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "End drill"})
	return hints
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return s.handleBatchReady(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.active() && !s.mcActive && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// fetchBatch requests the question batch asynchronously.
func (s *DrillScreen) fetchBatch() tea.Cmd {
	gen := s.gen
	fetcher := s.fetcher
	topic := s.topic
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		questions, err := fetcher.Fetch(ctx, topic, engine.DefaultCount)
		return batchReadyMsg{Gen: gen, Questions: questions, Err: err}
	}
}

func (s *DrillScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.gen {
		return s, nil
	}

	// A failed or empty fetch means no drill: route straight back to the
	// topic menu without an error dialog.
	if msg.Err != nil || len(msg.Questions) == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	machine, err := engine.NewMachine(s.topic, msg.Questions, s.sess.Mode, time.Now())
	if err != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	s.machine = machine
	s.questions = msg.Questions
	s.loading = false
	s.setupQuestion()

	cmds := []tea.Cmd{s.input.Init()}
	if s.sess.Mode.Timed() {
		cmds = append(cmds, tickCmd())
	}
	return s, tea.Batch(cmds...)
}

func (s *DrillScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.machine == nil || s.machine.State() != engine.StateActive {
		return s, nil
	}

	now := time.Time(msg)
	if left, timed := s.machine.Remaining(now); timed {
		s.remainingSec = int(left.Round(time.Second).Seconds())
	}

	// The countdown keeps running through the quit confirmation; expiry
	// ends the question regardless of what is on screen.
	if s.machine.Expired(now) {
		outcome, err := s.machine.Expire(now)
		if err != nil {
			return s, tickCmd()
		}
		return s, tea.Batch(s.advance(outcome, now), tickCmd())
	}

	return s, tickCmd()
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.loading {
		if key == "esc" {
			// Abandon the fetch; a late completion is dropped by its
			// destination screen as an unknown message.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if !s.active() {
		return s, nil
	}

	now := time.Now()

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil

	case "enter":
		return s.submitAnswer(now)

	case "ctrl+s":
		outcome, err := s.machine.Skip(now)
		if err != nil {
			return s, nil
		}
		return s, s.advance(outcome, now)
	}

	if s.mcActive {
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer records the current answer. An empty submit is rejected by
// the machine and ignored here: the question stays up and the countdown
// keeps running.
func (s *DrillScreen) submitAnswer(now time.Time) (screen.Screen, tea.Cmd) {
	var answer string
	if s.mcActive {
		answer = s.options.Value()
	} else {
		answer = s.input.Value()
	}

	outcome, err := s.machine.Submit(answer, now)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyAnswer) {
			return s, nil
		}
		return s, nil
	}

	return s, s.advance(outcome, now)
}

// advance moves to the next question, or finalizes the drill and swaps in
// the results screen when the last question has been recorded.
func (s *DrillScreen) advance(outcome engine.Outcome, now time.Time) tea.Cmd {
	if outcome.Done {
		res, err := s.machine.Finalize(now)
		if err != nil {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		resultsScreen := results.New(s.sess, s.coach, res, s.questions)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultsScreen}
		}
	}

	s.setupQuestion()
	return s.input.Init()
}

// setupQuestion prepares the input widgets for the active question.
func (s *DrillScreen) setupQuestion() {
	q := s.machine.Current()
	if q == nil {
		return
	}

	if len(q.Options) > 0 {
		s.mcActive = true
		s.options = components.NewOptionList(q.Options)
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("your answer", 32)
	}

	s.remainingSec = int(s.sess.Mode.QuestionBudget.Seconds())
}

func (s *DrillScreen) active() bool {
	return s.machine != nil && s.machine.State() == engine.StateActive
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
