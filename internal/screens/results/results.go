// Package results implements the post-drill summary screen: the score
// card, a reviewable per-question breakdown, and LLM coaching advice.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/coach"
	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/screen"
	"github.com/sambit/prepdrill/internal/ui/layout"
	"github.com/sambit/prepdrill/internal/ui/theme"
	"github.com/sambit/prepdrill/internal/user"
)

// adviceTimeout bounds the coaching request. Advice is decoration; the
// results stay useful without it.
const adviceTimeout = 30 * time.Second

// adviceReadyMsg is sent when the coaching request completes. Gen ties
// the completion to the request that produced it.
type adviceReadyMsg struct {
	Gen    int
	Advice string
}

// ResultsScreen implements screen.Screen for a finished drill.
type ResultsScreen struct {
	sess  *user.Session
	coach *coach.Coach
	res   *drill.DrillResult

	// byID resolves a detail entry back to its question for the review
	// list (text and explanation are not part of the result).
	byID map[string]drill.Question

	gen           int
	advice        string
	adviceLoading bool

	selected int
	recorded bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finalized drill result. The questions
// slice is the batch the drill was run over.
func New(sess *user.Session, coachSvc *coach.Coach, res *drill.DrillResult, questions []drill.Question) *ResultsScreen {
	byID := make(map[string]drill.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &ResultsScreen{
		sess:  sess,
		coach: coachSvc,
		res:   res,
		byID:  byID,
		gen:   1,
	}
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) Init() tea.Cmd {
	if !r.recorded {
		r.recorded = true
		r.sess.User.AddResult(*r.res)
	}
	r.adviceLoading = true
	return r.fetchAdvice()
}

// fetchAdvice requests coaching asynchronously. Advise never fails; any
// generation error collapses to the fixed fallback text inside the coach.
func (r *ResultsScreen) fetchAdvice() tea.Cmd {
	gen := r.gen
	coachSvc := r.coach
	sum := coach.NewSummary(r.res)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
		defer cancel()

		return adviceReadyMsg{Gen: gen, Advice: coachSvc.Advise(ctx, sum)}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceReadyMsg:
		if msg.Gen != r.gen {
			return r, nil
		}
		r.advice = msg.Advice
		r.adviceLoading = false
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.selected > 0 {
				r.selected--
			}
		case "down", "j":
			if r.selected < len(r.res.Details)-1 {
				r.selected++
			}
		}
	}

	return r, nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")

	scoreColor := theme.Success
	if r.res.Score < 40 {
		scoreColor = theme.Error
	} else if r.res.Score < 70 {
		scoreColor = theme.Warning
	}

	correct := 0
	for _, d := range r.res.Details {
		if d.IsCorrect {
			correct++
		}
	}

	headline := lipgloss.NewStyle().
		Foreground(scoreColor).
		Bold(true).
		Render(fmt.Sprintf("%.1f%%", r.res.Score))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, headline))
	b.WriteString("\n")

	statsLine := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s   %d/%d correct   best streak %d   %ds total",
			r.res.Topic.DisplayName(), correct, r.res.TotalQuestions, r.res.MaxStreak, r.res.TimeTakenSec))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine))
	b.WriteString("\n\n")

	b.WriteString(r.renderAdvice(width))
	b.WriteString("\n")

	b.WriteString(r.renderDetails(width))

	return b.String()
}

// renderAdvice renders the coaching box.
func (r *ResultsScreen) renderAdvice(width int) string {
	text := r.advice
	if r.adviceLoading {
		text = "Thinking about your drill..."
	}

	box := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Render(text)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// renderDetails renders the per-question review list. The selected entry
// shows the question text and explanation.
func (r *ResultsScreen) renderDetails(width int) string {
	var b strings.Builder

	for i, d := range r.res.Details {
		marker := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if d.IsCorrect {
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		answer := d.UserAnswer
		if answer == drill.AnswerTimeout {
			answer = "timed out"
		}

		line := fmt.Sprintf("%s  Q%d  %s  (answer: %s, %ds)", marker, i+1, answer, d.CorrectAnswer, d.TimeSpentSec)
		prefix := "    "
		if i == r.selected {
			prefix = "  ▸ "
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		b.WriteString(prefix + line + "\n")

		if i == r.selected {
			if q, ok := r.byID[d.QuestionID]; ok {
				detail := q.Text
				if q.Explanation != "" {
					detail += "\n" + q.Explanation
				}
				b.WriteString(lipgloss.NewStyle().
					Width(min(width-12, 66)).
					Foreground(theme.TextDim).
					PaddingLeft(6).
					Render(detail))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
