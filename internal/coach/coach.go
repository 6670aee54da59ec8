// Package coach turns a finished drill into short, actionable study advice.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/llm"
)

// Fallback is shown when coaching generation fails for any reason.
const Fallback = "Keep practicing daily. Focus on accuracy first, then build speed with timed drills."

// Summary is the reduced drill outcome sent to the LLM. It carries
// per-question correctness and timing but never the candidate's raw
// typed answers.
type Summary struct {
	Topic          drill.Topic
	Score          float64
	TotalQuestions int
	TimeTakenSec   int
	MaxStreak      int
	Questions      []QuestionSummary
}

// QuestionSummary is the per-question slice of a Summary.
type QuestionSummary struct {
	IsCorrect     bool
	TimedOut      bool
	TimeSpentSec  int
	CorrectAnswer string
}

// NewSummary reduces a drill result to the fields coaching needs.
func NewSummary(res *drill.DrillResult) Summary {
	s := Summary{
		Topic:          res.Topic,
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		TimeTakenSec:   res.TimeTakenSec,
		MaxStreak:      res.MaxStreak,
		Questions:      make([]QuestionSummary, len(res.Details)),
	}
	for i, d := range res.Details {
		s.Questions[i] = QuestionSummary{
			IsCorrect:     d.IsCorrect,
			TimedOut:      d.UserAnswer == drill.AnswerTimeout,
			TimeSpentSec:  d.TimeSpentSec,
			CorrectAnswer: d.CorrectAnswer,
		}
	}
	return s
}

// Config controls the coaching request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended coaching defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.7,
	}
}

// Coach generates post-drill advice through the LLM provider.
type Coach struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Coach with the given provider and config.
func New(provider llm.Provider, cfg Config) *Coach {
	return &Coach{provider: provider, cfg: cfg}
}

type adviceOutput struct {
	Advice string `json:"advice"`
}

// Advise returns a 2-3 sentence coaching message for the drill summary.
// It never fails: any error collapses to the fixed Fallback text.
func (c *Coach) Advise(ctx context.Context, sum Summary) string {
	advice, err := c.generate(ctx, sum)
	if err != nil || advice == "" {
		return Fallback
	}
	return advice
}

func (c *Coach) generate(ctx context.Context, sum Summary) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCoaching)

	req := llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCoachUserMessage(sum)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("coaching generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse coaching response: %w", err)
	}

	return out.Advice, nil
}
