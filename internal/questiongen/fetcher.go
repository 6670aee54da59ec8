package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/llm"
)

// Fetcher requests question batches from the LLM provider. A fetch is a
// single best-effort attempt: any failure (transport, parse, validation)
// surfaces as an error and the caller proceeds without a drill.
type Fetcher struct {
	provider llm.Provider
	config   Config
}

// New creates a new Fetcher with the given provider and config.
func New(provider llm.Provider, cfg Config) *Fetcher {
	return &Fetcher{provider: provider, config: cfg}
}

// Fetch requests a batch of questions for the given topic. A batch where
// any single question fails validation is rejected in full.
func (f *Fetcher) Fetch(ctx context.Context, topic drill.Topic, count int) ([]drill.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionBatch)

	input := BatchInput{Topic: topic, Count: count}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      BatchSchema,
		MaxTokens:   f.config.MaxTokens,
		Temperature: f.config.Temperature,
	}

	resp, err := f.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM batch fetch failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned an empty batch")
	}

	questions := make([]drill.Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		q := drill.Question{
			ID:            rq.ID,
			Type:          topic,
			Text:          rq.QuestionText,
			CorrectAnswer: rq.CorrectAnswer,
			Explanation:   rq.Explanation,
			Options:       rq.Options,
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if t, err := drill.ParseTopic(rq.Type); err == nil {
			q.Type = t
		}

		for _, v := range f.config.Validators {
			if verr := v.Validate(&q, input); verr != nil {
				return nil, fmt.Errorf("question %s rejected: %w", q.ID, verr)
			}
		}

		questions = append(questions, q)
	}

	return questions, nil
}
