package questiongen

import (
	"fmt"

	"github.com/sambit/prepdrill/internal/drill"
)

// Validator checks a fetched question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages), e.g. "structural", "options".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *drill.Question, input BatchInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *drill.Question, _ BatchInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
		}
	}
	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
		}
	}
	return nil
}

// OptionsValidator checks that when options are present, exactly one of
// them matches the correct answer after normalization.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *drill.Question, _ BatchInput) *ValidationError {
	if len(q.Options) == 0 {
		return nil
	}

	matches := 0
	for _, opt := range q.Options {
		if drill.IsCorrect(opt, q.CorrectAnswer) {
			matches++
		}
	}

	if matches == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("no option matches correct_answer %q", q.CorrectAnswer),
		}
	}
	if matches > 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%d options match correct_answer %q", matches, q.CorrectAnswer),
		}
	}
	return nil
}
