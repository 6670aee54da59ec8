package questiongen

import (
	"testing"

	"github.com/sambit/prepdrill/internal/drill"
)

func validQuestion() drill.Question {
	return drill.Question{
		ID:            "q1",
		Type:          drill.TopicSimplification,
		Text:          "15% of 340 + 49 = ?",
		CorrectAnswer: "100",
		Explanation:   "15% of 340 = 51; 51 + 49 = 100.",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	input := BatchInput{Topic: drill.TopicSimplification, Count: 5}

	tests := []struct {
		name   string
		mutate func(*drill.Question)
		wantOK bool
	}{
		{"valid", func(q *drill.Question) {}, true},
		{"empty text", func(q *drill.Question) { q.Text = "" }, false},
		{"empty answer", func(q *drill.Question) { q.CorrectAnswer = "" }, false},
		{"empty explanation", func(q *drill.Question) { q.Explanation = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := v.Validate(&q, input)
			if (err == nil) != tt.wantOK {
				t.Fatalf("Validate() = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}
}

func TestOptionsValidator(t *testing.T) {
	v := &OptionsValidator{}
	input := BatchInput{Topic: drill.TopicQuadratic, Count: 5}

	t.Run("no options passes", func(t *testing.T) {
		q := validQuestion()
		if err := v.Validate(&q, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("one matching option passes", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = "x > y"
		q.Options = []string{"x > y", "x < y", "x = y or no relation"}
		if err := v.Validate(&q, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("match is normalization-insensitive", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = "X>Y"
		q.Options = []string{" x > y ", "x < y"}
		if err := v.Validate(&q, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no matching option fails", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = "x >= y"
		q.Options = []string{"x > y", "x < y"}
		if err := v.Validate(&q, input); err == nil {
			t.Fatal("expected error when no option matches")
		}
	})

	t.Run("duplicate matching options fail", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = "x > y"
		q.Options = []string{"x > y", "X > Y"}
		if err := v.Validate(&q, input); err == nil {
			t.Fatal("expected error for duplicate matches")
		}
	})
}
