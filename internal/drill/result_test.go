package drill

import (
	"errors"
	"testing"
	"time"
)

func detail(correct bool) DetailEntry {
	return DetailEntry{QuestionID: "q", IsCorrect: correct, UserAnswer: "a", CorrectAnswer: "a", TimeSpentSec: 5}
}

func TestFinalize_ScoreExact(t *testing.T) {
	now := time.Now()
	tests := []struct {
		correct int
		total   int
		want    float64
	}{
		{0, 5, 0},
		{5, 5, 100},
		{3, 5, 60},
		{1, 3, 100.0 / 3.0},
	}
	for _, tt := range tests {
		details := make([]DetailEntry, tt.total)
		for i := range details {
			details[i] = detail(i < tt.correct)
		}
		res, err := Finalize(details, tt.total, 60, TopicSimplification, now)
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if res.Score != tt.want {
			t.Errorf("%d/%d: Score = %v, want %v", tt.correct, tt.total, res.Score, tt.want)
		}
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("Score %v out of [0, 100]", res.Score)
		}
		if res.Accuracy != res.Score {
			t.Errorf("Accuracy = %v, want Score %v", res.Accuracy, res.Score)
		}
	}
}

func TestFinalize_MaxStreakRecomputed(t *testing.T) {
	now := time.Now()
	tests := []struct {
		pattern []bool
		want    int
	}{
		{[]bool{true, true, true, false, false}, 3},
		{[]bool{false, true, true, true, true}, 4},
		{[]bool{true, false, true, false, true}, 1},
		{[]bool{false, false, false}, 0},
		{[]bool{true, true, false, true, true}, 2},
	}
	for _, tt := range tests {
		details := make([]DetailEntry, len(tt.pattern))
		for i, c := range tt.pattern {
			details[i] = detail(c)
		}
		res, err := Finalize(details, len(details), 30, TopicQuadratic, now)
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if res.MaxStreak != tt.want {
			t.Errorf("pattern %v: MaxStreak = %d, want %d", tt.pattern, res.MaxStreak, tt.want)
		}
	}
}

func TestFinalize_LengthMismatchRejected(t *testing.T) {
	details := []DetailEntry{detail(true), detail(true)}
	if _, err := Finalize(details, 5, 30, TopicSeries, time.Now()); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("err = %v, want ErrNotFinished", err)
	}
}

func TestFinalize_DetailsCopied(t *testing.T) {
	details := []DetailEntry{detail(true)}
	res, err := Finalize(details, 1, 10, TopicSeries, time.Now())
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	details[0].IsCorrect = false
	if !res.Details[0].IsCorrect {
		t.Error("result must not share the caller's details slice")
	}
}
