package user

import (
	"testing"
	"time"

	"github.com/sambit/prepdrill/internal/drill"
)

func TestNew_BlankNameFallback(t *testing.T) {
	if got := New("  ").Name; got != "Candidate" {
		t.Errorf("Name = %q, want %q", got, "Candidate")
	}
	if got := New(" Priya ").Name; got != "Priya" {
		t.Errorf("Name = %q, want %q", got, "Priya")
	}
}

func TestHistory_AppendOnlyOldestFirst(t *testing.T) {
	u := New("Priya")
	for i, topic := range []drill.Topic{drill.TopicSeries, drill.TopicQuadratic} {
		u.AddResult(drill.DrillResult{
			ID:    string(rune('a' + i)),
			Date:  time.Now(),
			Topic: topic,
		})
	}

	h := u.History()
	if len(h) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(h))
	}
	if h[0].Topic != drill.TopicSeries || h[1].Topic != drill.TopicQuadratic {
		t.Error("history must preserve append order, oldest first")
	}

	// Mutating the returned slice must not touch the stored history.
	h[0].Topic = drill.TopicApproximation
	if u.History()[0].Topic != drill.TopicSeries {
		t.Error("History must return a copy")
	}
}
