package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "question-batch", InputTokens: 100, OutputTokens: 400, LatencyMs: 800, Success: true, RequestBody: "[user]\nfive questions", ResponseBody: `{"questions":[]}`},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "coaching", InputTokens: 200, OutputTokens: 80, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "question-batch", InputTokens: 0, OutputTokens: 0, LatencyMs: 30000, Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}

	// Newest first.
	if got[0].Purpose != "question-batch" || got[0].Success {
		t.Errorf("newest event = %+v, want the failed question-batch event", got[0])
	}
	if got[0].Sequence <= got[1].Sequence || got[1].Sequence <= got[2].Sequence {
		t.Errorf("events not in descending sequence order: %d, %d, %d",
			got[0].Sequence, got[1].Sequence, got[2].Sequence)
	}

	// Request/response bodies survive the roundtrip.
	oldest := got[2]
	if oldest.RequestBody != "[user]\nfive questions" {
		t.Errorf("request body = %q", oldest.RequestBody)
	}
	if oldest.ResponseBody != `{"questions":[]}` {
		t.Errorf("response body = %q", oldest.ResponseBody)
	}
}

func TestQueryLLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		purpose := "question-batch"
		if i%2 == 1 {
			purpose = "coaching"
		}
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	coaching, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "coaching"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(coaching) != 2 {
		t.Fatalf("expected 2 coaching events, got %d", len(coaching))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing event, got %+v", e)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "question-batch", InputTokens: 100, OutputTokens: 300, LatencyMs: 500, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "question-batch", InputTokens: 120, OutputTokens: 340, LatencyMs: 700, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "coaching", InputTokens: 50, OutputTokens: 60, LatencyMs: 400, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(stats))
	}

	byPurpose := make(map[string]LLMUsageStat)
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	qb := byPurpose["question-batch"]
	if qb.Calls != 2 || qb.InputTokens != 220 || qb.OutputTokens != 640 {
		t.Errorf("question-batch stats = %+v", qb)
	}
	co := byPurpose["coaching"]
	if co.Calls != 1 || co.InputTokens != 50 {
		t.Errorf("coaching stats = %+v", co)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='llm_request_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "llm_request_events" {
		t.Errorf("table name = %q, want 'llm_request_events'", name)
	}
}
