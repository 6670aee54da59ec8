package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sambit/prepdrill/internal/drill"
	"github.com/sambit/prepdrill/internal/llm"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"id": "q1",
				"type": "simplification",
				"question_text": "45% of 680 + 12^2 = ?",
				"correct_answer": "450",
				"explanation": "45% of 680 = 306; 12^2 = 144; 306 + 144 = 450.",
				"options": []
			},
			{
				"id": "q2",
				"type": "simplification",
				"question_text": "sqrt(1296) / 4 * 18 = ?",
				"correct_answer": "162",
				"explanation": "sqrt(1296) = 36; 36 / 4 = 9; 9 * 18 = 162.",
				"options": []
			}
		]
	}`)
}

func TestFetch_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatchJSON()},
	)
	f := New(mock, DefaultConfig())

	questions, err := f.Fetch(context.Background(), drill.TopicSimplification, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "q1" {
		t.Errorf("id = %q, want q1", questions[0].ID)
	}
	if questions[0].Type != drill.TopicSimplification {
		t.Errorf("type = %q, want simplification", questions[0].Type)
	}
	if questions[1].CorrectAnswer != "162" {
		t.Errorf("answer = %q, want 162", questions[1].CorrectAnswer)
	}
}

func TestFetch_SetsPurposeAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatchJSON()},
	)
	f := New(mock, DefaultConfig())

	_, err := f.Fetch(context.Background(), drill.TopicSimplification, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Error("expected request to carry BatchSchema")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}

func TestFetch_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	f := New(mock, DefaultConfig())

	_, err := f.Fetch(context.Background(), drill.TopicSeries, 5)
	if err == nil {
		t.Fatal("expected error")
	}
	// No second attempt at this layer.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestFetch_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{not json}`)},
	)
	f := New(mock, DefaultConfig())

	_, err := f.Fetch(context.Background(), drill.TopicSeries, 5)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestFetch_EmptyBatchRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)
	f := New(mock, DefaultConfig())

	_, err := f.Fetch(context.Background(), drill.TopicQuadratic, 5)
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestFetch_OneBadQuestionRejectsWholeBatch(t *testing.T) {
	batch := json.RawMessage(`{
		"questions": [
			{
				"id": "q1",
				"type": "series",
				"question_text": "3, 9, 27, ?, 243",
				"correct_answer": "81",
				"explanation": "Each term is multiplied by 3.",
				"options": []
			},
			{
				"id": "q2",
				"type": "series",
				"question_text": "5, 10, 20, ?, 80",
				"correct_answer": "",
				"explanation": "Each term doubles.",
				"options": []
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	f := New(mock, DefaultConfig())

	_, err := f.Fetch(context.Background(), drill.TopicSeries, 2)
	if err == nil {
		t.Fatal("expected whole batch rejected when one question is invalid")
	}
}

func TestFetch_AssignsIDWhenMissing(t *testing.T) {
	batch := json.RawMessage(`{
		"questions": [
			{
				"id": "",
				"type": "approximation",
				"question_text": "23.97 * 5.02 + 81.1 = ?",
				"correct_answer": "201",
				"explanation": "24 * 5 = 120; 120 + 81 = 201.",
				"options": []
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	f := New(mock, DefaultConfig())

	questions, err := f.Fetch(context.Background(), drill.TopicApproximation, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].ID == "" {
		t.Error("expected a generated ID for a question with empty id")
	}
}

func TestFetch_QuadraticCarriesOptions(t *testing.T) {
	batch := json.RawMessage(`{
		"questions": [
			{
				"id": "q1",
				"type": "quadratic",
				"question_text": "I. x^2 - 7x + 12 = 0   II. y^2 - 5y + 6 = 0",
				"correct_answer": "x >= y",
				"explanation": "x is 3 or 4; y is 2 or 3; every x is >= every y.",
				"options": ["x > y", "x < y", "x >= y", "x <= y", "x = y or no relation"]
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	f := New(mock, DefaultConfig())

	questions, err := f.Fetch(context.Background(), drill.TopicQuadratic, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions[0].Options) != 5 {
		t.Fatalf("expected 5 options, got %d", len(questions[0].Options))
	}
}
