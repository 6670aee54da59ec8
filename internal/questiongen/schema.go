package questiongen

import "github.com/sambit/prepdrill/internal/llm"

// BatchSchema defines the JSON schema for LLM question batch responses.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of bank-exam quantitative aptitude questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The requested questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "A short unique identifier for the question, e.g. q1",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"simplification", "series", "quadratic", "approximation"},
							"description": "The topic this question belongs to",
						},
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt, in plain ASCII text",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer as a string, e.g. \"52\" or \"x > y\"",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Step-by-step worked solution with the speed trick used",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Answer options when the question is multiple choice; one must match correct_answer. Empty array for typed answers.",
						},
					},
					"required":             []any{"id", "type", "question_text", "correct_answer", "explanation", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
