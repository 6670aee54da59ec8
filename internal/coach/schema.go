package coach

import "github.com/sambit/prepdrill/internal/llm"

// AdviceSchema defines the JSON schema for coaching responses.
var AdviceSchema = &llm.Schema{
	Name:        "coaching-advice",
	Description: "Short post-drill coaching advice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"advice": map[string]any{
				"type":        "string",
				"description": "2-3 sentences of direct coaching, plain text",
			},
		},
		"required":             []any{"advice"},
		"additionalProperties": false,
	},
}
