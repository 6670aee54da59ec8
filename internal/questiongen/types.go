package questiongen

import "github.com/sambit/prepdrill/internal/drill"

// BatchInput holds all context needed to fetch a question batch.
type BatchInput struct {
	// Topic is the drill topic for the batch.
	Topic drill.Topic

	// Count is the number of questions to request.
	Count int
}

// questionOutput is one raw question from the LLM response before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	QuestionText  string   `json:"question_text"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
}

// batchOutput is the raw LLM response envelope.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}
