package models

// Question is a single multiple-choice trivia question in the pool.
// IDs are 1-based, assigned at ingestion and stable within a pool generation.
type Question struct {
	ID                 int      `json:"id"`
	Text               string   `json:"text"`
	Choices            []string `json:"choices"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// SanitizedQuestion is a Question with the answer-revealing field removed,
// safe to expose to untrusted clients.
type SanitizedQuestion struct {
	ID          int      `json:"id"`
	Text        string   `json:"text"`
	Choices     []string `json:"choices"`
	Explanation string   `json:"explanation"`
}

// QuestionDraft is a question as returned by the generation provider, before
// ingestion. Any id the provider supplies is discarded; ids are reassigned
// when the batch is accepted into the pool.
type QuestionDraft struct {
	Text               string   `json:"text"`
	Choices            []string `json:"choices"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// Valid reports whether a draft can be ingested: non-empty text, at least
// three choices, and an answer index inside the choice list.
func (d QuestionDraft) Valid() bool {
	return d.Text != "" && len(d.Choices) >= 3 &&
		d.CorrectAnswerIndex >= 0 && d.CorrectAnswerIndex < len(d.Choices)
}
