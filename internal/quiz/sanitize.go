package quiz

import "github.com/aura-trivia/backend/internal/models"

// Sanitize strips the correct-answer index from each question before client
// exposure, preserving every other field and the input order.
func Sanitize(questions []models.Question) []models.SanitizedQuestion {
	out := make([]models.SanitizedQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, models.SanitizedQuestion{
			ID:          q.ID,
			Text:        q.Text,
			Choices:     q.Choices,
			Explanation: q.Explanation,
		})
	}
	return out
}
