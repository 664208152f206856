package quiz

import "github.com/aura-trivia/backend/internal/models"

// Sample selects min(k, len(pool)) questions by shuffling a copy of the pool
// with the given seed and taking the leading elements. With the same seed and
// pool, repeated calls return the identical subset in the identical order,
// which is what keeps the quiz and answer-key endpoints in agreement within a
// calendar day. An empty pool yields an empty slice, not an error.
func Sample(k int, pool []models.Question, seed string) []models.Question {
	if k < 0 {
		k = 0
	}
	shuffled := Shuffle(pool, seed)
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}
