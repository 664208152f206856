package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aura-trivia/backend/internal/models"
)

// wireDraft tolerates the field variations models emit: some return the
// question under "question" instead of "text".
type wireDraft struct {
	Text               string   `json:"text"`
	Question           string   `json:"question"`
	Choices            []string `json:"choices"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// parseBatch extracts the question array from a model reply. Models routinely
// wrap the JSON in markdown code fences or prose, so parsing starts at the
// first '[' and ends at the last ']'. Drafts failing validation are dropped;
// a batch with none left is an error.
func parseBatch(content string) ([]models.QuestionDraft, error) {
	raw := extractJSONArray(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in provider content: %s", truncate(content, 200))
	}

	var wire []wireDraft
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}

	drafts := make([]models.QuestionDraft, 0, len(wire))
	for _, w := range wire {
		text := w.Text
		if text == "" {
			text = w.Question
		}
		d := models.QuestionDraft{
			Text:               strings.TrimSpace(text),
			Choices:            w.Choices,
			CorrectAnswerIndex: w.CorrectAnswerIndex,
			Explanation:        strings.TrimSpace(w.Explanation),
		}
		if !d.Valid() {
			continue
		}
		drafts = append(drafts, d)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("no valid questions in batch of %d", len(wire))
	}
	return drafts, nil
}

func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}
