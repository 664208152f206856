package provider

import (
	"testing"
)

func TestParseBatch_PlainArray(t *testing.T) {
	content := `[
		{"text": "What is 2+2?", "choices": ["3", "4", "5"], "correctAnswerIndex": 1, "explanation": "Basic arithmetic."}
	]`
	drafts, err := parseBatch(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Text != "What is 2+2?" || drafts[0].CorrectAnswerIndex != 1 {
		t.Fatalf("draft fields wrong: %+v", drafts[0])
	}
}

func TestParseBatch_StripsCodeFences(t *testing.T) {
	content := "Here are your questions:\n```json\n" +
		`[{"text": "Capital of France?", "choices": ["Paris", "Lyon", "Nice"], "correctAnswerIndex": 0, "explanation": "Paris is the capital."}]` +
		"\n```\nEnjoy!"
	drafts, err := parseBatch(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Text != "Capital of France?" {
		t.Fatalf("unexpected drafts: %+v", drafts)
	}
}

func TestParseBatch_QuestionAlias(t *testing.T) {
	content := `[{"question": "Largest planet?", "choices": ["Mars", "Jupiter", "Venus"], "correctAnswerIndex": 1, "explanation": "Jupiter is the largest."}]`
	drafts, err := parseBatch(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drafts[0].Text != "Largest planet?" {
		t.Fatalf("question alias not honored: %+v", drafts[0])
	}
}

func TestParseBatch_DropsInvalidDrafts(t *testing.T) {
	content := `[
		{"text": "", "choices": ["a", "b", "c"], "correctAnswerIndex": 0, "explanation": "no text"},
		{"text": "Two choices only", "choices": ["a", "b"], "correctAnswerIndex": 0, "explanation": "too few"},
		{"text": "Index out of range", "choices": ["a", "b", "c"], "correctAnswerIndex": 5, "explanation": "bad index"},
		{"text": "Keeper", "choices": ["a", "b", "c"], "correctAnswerIndex": 2, "explanation": "fine"}
	]`
	drafts, err := parseBatch(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Text != "Keeper" {
		t.Fatalf("expected only the valid draft, got %+v", drafts)
	}
}

func TestParseBatch_AllInvalidIsError(t *testing.T) {
	content := `[{"text": "", "choices": [], "correctAnswerIndex": 0, "explanation": ""}]`
	if _, err := parseBatch(content); err == nil {
		t.Fatalf("expected error for batch with no valid drafts")
	}
}

func TestParseBatch_NoArrayIsError(t *testing.T) {
	if _, err := parseBatch("Sorry, I cannot generate questions right now."); err == nil {
		t.Fatalf("expected error for content without a JSON array")
	}
}

func TestParseBatch_MalformedJSONIsError(t *testing.T) {
	if _, err := parseBatch(`[{"text": "oops"`); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}
