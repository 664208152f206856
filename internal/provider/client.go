// Package provider talks to an OpenAI-compatible chat-completions API that
// generates trivia question batches.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aura-trivia/backend/internal/models"
)

// Config holds the generation provider settings.
type Config struct {
	APIURL    string        // chat-completions endpoint, e.g. https://api.deepseek.com/v1/chat/completions
	APIKey    string
	Model     string        // e.g. deepseek-chat
	Timeout   time.Duration // per-request timeout
	BatchSize int           // questions requested per refresh
	Topic     string        // subject area for generated questions
}

// Client fetches question batches from the provider.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a provider client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponseChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatResponseChoice `json:"choices"`
}

// FetchBatch asks the provider for a fresh batch of questions and parses its
// reply. Transport errors, non-200 statuses, unparsable payloads and batches
// with no valid question all come back as errors; the caller decides what to
// keep serving.
func (c *Client) FetchBatch(ctx context.Context) ([]models.QuestionDraft, error) {
	fetchID := uuid.New().String()
	start := time.Now()

	reqBody := chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: c.prompt()}},
	}
	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	c.logger.Debug("requesting question batch",
		zap.String("fetch_id", fetchID),
		zap.String("model", c.cfg.Model),
		zap.Int("batch_size", c.cfg.BatchSize),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("parse provider response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("no choices in provider response")
	}

	drafts, err := parseBatch(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	c.logger.Info("question batch received",
		zap.String("fetch_id", fetchID),
		zap.Int("questions", len(drafts)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return drafts, nil
}

func (c *Client) prompt() string {
	return fmt.Sprintf(`Generate %d multiple-choice trivia questions about %s.

Respond with ONLY a JSON array, no other text. Each element must have exactly
these fields:
  "text": the question,
  "choices": an array of at least 3 answer strings,
  "correctAnswerIndex": the 0-based index of the correct choice,
  "explanation": one sentence explaining the answer.`,
		c.cfg.BatchSize, c.cfg.Topic)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
