package quiz

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aura-trivia/backend/pkg/response"
)

// Error codes surfaced by the quiz endpoint.
const (
	CodeDataUnavailable = "DATA_UNAVAILABLE"
	CodeServerError     = "SERVER_ERROR"
)

// Handler serves the two read endpoints. Both sample with the same size and
// the same day's seed, so within a calendar day the answer key matches the
// quiz question-for-question.
type Handler struct {
	cache      *Cache
	sampleSize int
	logger     *zap.Logger
	now        func() time.Time
}

// NewHandler creates a quiz handler. now is injectable for tests; pass
// time.Now in production.
func NewHandler(cache *Cache, sampleSize int, logger *zap.Logger, now func() time.Time) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{cache: cache, sampleSize: sampleSize, logger: logger, now: now}
}

// GetQuiz handles GET /api/quiz: today's questions without answers.
func (h *Handler) GetQuiz(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("quiz handler panic", zap.Any("panic", r))
			response.Coded(c, http.StatusInternalServerError, CodeServerError, "internal server error")
		}
	}()

	h.cache.EnsureFresh(c.Request.Context())
	pool, _ := h.cache.Snapshot()
	if len(pool) == 0 {
		response.Coded(c, http.StatusServiceUnavailable, CodeDataUnavailable, "no questions available yet, try again shortly")
		return
	}

	sampled := Sample(h.sampleSize, pool, DailySeed(h.now()))
	response.OK(c, Sanitize(sampled))
}

// GetAnswerKey handles GET /api/answer-key: question id -> correct choice
// index for today's sample.
func (h *Handler) GetAnswerKey(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("answer-key handler panic", zap.Any("panic", r))
			response.Err(c, http.StatusInternalServerError, "Internal server error")
		}
	}()

	h.cache.EnsureFresh(c.Request.Context())
	pool, _ := h.cache.Snapshot()
	if len(pool) == 0 {
		response.Err(c, http.StatusServiceUnavailable, "Data unavailable")
		return
	}

	sampled := Sample(h.sampleSize, pool, DailySeed(h.now()))
	key := make(map[int]int, len(sampled))
	for _, q := range sampled {
		// Should never trigger given ingestion validation.
		if q.ID <= 0 || q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Choices) {
			continue
		}
		key[q.ID] = q.CorrectAnswerIndex
	}
	response.OK(c, key)
}
