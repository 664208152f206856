package quiz

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/aura-trivia/backend/internal/models"
)

// Fetcher produces a fresh batch of question drafts, typically by calling the
// generation provider. It either returns at least one draft or an error.
type Fetcher interface {
	FetchBatch(ctx context.Context) ([]models.QuestionDraft, error)
}

// Cache owns the question pool and its last-refresh timestamp. The pool is
// replaced wholesale on a successful fetch, never mutated in place, so readers
// always see a pool whose ids agree with its timestamp.
//
// Freshness is measured purely as time since the last successful fetch, not by
// calendar day: a pool fetched at 23:59 UTC still serves at 00:01 and will be
// sampled with the new day's seed against the old contents.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu              sync.RWMutex
	pool            []models.Question
	lastRefreshedAt time.Time

	group singleflight.Group
}

// NewCache creates an empty cache. now is injectable for tests; pass time.Now
// in production.
func NewCache(fetcher Fetcher, ttl time.Duration, logger *zap.Logger, now func() time.Time) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{fetcher: fetcher, ttl: ttl, logger: logger, now: now}
}

// Snapshot returns the current pool and its refresh timestamp together. The
// returned slice is the pool generation itself; callers must not mutate it.
func (c *Cache) Snapshot() ([]models.Question, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool, c.lastRefreshedAt
}

// EnsureFresh refreshes the pool from the provider when it is empty or older
// than the TTL. Concurrent callers coalesce onto a single in-flight fetch.
// Provider failures, empty batches and malformed payloads leave the existing
// state untouched; the outcome is reported as a boolean, never an error, so a
// stale pool keeps serving. At most one refresh attempt is made per call.
func (c *Cache) EnsureFresh(ctx context.Context) bool {
	if c.fresh() {
		return true
	}
	ok, _, _ := c.group.Do("refresh", func() (interface{}, error) {
		// A caller that queued behind a completed refresh skips its own.
		if c.fresh() {
			return true, nil
		}
		return c.refresh(ctx), nil
	})
	return ok.(bool)
}

func (c *Cache) fresh() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pool) > 0 && c.now().Sub(c.lastRefreshedAt) <= c.ttl
}

func (c *Cache) refresh(ctx context.Context) bool {
	drafts, err := c.fetcher.FetchBatch(ctx)
	if err != nil {
		c.logger.Warn("question refresh failed, keeping current pool", zap.Error(err))
		return false
	}
	if len(drafts) == 0 {
		c.logger.Warn("provider returned empty batch, keeping current pool")
		return false
	}

	// New generation: ids reassigned 1..N, provider-supplied ids discarded.
	pool := make([]models.Question, 0, len(drafts))
	for i, d := range drafts {
		pool = append(pool, models.Question{
			ID:                 i + 1,
			Text:               d.Text,
			Choices:            d.Choices,
			CorrectAnswerIndex: d.CorrectAnswerIndex,
			Explanation:        d.Explanation,
		})
	}

	c.mu.Lock()
	c.pool = pool
	c.lastRefreshedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("question pool refreshed", zap.Int("questions", len(pool)))
	return true
}
