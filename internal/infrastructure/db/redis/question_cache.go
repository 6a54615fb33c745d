package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

const (
	listKey = "questions:list"
	listTTL = 30 * time.Second
)

// QuestionCache is a read-through cache for the question listing.
// Cache failures are logged and treated as misses so the API keeps
// serving from the database.
type QuestionCache struct {
	client *redis.Client
	logger zerolog.Logger
}

var _ ports.QuestionCache = (*QuestionCache)(nil)

// NewQuestionCache creates a QuestionCache wrapping the given Redis client.
func NewQuestionCache(client *redis.Client, logger zerolog.Logger) *QuestionCache {
	return &QuestionCache{client: client, logger: logger}
}

// GetList returns the cached question listing, if present.
func (c *QuestionCache) GetList(ctx context.Context) ([]domain.Question, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("question cache read failed")
		}
		return nil, false
	}

	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		c.logger.Warn().Err(err).Msg("question cache entry corrupt, dropping")
		_ = c.client.Del(ctx, listKey).Err()
		return nil, false
	}
	return questions, true
}

// SetList stores the question listing with a short TTL.
func (c *QuestionCache) SetList(ctx context.Context, questions []domain.Question) {
	raw, err := json.Marshal(questions)
	if err != nil {
		c.logger.Warn().Err(err).Msg("question cache encode failed")
		return
	}
	if err := c.client.Set(ctx, listKey, raw, listTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("question cache write failed")
	}
}

// Invalidate drops the cached listing after a mutation.
func (c *QuestionCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("question cache invalidation failed")
	}
}
