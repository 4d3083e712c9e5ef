package sentiment

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tradecouncil/internal/model"
)

const (
	cacheKeyPrefix = "tradecouncil:sentiment:"
	cacheTTL       = 5 * time.Minute
)

// Cache is a read-through TTL cache for computed sentiment summaries. News
// moves slowly enough that repeated queries for the same topic within a few
// minutes can share one fetch. Failures are logged and treated as misses.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, topic string) (*model.SentimentSummary, bool) {
	raw, err := c.client.Get(ctx, cacheKey(topic)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("sentiment cache read failed", "topic", topic, "error", err)
		}
		return nil, false
	}

	var summary model.SentimentSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		slog.Warn("sentiment cache entry corrupt", "topic", topic, "error", err)
		return nil, false
	}
	return &summary, true
}

func (c *Cache) Set(ctx context.Context, topic string, summary *model.SentimentSummary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("sentiment cache encode failed", "topic", topic, "error", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(topic), raw, cacheTTL).Err(); err != nil {
		slog.Warn("sentiment cache write failed", "topic", topic, "error", err)
	}
}

func cacheKey(topic string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(topic))
}
