package cache

import (
	"context"
	"encoding/json"
	"time"

	"sql-workbench-be/internal/pkg/logger"
	"sql-workbench-be/pkg/rowset"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisGateway struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisGateway(client *redis.Client, ttl time.Duration, logger logger.ILogger) Gateway {
	return &RedisGateway{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (g *RedisGateway) Lookup(ctx context.Context, userId uuid.UUID, sqlText string) (*rowset.RowSet, bool) {
	data, err := g.client.Get(ctx, Key(userId, sqlText)).Bytes()
	if err != nil {
		if err != redis.Nil {
			g.logger.Warn("cache", "Redis lookup failed, treating as miss", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var rs rowset.RowSet
	if err := json.Unmarshal(data, &rs); err != nil {
		g.logger.Warn("cache", "Corrupt cache entry, treating as miss", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}

	return &rs, true
}

func (g *RedisGateway) Store(ctx context.Context, userId uuid.UUID, sqlText string, rs *rowset.RowSet) {
	data, err := json.Marshal(rs)
	if err != nil {
		g.logger.Warn("cache", "Failed to serialize result set for cache", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := g.client.Set(ctx, Key(userId, sqlText), data, g.ttl).Err(); err != nil {
		g.logger.Warn("cache", "Redis store failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
