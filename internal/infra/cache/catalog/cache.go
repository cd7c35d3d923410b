package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

const addOnsKey = "party-booking:catalog:addons:active"

// Source исходный репозиторий каталога
type Source interface {
	ListActive(ctx context.Context) ([]*domain.AddOnDefinition, error)
}

// RedisClient подмножество go-redis, которое использует кэш
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AddOnCache кэширует список активных дополнений на короткий TTL.
// Ошибки Redis не ломают запрос: читаем из источника
type AddOnCache struct {
	source Source
	client RedisClient
	ttl    time.Duration
	logger Logger
}

// NewAddOnCache создает кэширующую обёртку над репозиторием каталога
func NewAddOnCache(source Source, client RedisClient, ttl time.Duration, logger Logger) *AddOnCache {
	return &AddOnCache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListActive возвращает дополнения из кэша или из источника
func (c *AddOnCache) ListActive(ctx context.Context) ([]*domain.AddOnDefinition, error) {
	data, err := c.client.Get(ctx, addOnsKey).Bytes()
	switch {
	case err == nil:
		var defs []*domain.AddOnDefinition
		if err := json.Unmarshal(data, &defs); err == nil {
			return defs, nil
		}
		c.logger.Warn("AddOnCache: corrupted cache entry, reloading")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("AddOnCache: redis get failed: %v", err)
	}

	defs, err := c.source.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(defs); err == nil {
		if err := c.client.Set(ctx, addOnsKey, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("AddOnCache: redis set failed: %v", err)
		}
	}

	return defs, nil
}
