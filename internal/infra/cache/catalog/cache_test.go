package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeSource struct {
	defs  []*domain.AddOnDefinition
	calls int
}

func (f *fakeSource) ListActive(context.Context) ([]*domain.AddOnDefinition, error) {
	f.calls++
	return f.defs, nil
}

type fakeRedis struct {
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestAddOnCache_ServesFromCacheWithinTTL(t *testing.T) {
	source := &fakeSource{defs: []*domain.AddOnDefinition{{Code: "pizza", Price: 2500, Mode: domain.AddOnModeFlat}}}
	rdb := newFakeRedis()
	c := NewAddOnCache(source, rdb, 30*time.Second, logger.NewNop())

	first, err := c.ListActive(context.Background())
	require.NoError(t, err)
	second, err := c.ListActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 30*time.Second, rdb.ttl)
	assert.Equal(t, first[0].Price, second[0].Price)
}

func TestAddOnCache_RedisFailureFallsBack(t *testing.T) {
	source := &fakeSource{defs: []*domain.AddOnDefinition{{Code: "pizza"}}}
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	c := NewAddOnCache(source, rdb, time.Minute, logger.NewNop())

	defs, err := c.ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, defs, 1)
	assert.Equal(t, 1, source.calls)
}
