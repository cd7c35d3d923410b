package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
)

const (
	rateLimitPrefix = "party-booking:ratelimit"
	msgTooManyReqs  = "too many requests, try again later"
)

// NewRateLimitStore хранилище счётчиков: Redis, если клиент задан, иначе память процесса
func NewRateLimitStore(client *redis.Client) (limiter.Store, error) {
	if client == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitPrefix}), nil
	}

	store, err := redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   rateLimitPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("ratelimit: create redis store: %w", err)
	}
	return store, nil
}

// RateLimit ограничивает число запросов с одного IP. rate в формате limiter ("20-M").
// IP берётся из X-Forwarded-For/X-Real-IP только при trustForwardHeader
func RateLimit(rate string, trustForwardHeader bool, store limiter.Store, logger Logger) (mux.MiddlewareFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("ratelimit: invalid rate %q: %w", rate, err)
	}

	instance := limiter.New(store, parsed, limiter.WithTrustForwardHeader(trustForwardHeader))

	mw := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("%s %s - Rate limit reached", r.Method, r.URL.Path)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyReqs)
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Warn("%s %s - Rate limit store error: %v", r.Method, r.URL.Path, err)
			handlers.RespondInternalError(w)
		}),
	)

	return mw.Handler, nil
}
