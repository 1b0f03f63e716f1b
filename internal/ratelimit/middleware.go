package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/noah-isme/backend-resto/internal/common"
)

// Config describes how to derive a rate limit key and thresholds.
type Config struct {
	Key    func(*http.Request) string
	Window time.Duration
	Max    int
}

// NewStore returns a Redis-backed limiter store, or an in-process one when client is nil.
func NewStore(client redis.UniversalClient, prefix string) (limiter.Store, error) {
	if prefix == "" {
		prefix = "ratelimit"
	}
	if client == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: prefix, CleanUpInterval: limiter.DefaultCleanUpInterval}), nil
	}
	return limiterredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: prefix})
}

// Handler enforces rate limits before delegating to the next handler.
type Handler struct {
	limiter *limiter.Limiter
	key     func(*http.Request) string
	logger  zerolog.Logger
}

// New builds a Handler over store. A non-positive Max or Window disables limiting.
func New(store limiter.Store, cfg Config, logger zerolog.Logger) *Handler {
	h := &Handler{key: cfg.Key, logger: logger}
	if h.key == nil {
		h.key = ClientIPKey
	}
	if store != nil && cfg.Max > 0 && cfg.Window > 0 {
		h.limiter = limiter.New(store, limiter.Rate{Period: cfg.Window, Limit: int64(cfg.Max)})
	}
	return h
}

// Middleware implements the http.Handler middleware interface.
// Store failures let the request through.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h == nil || h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		lc, err := h.limiter.Get(r.Context(), h.key(r))
		if err != nil {
			h.logger.Warn().Err(err).Msg("rate limit store unavailable")
			next.ServeHTTP(w, r)
			return
		}

		headers := w.Header()
		headers.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
		headers.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
		headers.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))

		if lc.Reached {
			retryAfter := time.Until(time.Unix(lc.Reset, 0)).Seconds()
			if retryAfter < 0 {
				retryAfter = 0
			}
			headers.Set("Retry-After", strconv.Itoa(int(retryAfter)))
			common.JSONError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, try again later", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIPKey keys requests by route and remote address.
func ClientIPKey(r *http.Request) string {
	return r.URL.Path + "|" + common.ClientIP(r)
}
