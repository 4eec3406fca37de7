package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
)

const (
	msgRateLimited        = "too many requests, try again later"
	msgLimiterUnavailable = "rate limiter unavailable"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type incrFunc func(ctx context.Context, key string) (int64, error)

// RateLimiter is a fixed-window limiter keyed by client IP. Counters live in
// Redis so every instance of the service shares the same budget.
type RateLimiter struct {
	incr     incrFunc
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	logger   Logger
}

func NewRedisRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string, failOpen bool, logger Logger) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	ms := window.Milliseconds()
	incr := func(ctx context.Context, key string) (int64, error) {
		res, err := fixedWindowScript.Run(ctx, rdb, []string{key}, ms).Result()
		if err != nil {
			return 0, err
		}
		return toInt64(res)
	}
	return newRateLimiter(incr, limit, window, prefix, failOpen, logger)
}

func newRateLimiter(incr incrFunc, limit int, window time.Duration, prefix string, failOpen bool, logger Logger) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RateLimiter{incr: incr, limit: limit, window: window, prefix: prefix, failOpen: failOpen, logger: logger}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := rl.incr(r.Context(), rl.prefix+":"+clientKey(r))
		if err != nil {
			rl.logger.Warn("RateLimiter: redis error: %v", err)
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLimiterUnavailable)
			return
		}
		if count > int64(rl.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func toInt64(res interface{}) (int64, error) {
	switch v := res.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
