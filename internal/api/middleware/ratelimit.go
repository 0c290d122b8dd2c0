package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

const (
	msgRateLimited        = "слишком много запросов, попробуйте позже"
	msgRateLimiterFailure = "сервис временно недоступен"
)

// fixedWindowScript увеличивает счетчик окна и ставит TTL при первом обращении
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter ограничивает частоту запросов с одного клиента (фиксированное окно в Redis)
type RateLimiter struct {
	rdb      redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	trustXFF bool
	metrics  RateLimitMetrics
	logger   Logger
}

// NewRateLimiter создает ограничитель: не более limit запросов за window
// При failOpen ошибки Redis пропускают запрос, иначе отвечают 503.
// X-Forwarded-For учитывается только при trustForwardedFor (сервис за доверенным прокси)
func NewRateLimiter(
	rdb redis.Scripter,
	limit int,
	window time.Duration,
	prefix string,
	failOpen bool,
	trustForwardedFor bool,
	metrics RateLimitMetrics,
	logger Logger,
) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	if strings.TrimSpace(prefix) == "" {
		prefix = "rl"
	}
	return &RateLimiter{
		rdb:      rdb,
		limit:    limit,
		window:   window,
		prefix:   prefix,
		failOpen: failOpen,
		trustXFF: trustForwardedFor,
		metrics:  metrics,
		logger:   logger,
	}
}

// Middleware возвращает http middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r, rl.trustXFF)
		requestID, _ := GetRequestID(r.Context())

		count, err := rl.incr(r.Context(), rl.prefix+":"+client)
		if err != nil {
			rl.logger.Error("%s %s - Rate limiter error: client=%s, request_id=%s, error=%v", r.Method, r.URL.Path, client, requestID, err)
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRateLimiterFailure)
			return
		}

		if count > int64(rl.limit) {
			rl.logger.Warn("%s %s - Rate limit exceeded: client=%s, request_id=%s, count=%d", r.Method, r.URL.Path, client, requestID, count)
			rl.metrics.IncRateLimited()
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	return fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Int64()
}

// clientKey IP клиента: RemoteAddr, а за доверенным прокси первый адрес X-Forwarded-For
func clientKey(r *http.Request, trustForwardedFor bool) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); trustForwardedFor && forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
