// file: internal/middleware/rate_limiter.go
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"badgehub/internal/cache"
	"badgehub/internal/contextutils"
	"badgehub/internal/response"
	"badgehub/internal/services"
)

// RateLimit enforces a fixed-window per-client request limit backed by
// the cache, so the window is shared across instances when Redis is the
// provider. Limiting fails open when the cache is unavailable.
func RateLimit(store cache.Cache, builder *response.Builder, perMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if perMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			window := time.Now().Unix() / 60
			key := fmt.Sprintf("ratelimit:%s:%d", ClientIP(r), window)

			count, err := store.Increment(r.Context(), key, 1, 2*time.Minute)
			if err != nil {
				contextutils.GetLogger(r.Context()).Warn("Rate limiter cache unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(perMinute) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(perMinute) {
				builder.WriteError(w, r, services.NewRateLimitError("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Chain composes middlewares, first in the slice runs outermost.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		h := final
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
