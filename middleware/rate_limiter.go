// console/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// RateLimiter limits console requests per client IP. The window is shared
// through Redis when it is connected, otherwise each process keeps its own
// token buckets.
func RateLimiter(limit int, per time.Duration) gin.HandlerFunc {
	local := newLocalLimiter(limit, per)
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed := true
		if db.RedisAvailable() {
			var err error
			allowed, err = db.RateLimit(c, key, limit, per)
			if err != nil {
				// Continue with the in-process limiter despite the error
				logger.Error("Rate limiting failed", zap.Error(err), zap.String("ip", key))
				allowed = local.allow(key)
			}
		} else {
			allowed = local.allow(key)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

type localLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func newLocalLimiter(limit int, per time.Duration) *localLimiter {
	if limit <= 0 {
		limit = 1
	}
	if per <= 0 {
		per = time.Minute
	}
	return &localLimiter{
		limit:    rate.Every(per / time.Duration(limit)),
		burst:    limit,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *localLimiter) allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
