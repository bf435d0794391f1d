package middleware

import (
	"net/http"
	"sync"
	"time"

	"luxora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterStore maps a caller key to its limiter. Authenticated traffic
// is keyed per company so one back-office tenant cannot starve
// another; unauthenticated traffic falls back to per-IP keys.
type limiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var store = &limiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// 120 requests per minute with a burst of 30 is generous for a
// back-office UI but still caps a runaway batch script.
const (
	requestsPerMinute = 120
	burstSize         = 30
)

func (s *limiterStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), burstSize)
		s.limiters[key] = limiter
	}
	return limiter
}

// limiterKey prefers the authenticated company scope over the caller's
// network address.
func limiterKey(c *gin.Context) string {
	if scope := ScopeFromContext(c); scope.CompanyID != "" {
		return "company:" + scope.CompanyID
	}
	return "ip:" + getClientIP(c)
}

// RateLimitMiddleware throttles requests per company (or per IP before
// authentication).
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := limiterKey(c)
		if !store.getLimiter(key).Allow() {
			utils.GetLogger().Warn("rate limit exceeded", zap.String("key", key))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
