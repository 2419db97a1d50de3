package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused per-client limiter is kept
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key
type KeyedRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

// NewKeyedRateLimiter allows perMinute requests per key with the given burst
func NewKeyedRateLimiter(perMinute, burst int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
	}
}

// Allow reports whether a request for key may proceed now
func (k *KeyedRateLimiter) Allow(key string) bool {
	now := time.Now()

	k.mu.Lock()
	defer k.mu.Unlock()

	if now.Sub(k.lastSweep) > idleLimiterTTL {
		for key, cl := range k.limiters {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(k.limiters, key)
			}
		}
		k.lastSweep = now
	}

	cl, ok := k.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimit rejects clients, keyed by IP, that exceed the limiter with 429
func RateLimit(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				models.NewAPIError(models.ErrTooManyRequests, "Request was throttled."))
			return
		}
		c.Next()
	}
}
