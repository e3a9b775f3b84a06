package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 3 * time.Minute
	limiterIdleTimeout   = 5 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client
type RateLimiter struct {
	mutex     sync.Mutex
	clients   map[string]*clientLimiter
	perMinute int
	limit     rate.Limit
}

// NewRateLimiter allows perMinute requests per client with an equal burst.
// Idle clients are swept until stop is closed.
func NewRateLimiter(perMinute int, stop <-chan struct{}) *RateLimiter {
	rl := &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		perMinute: perMinute,
	}
	if perMinute > 0 {
		rl.limit = rate.Every(time.Minute / time.Duration(perMinute))
	}

	if stop != nil {
		go rl.cleanup(stop)
	}

	return rl
}

// Allow spends a token for key at now and reports whether one was
// available, along with the whole tokens left.
func (rl *RateLimiter) Allow(key string, now time.Time) (bool, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	client, ok := rl.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.perMinute)}
		rl.clients[key] = client
	}
	client.lastSeen = now

	allowed := client.limiter.AllowN(now, 1)
	remaining := int(client.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	return allowed, remaining
}

func (rl *RateLimiter) cleanup(stop <-chan struct{}) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			rl.mutex.Lock()
			for key, client := range rl.clients {
				if now.Sub(client.lastSeen) > limiterIdleTimeout {
					delete(rl.clients, key)
				}
			}
			rl.mutex.Unlock()
		}
	}
}

// RateLimit throttles a route per client IP. A nil limiter or a limit of
// zero or less disables it.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.perMinute <= 0 {
			c.Next()
			return
		}

		now := time.Now()
		allowed, remaining := limiter.Allow(c.ClientIP(), now)
		resetAt := now.Add(time.Minute).Unix()

		c.Header("X-Rate-Limit-Limit", strconv.Itoa(limiter.perMinute))
		c.Header("X-Rate-Limit-Remaining", strconv.Itoa(remaining))
		c.Header("X-Rate-Limit-Reset", strconv.FormatInt(resetAt, 10))

		if !allowed {
			requestID, _ := c.Get("request_id")
			c.Header("Retry-After", strconv.Itoa(max(60/limiter.perMinute, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":       "RATE_LIMIT_EXCEEDED",
					"message":    "Rate limit exceeded. Please try again later.",
					"request_id": requestID,
					"details": gin.H{
						"limit":    limiter.perMinute,
						"window":   time.Minute.String(),
						"reset_at": resetAt,
					},
				},
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}

		c.Next()
	}
}
