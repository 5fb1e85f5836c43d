package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"cabin-backend/utils"
)

// ClientRateLimiter keeps one token-bucket limiter per client IP. With the
// default 5 requests per 60 seconds it throttles credential-guessing on the
// auth endpoints. In-memory and per-process, not distributed.
type ClientRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	rate      rate.Limit
	burst     int
	lastReset time.Time
}

// NewClientRateLimiter allows burst requests immediately and refills at
// requests/window thereafter.
func NewClientRateLimiter(requests int, window time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		rate:      rate.Limit(float64(requests) / window.Seconds()),
		burst:     requests,
		lastReset: time.Now(),
	}
}

func (l *ClientRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Drop the map periodically so idle IPs don't accumulate forever.
	if time.Since(l.lastReset) > time.Hour {
		l.limiters = make(map[string]*rate.Limiter)
		l.lastReset = time.Now()
	}

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// Middleware rejects over-limit clients with 429 and a Retry-After header
// holding the seconds until the next slot opens.
func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := l.get(c.ClientIP())
		reservation := limiter.Reserve()
		if !reservation.OK() {
			utils.JSONError(c, http.StatusTooManyRequests, "Too many requests, please try again later.")
			c.Abort()
			return
		}
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			retryAfter := int(math.Ceil(delay.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			utils.JSONError(c, http.StatusTooManyRequests, "Too many requests, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
