package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiterMu sync.Mutex
	limiters  = make(map[string]*clientLimiter)
)

// RateLimitMiddleware enforces a per-client request budget keyed by IP.
// Stale entries are evicted lazily so the map does not grow unbounded.
func RateLimitMiddleware(maxRequestsPerMin int) gin.HandlerFunc {
	if maxRequestsPerMin <= 0 {
		maxRequestsPerMin = 60
	}
	limit := rate.Every(time.Minute / time.Duration(maxRequestsPerMin))

	return func(c *gin.Context) {
		ip := GetClientIP(c)

		limiterMu.Lock()
		cl, ok := limiters[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(limit, maxRequestsPerMin)}
			limiters[ip] = cl
		}
		cl.lastSeen = time.Now()
		if len(limiters) > 10000 {
			for k, v := range limiters {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(limiters, k)
				}
			}
		}
		limiterMu.Unlock()

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
