package mw

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters stores a rate limiter per client key.
type clientLimiters struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	limiter, ok := cl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(cl.r, cl.b)
		cl.limiters[key] = limiter
	}
	return limiter
}

// RateLimiter limits requests per client. The client key is taken from
// ipHeader when set (for deployments behind a trusted proxy), otherwise
// from the connection's client IP.
func RateLimiter(r rate.Limit, b int, ipHeader string) gin.HandlerFunc {
	cl := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
	return func(c *gin.Context) {
		key := ""
		if ipHeader != "" {
			key = strings.TrimSpace(c.GetHeader(ipHeader))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if !cl.get(key).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
