package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for a fixed-window rate limiter
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore = sync.Map{}
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL seconds.
// Returns [current_count, ttl_remaining].
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit returns a fixed-window limiter backed by Redis, falling back to
// an in-process store when Redis is unavailable.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		count, retryAfter := incrCounter(c, key, cfg.Window)

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// incrCounter bumps the window counter for key and returns the new count and
// the time until the window resets.
func incrCounter(c *gin.Context, key string, window time.Duration) (int, time.Duration) {
	if client := redis.Client(); client != nil {
		res, err := client.Eval(c.Request.Context(), rateLimitLuaScript, []string{key},
			int(window.Seconds())).Result()
		if err == nil {
			if vals, ok := res.([]interface{}); ok && len(vals) == 2 {
				count, _ := vals[0].(int64)
				ttl, _ := vals[1].(int64)
				return int(count), time.Duration(ttl) * time.Second
			}
		}
		// fall through to the in-memory store on any Redis failure
	}

	now := time.Now()
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}

// GlobalRateLimit limits all traffic per client IP.
func GlobalRateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return RateLimit(RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:global:",
	})
}

// LoginRateLimit applies a tighter limit to credential endpoints.
func LoginRateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return RateLimit(RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:login:",
	})
}
