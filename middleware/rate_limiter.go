// middleware/rate_limiter.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	ctx = context.Background()
	rdb *redis.Client
)

// SetRedisClient wires the shared redis client. A nil client disables
// limiting entirely.
func SetRedisClient(client *redis.Client) {
	rdb = client
}

// RateLimit applies a fixed-window per-IP limit to an endpoint. Fails open on
// redis errors: a broken limiter must not take the API down.
func RateLimit(name string, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		// INCR and EXPIRE run in one MULTI/EXEC round trip. ExpireNX arms
		// the window on first increment and re-arms it if a previous arm
		// was lost, so a counter can never survive without a TTL.
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.Next()
			return
		}

		if incr.Val() > int64(maxRequests) {
			utils.RespondWithError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}
