package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/database"
)

const (
	// Giới hạn theo IP cho các endpoint tạo đơn/thanh toán.
	CheckoutMaxAttempts = 10
	CheckoutWindow      = 1 * time.Minute
)

// CheckoutRateLimit chặn spam đơn hàng: đếm request theo IP trong Redis,
// quá ngưỡng trả 429. Redis chưa kết nối thì bỏ qua (test, dev).
func CheckoutRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "checkout_rl:" + c.ClientIP()

		pipe := database.Redis.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, CheckoutWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			// Redis lỗi thì không chặn khách
			c.Next()
			return
		}

		if incr.Val() > CheckoutMaxAttempts {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Quá nhiều yêu cầu. Vui lòng thử lại sau %d giây", int(ttl.Seconds())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
