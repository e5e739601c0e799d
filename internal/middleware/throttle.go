package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/labstack/echo"
)

// ThrottleMiddleware caps requests per user within a fixed window. The
// counter lives in redis so the limit holds across instances. Runs after
// WebTokenMiddleware; redis trouble fails open rather than blocking users.
func ThrottleMiddleware(rdb *redis.Client, limit int64, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := UserID(c)
			if !ok {
				return next(c)
			}

			key := "throttle:" + strconv.FormatInt(id, 10)
			count, err := rdb.Incr(key).Result()
			if err != nil {
				log.Println("throttle counter unavailable:", err)
				return next(c)
			}
			if count == 1 {
				rdb.Expire(key, window)
			}
			if count > limit {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"message": "Please slow down! You're sending requests too fast.",
				})
			}

			return next(c)
		}
	}
}
