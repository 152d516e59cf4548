package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute

	APIMaxRequests = 100
	APIWindow      = 1 * time.Minute
)

// LoginRateLimit counts failed login attempts per client IP in Redis and
// blocks the IP for LoginCooldown once the budget is spent. A successful
// login clears the counters.
func LoginRateLimit(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		ctx := c.Context()
		ip := c.IP()
		attemptsKey := "login:attempts:" + ip
		cooldownKey := "login:cooldown:" + ip

		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			c.Set("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			return TooManyRequests(fmt.Sprintf("Too many failed attempts, retry in %d minutes", int(ttl.Minutes())+1))
		}

		attempts, _ := rdb.Get(ctx, attemptsKey).Int()
		if attempts >= LoginMaxAttempts {
			rdb.Set(ctx, cooldownKey, "1", LoginCooldown)
			rdb.Del(ctx, attemptsKey)
			c.Set("Retry-After", fmt.Sprintf("%d", int(LoginCooldown.Seconds())))
			return TooManyRequests(fmt.Sprintf("Too many failed attempts, retry in %d minutes", int(LoginCooldown.Minutes())))
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusUnauthorized:
			rdb.Incr(ctx, attemptsKey)
			rdb.Expire(ctx, attemptsKey, LoginCooldown)
		case fiber.StatusOK:
			rdb.Del(ctx, attemptsKey)
			rdb.Del(ctx, cooldownKey)
		}

		return err
	}
}

// APIRateLimit is a coarse per-IP request budget for the public endpoints.
func APIRateLimit(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		ctx := c.Context()
		key := "api:requests:" + c.IP()

		requests, _ := rdb.Get(ctx, key).Int()
		if requests >= APIMaxRequests {
			c.Set("Retry-After", fmt.Sprintf("%d", int(APIWindow.Seconds())))
			return TooManyRequests("Too many requests")
		}

		pipe := rdb.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, APIWindow)
		_, _ = pipe.Exec(ctx)

		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests-1))

		return c.Next()
	}
}
