package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counts hits in a fixed window keyed by limiter key; the first hit in a
// window sets the expiry. ARGV[1] is the window in milliseconds, ARGV[2]
// the quota.
const fixedWindowScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if hits > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const redisCallTimeout = 250 * time.Millisecond

type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(fixedWindowScript),
	}
}

// Allow fails open: when redis is unreachable the request is admitted
// rather than turning a limiter outage into an auth outage.
func (l *RedisLimiter) Allow(key string, quota Limit) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || quota.Requests <= 0 || quota.Window <= 0 {
		return true
	}
	windowMillis := quota.Window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, windowMillis, quota.Requests).Int64()
	if err != nil {
		slog.Warn("rate limit check failed, admitting request", "key", key, "error", err)
		return true
	}
	return allowed == 1
}
