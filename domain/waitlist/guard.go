package waitlist

import (
	"context"
	"sync"
	"time"

	"github.com/akeren/vannie-landing/internal/log"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// InFlightGuard allows at most one running submission per form instance.
// An empty key is never guarded.
type InFlightGuard interface {
	// Acquire returns ok=false when key is already held. release must be called when ok is true.
	Acquire(ctx context.Context, key string) (release func(), ok bool)
}

func noopRelease() {}

type memoryGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewMemoryGuard() InFlightGuard {
	return &memoryGuard{active: make(map[string]struct{})}
}

func (g *memoryGuard) Acquire(_ context.Context, key string) (func(), bool) {
	if key == "" {
		return noopRelease, true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.active[key]; held {
		return nil, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, true
}

// releaseScript deletes the key only while it still holds the caller's token,
// so an expired holder cannot free a lock taken by the next submission.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisGuard holds the key with SET NX PX so the guard spans replicas.
// The TTL bounds how long a crashed replica can block a form.
type redisGuard struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	logger    *log.Logger
}

func NewRedisGuard(client *redis.Client, ttl time.Duration, logger *log.Logger) InFlightGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisGuard{
		client:    client,
		ttl:       ttl,
		keyPrefix: "waitlist:inflight:",
		logger:    logger,
	}
}

func (g *redisGuard) Acquire(ctx context.Context, key string) (func(), bool) {
	if key == "" {
		return noopRelease, true
	}

	fullKey := g.keyPrefix + key
	token := uuid.NewString()

	acquired, err := g.client.SetNX(ctx, fullKey, token, g.ttl).Result()
	if err != nil {
		// Fail open; the unique constraint on email still applies.
		if g.logger != nil {
			g.logger.Warn("In-flight guard unavailable, allowing submission", "key", fullKey, "error", err)
		}
		return noopRelease, true
	}
	if !acquired {
		return nil, false
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			err := releaseScript.Run(context.Background(), g.client, []string{fullKey}, token).Err()
			if err != nil && g.logger != nil {
				g.logger.Warn("Failed to release in-flight guard", "key", fullKey, "error", err)
			}
		})
	}, true
}
