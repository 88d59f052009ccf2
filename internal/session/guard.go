// Package session identifies site visitors and guards their pending model calls.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/folio-lab/portfolio-backend/internal/apperr"
	"github.com/folio-lab/portfolio-backend/internal/logging"
)

const (
	inflightKeyPrefix = "portfolio:inflight:" // portfolio:inflight:{session}:{action}
	inflightTTL       = 3 * time.Minute       // upper bound in case a release is lost
)

// Action names a user-triggered model call.
type Action string

const (
	ActionTranslate       Action = "translate"
	ActionGeneratePalette Action = "generate-palette"
)

// Guard admits at most one pending request per session and action.
type Guard interface {
	// Acquire returns apperr.ErrRequestInFlight when the slot is taken.
	// The returned release func must be called once the request resolves.
	Acquire(ctx context.Context, sessionID string, action Action) (release func(), err error)
}

// releaseScript deletes the slot only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard shares in-flight slots across API replicas.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client, ttl: inflightTTL}
}

func (g *RedisGuard) Acquire(ctx context.Context, sessionID string, action Action) (func(), error) {
	key := inflightKey(sessionID, action)
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire in-flight slot: %v", apperr.ErrStorage, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperr.ErrRequestInFlight, action)
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			// The request context may already be done; release with a fresh one.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			releaseScript.Run(ctx, g.client, []string{key}, token)
		})
	}, nil
}

// MemoryGuard keeps in-flight slots in process memory.
type MemoryGuard struct {
	mu    sync.Mutex
	slots map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{slots: make(map[string]struct{})}
}

func (g *MemoryGuard) Acquire(_ context.Context, sessionID string, action Action) (func(), error) {
	key := inflightKey(sessionID, action)

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, taken := g.slots[key]; taken {
		return nil, fmt.Errorf("%w: %s", apperr.ErrRequestInFlight, action)
	}
	g.slots[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.slots, key)
			g.mu.Unlock()
		})
	}, nil
}

// Admit acquires the slot from g. A guard storage fault is logged and the
// request proceeds unguarded.
func Admit(ctx context.Context, g Guard, sessionID string, action Action) (func(), error) {
	release, err := g.Acquire(ctx, sessionID, action)
	if errors.Is(err, apperr.ErrStorage) {
		logging.FromContext(ctx).Warn().Err(err).Str("action", string(action)).Msg("In-flight guard unavailable")
		return func() {}, nil
	}
	return release, err
}

func inflightKey(sessionID string, action Action) string {
	return inflightKeyPrefix + sessionID + ":" + string(action)
}
