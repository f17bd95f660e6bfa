package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConsumedTokenRegistry records verification tokens that have already been
// presented, backed by Redis. The state-bound token hash invalidates tokens
// once the verified flag flips, but leaves a replay window until that write
// lands; this registry closes it.
// Key format: verify:consumed:<uid>:<token>
type ConsumedTokenRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewConsumedTokenRegistry wraps the given Redis client. Entries expire
// after ttl, which should match the token expiry window — a token older
// than that is rejected by the verifier anyway.
func NewConsumedTokenRegistry(client *redis.Client, ttl time.Duration) *ConsumedTokenRegistry {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ConsumedTokenRegistry{client: client, ttl: ttl}
}

// Consume atomically marks the token as used. Returns false when the token
// had already been consumed.
func (r *ConsumedTokenRegistry) Consume(ctx context.Context, uid, token string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(uid, token), "1", r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("consume token: %w", err)
	}
	return ok, nil
}

func (r *ConsumedTokenRegistry) key(uid, token string) string {
	return fmt.Sprintf("verify:consumed:%s:%s", uid, token)
}
