package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix   = "projetflow:auth:token:"
	revokedKeyPrefix = "projetflow:auth:revoked:"
)

// TokenEntry is what a cached token hash resolves to.
type TokenEntry struct {
	UserID  uuid.UUID
	TokenID uuid.UUID
}

func (e TokenEntry) encode() string {
	return e.UserID.String() + "|" + e.TokenID.String()
}

func decodeEntry(raw string) (TokenEntry, bool) {
	u, t, ok := strings.Cut(raw, "|")
	if !ok {
		return TokenEntry{}, false
	}
	userID, err := uuid.Parse(u)
	if err != nil {
		return TokenEntry{}, false
	}
	tokenID, err := uuid.Parse(t)
	if err != nil {
		return TokenEntry{}, false
	}
	return TokenEntry{UserID: userID, TokenID: tokenID}, true
}

// TokenCache maps a token secret hash to its owner and token id.
// Delete leaves a tombstone for the cache TTL so a lookup that read the
// row before the revocation cannot cache it again.
type TokenCache interface {
	Get(ctx context.Context, hash string) (TokenEntry, bool, error)
	Set(ctx context.Context, hash string, e TokenEntry) error
	Delete(ctx context.Context, hashes ...string) error
}

// KEYS[1] entry, KEYS[2] tombstone; ARGV[1] value, ARGV[2] ttl in ms.
var setUnlessRevoked = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

type redisTokenCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTokenCache falls back to a no-op cache when rdb is nil.
func NewTokenCache(rdb *redis.Client, ttl time.Duration) TokenCache {
	if rdb == nil {
		return noopTokenCache{}
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &redisTokenCache{rdb: rdb, ttl: ttl}
}

func (c *redisTokenCache) Get(ctx context.Context, hash string) (TokenEntry, bool, error) {
	raw, err := c.rdb.Get(ctx, tokenKeyPrefix+hash).Result()
	if errors.Is(err, redis.Nil) {
		return TokenEntry{}, false, nil
	}
	if err != nil {
		return TokenEntry{}, false, err
	}
	e, ok := decodeEntry(raw)
	if !ok {
		// corrupt entry, treat as a miss
		return TokenEntry{}, false, nil
	}
	return e, true, nil
}

func (c *redisTokenCache) Set(ctx context.Context, hash string, e TokenEntry) error {
	keys := []string{tokenKeyPrefix + hash, revokedKeyPrefix + hash}
	return setUnlessRevoked.Run(ctx, c.rdb, keys, e.encode(), c.ttl.Milliseconds()).Err()
}

func (c *redisTokenCache) Delete(ctx context.Context, hashes ...string) error {
	if len(hashes) == 0 {
		return nil
	}
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, h := range hashes {
			p.Set(ctx, revokedKeyPrefix+h, 1, c.ttl)
			p.Del(ctx, tokenKeyPrefix+h)
		}
		return nil
	})
	return err
}

type noopTokenCache struct{}

func (noopTokenCache) Get(context.Context, string) (TokenEntry, bool, error) {
	return TokenEntry{}, false, nil
}
func (noopTokenCache) Set(context.Context, string, TokenEntry) error { return nil }
func (noopTokenCache) Delete(context.Context, ...string) error       { return nil }
