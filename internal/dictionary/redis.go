// Redis-backed dictionary: one SET per locale, keyed <prefix>dict:<locale>.
package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyDict    = "dict:%s"
	redisImportSize = 500
)

// RedisClient is the minimal Redis interface needed (satisfied by *redis.Client, *redis.ClusterClient).
type RedisClient interface {
	SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SCard(ctx context.Context, key string) *redis.IntCmd
}

// Redis answers lookups with SISMEMBER.
type Redis struct {
	client RedisClient
	prefix string
}

// NewRedis creates a dictionary using the given client. Optional key prefix (e.g. "scramble:").
func NewRedis(client RedisClient, prefix string) *Redis {
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(locale string) string {
	return r.prefix + fmt.Sprintf(redisKeyDict, normalizeLocale(locale))
}

// Import adds words to the locale set in batches. Returns members added.
func (r *Redis) Import(ctx context.Context, locale string, words []string) (int, error) {
	k := r.key(locale)
	added := 0
	batch := make([]interface{}, 0, redisImportSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := r.client.SAdd(ctx, k, batch...).Result()
		if err != nil {
			return fmt.Errorf("redis dictionary import: %w", err)
		}
		added += int(n)
		batch = batch[:0]
		return nil
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		batch = append(batch, w)
		if len(batch) == redisImportSize {
			if err := flush(); err != nil {
				return added, err
			}
		}
	}
	return added, flush()
}

// Count returns the size of the locale set.
func (r *Redis) Count(ctx context.Context, locale string) (int, error) {
	n, err := r.client.SCard(ctx, r.key(locale)).Result()
	return int(n), err
}

// IsWordRecognized checks set membership.
func (r *Redis) IsWordRecognized(ctx context.Context, word, locale string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key(locale), strings.ToLower(word)).Result()
	if err != nil {
		return false, fmt.Errorf("redis dictionary lookup: %w", err)
	}
	return ok, nil
}
