package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Redis stores collections as JSON strings in a Redis instance, for
// deployments where the canteen data should outlive the host.
type Redis struct {
	rdb       *redis.Client
	namespace string
}

// OpenRedis connects to the Redis instance at redisURL and verifies the
// connection with a ping.
func OpenRedis(redisURL, namespace string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{rdb: rdb, namespace: namespace}, nil
}

func (s *Redis) Save(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", collection, err)
	}
	return s.rdb.Set(ctx, key(s.namespace, collection), data, 0).Err()
}

func (s *Redis) Load(ctx context.Context, collection string, dest any) (bool, error) {
	val, err := s.rdb.Get(ctx, key(s.namespace, collection)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", collection, err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		log.Warn().Str("collection", collection).Err(err).Msg("discarding corrupt stored record")
		return false, nil
	}
	return true, nil
}

func (s *Redis) Close() error {
	return s.rdb.Close()
}
