package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// RedisCartStore keeps one serialized cart snapshot per owner in Redis.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Load(ctx context.Context, owner string) (string, bool, error) {
	payload, err := s.client.Get(ctx, cartKeyPrefix+owner).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

func (s *RedisCartStore) Save(ctx context.Context, owner string, payload string) error {
	return s.client.Set(ctx, cartKeyPrefix+owner, payload, 0).Err()
}
