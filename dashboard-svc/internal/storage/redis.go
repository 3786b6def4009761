package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodplate-dashboard/dashboard-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const SnapshotKey = "dashboard:foods"

type RedisSnapshotStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{Client: client, TTL: ttl}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, foods []domain.FoodPlate) error {
	payload, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.Client.Set(ctx, SnapshotKey, payload, s.TTL).Err()
}

func (s *RedisSnapshotStore) Restore(ctx context.Context) ([]domain.FoodPlate, error) {
	payload, err := s.Client.Get(ctx, SnapshotKey).Bytes()
	if err != nil {
		return nil, err
	}
	var foods []domain.FoodPlate
	if err := json.Unmarshal(payload, &foods); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return foods, nil
}
