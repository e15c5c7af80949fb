package history

import (
	"context"
	"encoding/json"
	"fmt"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/storage"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the history in a single list, newest at the head.
type RedisStore struct {
	client   redis.UniversalClient
	key      string
	capacity int
}

func NewRedisStore(cfg *config.RedisConfig, key string, capacity int) (*RedisStore, error) {
	client, err := storage.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewRedisStoreFromClient(client, key, capacity), nil
}

func NewRedisStoreFromClient(client redis.UniversalClient, key string, capacity int) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RedisStore{client: client, key: key, capacity: capacity}
}

func (r *RedisStore) Push(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, 0, int64(r.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push history entry: %w", err)
	}
	return nil
}

func (r *RedisStore) List(ctx context.Context) ([]Entry, error) {
	values, err := r.client.LRange(ctx, r.key, 0, int64(r.capacity-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	entries := make([]Entry, 0, len(values))
	for _, value := range values {
		var entry Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
