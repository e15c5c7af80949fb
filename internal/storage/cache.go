package storage

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var ErrCacheMiss = errors.New("cache miss")

const (
	cacheVersion       = 1
	defaultCacheTTL    = 30 * time.Second
	defaultCacheSizeMB = 64
	cacheKeyPrefix     = "explorer:stmt:"
)

// Cache stores serialized statement results.
type Cache interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Name() string
}

func NewCache(cfg *config.CacheConfig) (Cache, error) {
	switch cfg.Provider {
	case "redis":
		if cfg.Redis == nil {
			return nil, errors.New("redis cache selected but cache.redis is not configured")
		}
		client, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisCache(client), nil
	case "memory":
		return NewMemoryCache(cfg.Memory.SizeMB), nil
	default:
		return nil, fmt.Errorf("unsupported cache provider %q", cfg.Provider)
	}
}

var DEFAULT_REDIS_POOL_SIZE = 20

// NewRedisClient connects and pings a redis server.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DEFAULT_REDIS_POOL_SIZE
	}

	options := &redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	}
	if cfg.EnableTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return client, nil
}

type RedisCache struct {
	client redis.UniversalClient
}

func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Name() string { return "redis" }

func (c *RedisCache) GetBytes(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

func (c *RedisCache) SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

type MemoryCache struct {
	cache *freecache.Cache
}

func NewMemoryCache(sizeMB int) *MemoryCache {
	if sizeMB <= 0 {
		sizeMB = defaultCacheSizeMB
	}
	return &MemoryCache{cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (c *MemoryCache) Name() string { return "memory" }

func (c *MemoryCache) GetBytes(_ context.Context, key string) ([]byte, error) {
	value, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrCacheMiss
	}
	return value, err
}

func (c *MemoryCache) SetBytes(_ context.Context, key string, value []byte, expiration time.Duration) error {
	return c.cache.Set([]byte(key), value, int(expiration.Seconds()))
}

type cachedValue struct {
	Version uint64          `json:"i"`
	Value   json.RawMessage `json:"v"`
}

// CachedConnector serves repeated statements from a cache. Errors are never cached.
type CachedConnector struct {
	IMainStorage
	cache Cache
	ttl   time.Duration
}

func NewCachedConnector(inner IMainStorage, cache Cache, ttl time.Duration) *CachedConnector {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedConnector{IMainStorage: inner, cache: cache, ttl: ttl}
}

func (c *CachedConnector) SelectTransactions(ctx context.Context, stmt Statement) ([]common.TransactionRecord, error) {
	var records []common.TransactionRecord
	if c.load(ctx, stmt, &records) {
		return records, nil
	}
	records, err := c.IMainStorage.SelectTransactions(ctx, stmt)
	if err != nil {
		return nil, err
	}
	c.store(ctx, stmt, records)
	return records, nil
}

func (c *CachedConnector) SelectChainCounts(ctx context.Context, stmt Statement) ([]ChainCount, error) {
	var counts []ChainCount
	if c.load(ctx, stmt, &counts) {
		return counts, nil
	}
	counts, err := c.IMainStorage.SelectChainCounts(ctx, stmt)
	if err != nil {
		return nil, err
	}
	c.store(ctx, stmt, counts)
	return counts, nil
}

func (c *CachedConnector) SelectUint64(ctx context.Context, stmt Statement) (uint64, error) {
	var value uint64
	if c.load(ctx, stmt, &value) {
		return value, nil
	}
	value, err := c.IMainStorage.SelectUint64(ctx, stmt)
	if err != nil {
		return 0, err
	}
	c.store(ctx, stmt, value)
	return value, nil
}

func (c *CachedConnector) load(ctx context.Context, stmt Statement, target any) bool {
	key, err := statementKey(stmt)
	if err != nil {
		return false
	}
	data, err := c.cache.GetBytes(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.Warn().Err(err).Str("cache", c.cache.Name()).Msg("statement cache read failed")
		}
		metrics.CacheMisses.WithLabelValues(c.cache.Name()).Inc()
		return false
	}
	var cached cachedValue
	if err := json.Unmarshal(data, &cached); err != nil || cached.Version != cacheVersion {
		metrics.CacheMisses.WithLabelValues(c.cache.Name()).Inc()
		return false
	}
	if err := json.Unmarshal(cached.Value, target); err != nil {
		metrics.CacheMisses.WithLabelValues(c.cache.Name()).Inc()
		return false
	}
	metrics.CacheHits.WithLabelValues(c.cache.Name()).Inc()
	return true
}

func (c *CachedConnector) store(ctx context.Context, stmt Statement, value any) {
	key, err := statementKey(stmt)
	if err != nil {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	data, err := json.Marshal(cachedValue{Version: cacheVersion, Value: encoded})
	if err != nil {
		return
	}
	if err := c.cache.SetBytes(ctx, key, data, c.ttl); err != nil {
		log.Warn().Err(err).Str("cache", c.cache.Name()).Msg("statement cache write failed")
	}
}

func statementKey(stmt Statement) (string, error) {
	args, err := json.Marshal(stmt.Args)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(stmt.SQL+"\x00"), args...))
	return cacheKeyPrefix + stmt.Kind + ":" + hex.EncodeToString(sum[:]), nil
}
