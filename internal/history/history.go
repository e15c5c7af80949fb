package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	config "github.com/integra/explorer/configs"
)

const (
	DefaultCapacity = 20
	DefaultKey      = "explorer:search_history"
)

// Entry is one recorded search. Timestamp is milliseconds since the epoch.
type Entry struct {
	Query     string          `json:"query"`
	Timestamp int64           `json:"timestamp"`
	Type      string          `json:"type"`
	Result    json.RawMessage `json:"result,omitempty"`
}

func NewEntry(query string, searchType string, result json.RawMessage, at time.Time) Entry {
	return Entry{
		Query:     query,
		Timestamp: at.UnixMilli(),
		Type:      searchType,
		Result:    result,
	}
}

// Store keeps the most recent searches, newest first, bounded by its capacity.
type Store interface {
	Push(ctx context.Context, entry Entry) error
	List(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) error
	Close() error
}

func NewStore(cfg *config.HistoryConfig) (Store, error) {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	switch cfg.Provider {
	case "", "memory":
		return NewMemoryStore(capacity), nil
	case "redis":
		if cfg.Redis == nil {
			return nil, fmt.Errorf("history provider redis requires redis config")
		}
		return NewRedisStore(cfg.Redis, cfg.Key, capacity)
	case "pebble":
		path := ""
		if cfg.Pebble != nil {
			path = cfg.Pebble.Path
		}
		return NewPebbleStore(path, capacity)
	case "badger":
		path := ""
		if cfg.Badger != nil {
			path = cfg.Badger.Path
		}
		return NewBadgerStore(path, capacity)
	}
	return nil, fmt.Errorf("unsupported history provider: %s", cfg.Provider)
}
