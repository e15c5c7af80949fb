package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog/log"
)

type PebbleStore struct {
	db       *pebble.DB
	mu       sync.Mutex
	capacity int
	nextSeq  uint64
}

func NewPebbleStore(path string, capacity int) (*PebbleStore, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), "explorer-history-pebble")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	cache := pebble.NewCache(8 << 20)
	defer cache.Unref()

	opts := &pebble.Options{
		MemTableSize:                4 << 20,
		MemTableStopWritesThreshold: 2,
		MaxConcurrentCompactions:    func() int { return 1 },
		Cache:                       cache,
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble history at %s: %w", path, err)
	}

	store := &PebbleStore{db: db, capacity: capacity}
	stored, err := store.scan()
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(stored) > 0 {
		last, err := entrySeq(stored[len(stored)-1].key)
		if err != nil {
			db.Close()
			return nil, err
		}
		store.nextSeq = last + 1
	}
	log.Debug().Str("path", path).Int("entries", len(stored)).Msg("opened pebble search history")
	return store, nil
}

// scan returns every decodable entry in ascending key order.
func (p *PebbleStore) scan() ([]storedEntry, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: entryPrefix,
		UpperBound: prefixUpperBound(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate pebble history: %w", err)
	}
	defer iter.Close()

	var stored []storedEntry
	for iter.First(); iter.Valid(); iter.Next() {
		if entry, ok := decodeEntry(iter.Key(), iter.Value()); ok {
			stored = append(stored, entry)
		}
	}
	return stored, iter.Error()
}

func (p *PebbleStore) Push(_ context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.db.Set(entryKey(p.nextSeq), data, pebble.Sync); err != nil {
		return fmt.Errorf("failed to write pebble history: %w", err)
	}
	p.nextSeq++

	stored, err := p.scan()
	if err != nil {
		return err
	}
	if len(stored) <= p.capacity {
		return nil
	}
	batch := p.db.NewBatch()
	defer batch.Close()
	for _, s := range stored[:len(stored)-p.capacity] {
		if err := batch.Delete(s.key, nil); err != nil {
			return fmt.Errorf("failed to evict pebble history: %w", err)
		}
	}
	return batch.Commit(pebble.Sync)
}

func (p *PebbleStore) List(_ context.Context) ([]Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, err := p.scan()
	if err != nil {
		return nil, err
	}
	if len(stored) > p.capacity {
		stored = stored[len(stored)-p.capacity:]
	}
	return newestFirst(stored), nil
}

func (p *PebbleStore) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.db.DeleteRange(entryPrefix, prefixUpperBound(), pebble.Sync)
}

func (p *PebbleStore) Close() error {
	return p.db.Close()
}
