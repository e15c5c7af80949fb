package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

type BadgerStore struct {
	db       *badger.DB
	mu       sync.Mutex
	capacity int
	seq      *badger.Sequence
}

// NewBadgerStore opens an on-disk store at path, or an in-memory one when
// path is empty.
func NewBadgerStore(path string, capacity int) (*BadgerStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.MemTableSize = 8 << 20
	opts.BaseTableSize = 2 << 20
	opts.ValueLogFileSize = 16 << 20
	opts.NumCompactors = 2
	opts.SyncWrites = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger history: %w", err)
	}
	seq, err := db.GetSequence([]byte("history:seq"), 16)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open badger history sequence: %w", err)
	}
	log.Debug().Str("path", path).Msg("opened badger search history")
	return &BadgerStore{db: db, capacity: capacity, seq: seq}, nil
}

func (b *BadgerStore) scan(txn *badger.Txn) ([]storedEntry, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = entryPrefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var stored []storedEntry
	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		err := item.Value(func(val []byte) error {
			if entry, ok := decodeEntry(item.Key(), val); ok {
				stored = append(stored, entry)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return stored, nil
}

func (b *BadgerStore) Push(_ context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := b.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to allocate history sequence: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(entryKey(next), data); err != nil {
			return err
		}
		stored, err := b.scan(txn)
		if err != nil {
			return err
		}
		if len(stored) <= b.capacity {
			return nil
		}
		for _, s := range stored[:len(stored)-b.capacity] {
			if err := txn.Delete(s.key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BadgerStore) List(_ context.Context) ([]Entry, error) {
	var entries []Entry
	err := b.db.View(func(txn *badger.Txn) error {
		stored, err := b.scan(txn)
		if err != nil {
			return err
		}
		if len(stored) > b.capacity {
			stored = stored[len(stored)-b.capacity:]
		}
		entries = newestFirst(stored)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read badger history: %w", err)
	}
	return entries, nil
}

func (b *BadgerStore) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db.DropPrefix(entryPrefix)
}

func (b *BadgerStore) Close() error {
	if err := b.seq.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release history sequence")
	}
	return b.db.Close()
}
