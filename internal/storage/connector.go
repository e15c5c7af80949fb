package storage

import (
	"context"
	"fmt"
	"time"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/common"
)

// ChainCount is one row of a per-chain grouped count.
type ChainCount struct {
	ChainId uint64 `db:"chain_id" json:"chainId"`
	Count   uint64 `db:"count" json:"count"`
}

// IMainStorage runs statements against the transactions ledger.
// Failures are wrapped with ErrStoreUnavailable or ErrTimeout.
type IMainStorage interface {
	SelectTransactions(ctx context.Context, stmt Statement) ([]common.TransactionRecord, error)
	SelectChainCounts(ctx context.Context, stmt Statement) ([]ChainCount, error)
	SelectUint64(ctx context.Context, stmt Statement) (uint64, error)
	Dialect() Dialect
	Ping(ctx context.Context) error
	Close() error
}

type IStorage struct {
	MainStorage IMainStorage
	Builder     *QueryBuilder
}

// NewStorageConnector opens the main store, wraps it with the configured cache
// and prepares a query builder for its dialect.
func NewStorageConnector(cfg *config.StorageConfig, cacheCfg *config.CacheConfig) (IStorage, error) {
	main, err := NewConnector[IMainStorage](&cfg.Main)
	if err != nil {
		return IStorage{}, fmt.Errorf("failed to create main storage: %w", err)
	}

	fields, err := DocumentFieldStrategyFor(cfg.Main.DocumentFields)
	if err != nil {
		main.Close()
		return IStorage{}, err
	}

	if cacheCfg != nil && cacheCfg.Provider != "" {
		cache, err := NewCache(cacheCfg)
		if err != nil {
			main.Close()
			return IStorage{}, fmt.Errorf("failed to create statement cache: %w", err)
		}
		main = NewCachedConnector(main, cache, time.Duration(cacheCfg.TTLSeconds)*time.Second)
	}

	return IStorage{
		MainStorage: main,
		Builder:     NewQueryBuilder(main.Dialect(), cfg.Main.Table, fields),
	}, nil
}

func NewConnector[T any](cfg *config.StorageConnectionConfig) (T, error) {
	var conn interface{}
	var err error
	switch {
	case cfg.Engine == config.StorageEngineClickhouse && cfg.Clickhouse != nil,
		cfg.Engine == config.StorageEnginePostgres && cfg.Postgres != nil,
		cfg.Engine == config.StorageEngineMysql && cfg.Mysql != nil,
		(cfg.Engine == config.StorageEngineSqlite || cfg.Engine == "") && cfg.Sqlite != nil:
		conn, err = NewSQLConnector(cfg)
	default:
		return *new(T), fmt.Errorf("no storage driver configured for engine %q", cfg.Engine)
	}

	if err != nil {
		return *new(T), err
	}

	typedConn, ok := conn.(T)
	if !ok {
		return *new(T), fmt.Errorf("connector does not implement the required interface")
	}

	return typedConn, nil
}
