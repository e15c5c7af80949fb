package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedConnector_ServesRepeatedStatementsFromCache(t *testing.T) {
	inner := mocks.NewMockIMainStorage(t)
	cached := storage.NewCachedConnector(inner, storage.NewMemoryCache(1), time.Minute)
	ctx := context.Background()

	stmt := storage.Statement{Kind: "transaction_by_hash", SQL: "SELECT 1", Args: []any{"0xabc", 10}}
	record := common.TransactionRecord{
		Id:              3,
		ChainId:         137,
		TransactionHash: "0xabc",
		BlockTimestamp:  common.BlockTimestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		TransactionData: `{}`,
		ReceiptData:     `{"status":1}`,
	}
	inner.EXPECT().SelectTransactions(mock.Anything, stmt).Return([]common.TransactionRecord{record}, nil).Once()

	first, err := cached.SelectTransactions(ctx, stmt)
	require.NoError(t, err)
	second, err := cached.SelectTransactions(ctx, stmt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.True(t, record.BlockTimestamp.Equal(second[0].BlockTimestamp.Time))
	assert.Equal(t, "0xabc", second[0].TransactionHash)
}

func TestCachedConnector_DifferentArgsAreDifferentKeys(t *testing.T) {
	inner := mocks.NewMockIMainStorage(t)
	cached := storage.NewCachedConnector(inner, storage.NewMemoryCache(1), time.Minute)
	ctx := context.Background()

	one := storage.Statement{Kind: "count_transactions", SQL: "SELECT COUNT(*) AS count FROM transactions WHERE chain_id = ?", Args: []any{uint64(1)}}
	two := storage.Statement{Kind: "count_transactions", SQL: one.SQL, Args: []any{uint64(2)}}
	inner.EXPECT().SelectUint64(mock.Anything, one).Return(uint64(10), nil).Once()
	inner.EXPECT().SelectUint64(mock.Anything, two).Return(uint64(20), nil).Once()

	for i := 0; i < 2; i++ {
		value, err := cached.SelectUint64(ctx, one)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), value)

		value, err = cached.SelectUint64(ctx, two)
		require.NoError(t, err)
		assert.Equal(t, uint64(20), value)
	}
}

func TestCachedConnector_ErrorsAreNotCached(t *testing.T) {
	inner := mocks.NewMockIMainStorage(t)
	cached := storage.NewCachedConnector(inner, storage.NewMemoryCache(1), time.Minute)
	ctx := context.Background()

	stmt := storage.Statement{Kind: "block_chain_counts", SQL: "SELECT chain_id", Args: []any{uint64(5)}}
	inner.EXPECT().SelectChainCounts(mock.Anything, stmt).Return(nil, storage.ErrStoreUnavailable).Once()
	inner.EXPECT().SelectChainCounts(mock.Anything, stmt).Return([]storage.ChainCount{{ChainId: 1, Count: 2}}, nil).Once()

	_, err := cached.SelectChainCounts(ctx, stmt)
	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)

	counts, err := cached.SelectChainCounts(ctx, stmt)
	require.NoError(t, err)
	assert.Equal(t, []storage.ChainCount{{ChainId: 1, Count: 2}}, counts)

	counts, err = cached.SelectChainCounts(ctx, stmt)
	require.NoError(t, err)
	assert.Equal(t, []storage.ChainCount{{ChainId: 1, Count: 2}}, counts)
}

type failingCache struct{}

func (failingCache) GetBytes(context.Context, string) ([]byte, error) {
	return nil, errors.New("cache offline")
}

func (failingCache) SetBytes(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache offline")
}

func (failingCache) Name() string { return "failing" }

func TestCachedConnector_CacheFailuresFallThrough(t *testing.T) {
	inner := mocks.NewMockIMainStorage(t)
	cached := storage.NewCachedConnector(inner, failingCache{}, time.Minute)

	stmt := storage.Statement{Kind: "count_chains", SQL: "SELECT COUNT(DISTINCT chain_id) AS count FROM transactions"}
	inner.EXPECT().SelectUint64(mock.Anything, stmt).Return(uint64(3), nil).Twice()

	for i := 0; i < 2; i++ {
		value, err := cached.SelectUint64(context.Background(), stmt)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), value)
	}
}

func TestCachedConnector_PassesThroughDialect(t *testing.T) {
	inner := mocks.NewMockIMainStorage(t)
	inner.EXPECT().Dialect().Return(storage.DialectPostgres)
	cached := storage.NewCachedConnector(inner, storage.NewMemoryCache(1), 0)
	assert.Equal(t, storage.DialectPostgres, cached.Dialect())
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := storage.NewMemoryCache(1)
	_, err := cache.GetBytes(context.Background(), "absent")
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	require.NoError(t, cache.SetBytes(context.Background(), "present", []byte("v"), time.Minute))
	value, err := cache.GetBytes(context.Background(), "present")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}
