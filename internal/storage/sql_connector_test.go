package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func hash(prefix string) string {
	h := "0x" + prefix
	for len(h) < 66 {
		h += "0"
	}
	return h
}

func fixtures() []common.TransactionRecord {
	return []common.TransactionRecord{
		testdb.Record(137, 100, hash("a1"), baseTime, `{"integraHash":"0xih1","documentHash":"0xdh1","method":"registerDocument"}`),
		testdb.Record(137, 101, hash("a2"), baseTime.Add(time.Minute), `{"integraHash":"0xih2","documentHash":"0xdh2","method":"transferDocument"}`),
		testdb.Record(137, 101, hash("a3"), baseTime.Add(time.Minute), `{"integraHash":"0xih3","documentHash":"0xdh3","processHash":"0xph3","method":"registerDocument"}`),
		testdb.Record(1, 101, hash("b1"), baseTime.Add(2*time.Minute), ""),
		testdb.Record(1, 250, hash("B2"), baseTime.Add(3*time.Minute), `{"integraHash":"0xih5"}`),
	}
}

func TestSQLConnector_ListAndCountAgree(t *testing.T) {
	store, builder := testdb.NewStore(t, fixtures()...)
	ctx := context.Background()
	chain := uint64(137)

	plan := builder.Build(storage.QueryFilter{ChainId: &chain, Limit: 2, Page: 1})
	page, err := store.SelectTransactions(ctx, plan.SelectStatement())
	require.NoError(t, err)
	total, err := store.SelectUint64(ctx, plan.CountStatement())
	require.NoError(t, err)

	assert.Equal(t, uint64(3), total)
	require.Len(t, page, 2)
	// newest first, ties broken by hash descending
	assert.Equal(t, hash("a3"), page[0].TransactionHash)
	assert.Equal(t, hash("a2"), page[1].TransactionHash)

	plan = builder.Build(storage.QueryFilter{ChainId: &chain, Limit: 2, Page: 2})
	page, err = store.SelectTransactions(ctx, plan.SelectStatement())
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, hash("a1"), page[0].TransactionHash)
	assert.Equal(t, uint64(100), page[0].BlockNumber)
	assert.True(t, baseTime.Equal(page[0].BlockTimestamp.Time))
	assert.True(t, page[0].DocumentData.Valid)
}

func TestSQLConnector_DocumentFieldFilters(t *testing.T) {
	store, builder := testdb.NewStore(t, fixtures()...)
	ctx := context.Background()

	records, err := store.SelectTransactions(ctx, builder.Build(storage.QueryFilter{Method: "registerDocument"}).SelectStatement())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = store.SelectTransactions(ctx, builder.Build(storage.QueryFilter{ProcessHash: "0xph3"}).SelectStatement())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, hash("a3"), records[0].TransactionHash)

	records, err = store.SelectTransactions(ctx, builder.TransactionsByDocumentField(storage.DocumentFieldDocumentHash, "0xdh2", 10))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, hash("a2"), records[0].TransactionHash)
}

func TestSQLConnector_ColumnStrategyMatchesJSONPath(t *testing.T) {
	store, _ := testdb.NewStore(t, fixtures()...)
	columns := storage.NewQueryBuilder(storage.DialectSqlite, "transactions", storage.ColumnStrategy{})

	records, err := store.SelectTransactions(context.Background(), columns.Build(storage.QueryFilter{IntegraHash: "0xih5"}).SelectStatement())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, hash("B2"), records[0].TransactionHash)
}

func TestSQLConnector_CorruptDocumentDataDoesNotFailLookups(t *testing.T) {
	corrupt := testdb.Record(1, 30, hash("c9"), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "{not json")
	store, builder := testdb.NewStore(t, append(fixtures(), corrupt)...)
	columns := storage.NewQueryBuilder(storage.DialectSqlite, "transactions", storage.ColumnStrategy{})
	ctx := context.Background()

	for _, b := range []*storage.QueryBuilder{builder, columns} {
		plan := b.Build(storage.QueryFilter{IntegraHash: "0xih5"})
		total, err := store.SelectUint64(ctx, plan.CountStatement())
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)

		records, err := store.SelectTransactions(ctx, b.TransactionsByDocumentField(storage.DocumentFieldIntegraHash, "0xih5", 10))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, hash("B2"), records[0].TransactionHash)
	}
}

func TestSQLConnector_ContractAddressIsCaseInsensitive(t *testing.T) {
	store, builder := testdb.NewStore(t, fixtures()...)
	plan := builder.Build(storage.QueryFilter{ContractAddress: "0x5fbdb2315678afecb367f032d93f642f64180aa3"})
	total, err := store.SelectUint64(context.Background(), plan.CountStatement())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)
}

func TestSQLConnector_TransactionByHashIgnoresCase(t *testing.T) {
	store, builder := testdb.NewStore(t, fixtures()...)
	records, err := store.SelectTransactions(context.Background(), builder.TransactionByHash(hash("b2"), 10))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, hash("B2"), records[0].TransactionHash)
}

func TestSQLConnector_BlockQueries(t *testing.T) {
	store, builder := testdb.NewStore(t, fixtures()...)
	ctx := context.Background()

	counts, err := store.SelectChainCounts(ctx, builder.BlockChainCounts(101))
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, storage.ChainCount{ChainId: 1, Count: 1}, counts[0])

	counts, err = store.SelectChainCounts(ctx, builder.BlockChainCounts(999999))
	require.NoError(t, err)
	assert.Empty(t, counts)

	records, err := store.SelectTransactions(ctx, builder.BlockTransactions(137, 101))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, hash("a2"), records[0].TransactionHash)
	assert.Equal(t, hash("a3"), records[1].TransactionHash)
}

func TestSQLConnector_Stats(t *testing.T) {
	store, builder := testdb.NewStore(t, fixtures()...)
	ctx := context.Background()
	chain := uint64(137)

	total, err := store.SelectUint64(ctx, builder.CountTransactions(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)

	total, err = store.SelectUint64(ctx, builder.CountTransactions(&chain))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)

	chains, err := store.SelectUint64(ctx, builder.CountChains())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), chains)

	latest, err := store.SelectUint64(ctx, builder.LatestBlock(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(250), latest)

	latest, err = store.SelectUint64(ctx, builder.LatestBlock(&chain))
	require.NoError(t, err)
	assert.Equal(t, uint64(101), latest)
}

func TestSQLConnector_EmptyTable(t *testing.T) {
	store, builder := testdb.NewStore(t)
	latest, err := store.SelectUint64(context.Background(), builder.LatestBlock(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), latest)

	records, err := store.SelectTransactions(context.Background(), builder.Build(storage.QueryFilter{}).SelectStatement())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSQLConnector_ErrorsAreClassified(t *testing.T) {
	store, _ := testdb.NewStore(t)
	ctx := context.Background()

	_, err := store.SelectTransactions(ctx, storage.Statement{Kind: "broken", SQL: "SELECT * FROM missing_table"})
	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)

	canceled, cancel := context.WithTimeout(ctx, time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	_, err = store.SelectUint64(canceled, storage.Statement{Kind: "count", SQL: "SELECT COUNT(*) FROM transactions"})
	assert.ErrorIs(t, err, storage.ErrTimeout)
}

func TestSQLConnector_Ping(t *testing.T) {
	store, _ := testdb.NewStore(t)
	assert.NoError(t, store.Ping(context.Background()))
	assert.Equal(t, storage.DialectSqlite, store.Dialect())
}
