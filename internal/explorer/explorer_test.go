package explorer_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/integra/explorer/internal/explorer"
	"github.com/integra/explorer/internal/history"
	"github.com/integra/explorer/internal/search"
	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/test/mocks"
	"github.com/integra/explorer/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	fixedNow = time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)
)

func txHash(digit string) string {
	return "0x" + strings.Repeat(digit, 64)
}

func newService(t *testing.T, opts ...explorer.Option) *explorer.Service {
	broken := testdb.Record(137, 102, txHash("9"), baseTime.Add(3*time.Minute), "")
	broken.TransactionData = "{not json"

	store, builder := testdb.NewStore(t,
		testdb.Record(137, 100, txHash("1"), baseTime, `{"integraHash":"`+txHash("a")+`","method":"registerDocument"}`),
		testdb.Record(137, 101, txHash("2"), baseTime.Add(time.Minute), ""),
		testdb.Record(137, 101, txHash("3"), baseTime.Add(time.Minute), ""),
		testdb.Record(80002, 50, txHash("4"), baseTime.Add(2*time.Minute), ""),
		broken,
	)
	opts = append([]explorer.Option{explorer.WithClock(func() time.Time { return fixedNow })}, opts...)
	return explorer.NewService(storage.IStorage{MainStorage: store, Builder: builder}, opts...)
}

func TestListTransactions(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListTransactions(context.Background(), storage.QueryFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, explorer.Pagination{Page: 1, Limit: 2, Total: 5, TotalPages: 3}, list.Pagination)
	// newest row is malformed and dropped from the page
	require.Len(t, list.Items, 1)
	assert.Equal(t, txHash("4"), list.Items[0].Hash)

	list, err = svc.ListTransactions(context.Background(), storage.QueryFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, txHash("1"), list.Items[0].Hash)
}

func TestListTransactions_NormalizesPaging(t *testing.T) {
	svc := newService(t)
	chain := uint64(137)

	list, err := svc.ListTransactions(context.Background(), storage.QueryFilter{Page: -4, Limit: 1000, ChainId: &chain})
	require.NoError(t, err)
	assert.Equal(t, explorer.Pagination{Page: 1, Limit: storage.MaxLimit, Total: 4, TotalPages: 1}, list.Pagination)
	assert.Len(t, list.Items, 3)
}

func TestListTransactions_DocumentFilter(t *testing.T) {
	svc := newService(t)

	list, err := svc.ListTransactions(context.Background(), storage.QueryFilter{IntegraHash: txHash("a")})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "registerDocument", list.Items[0].Method)
	assert.Equal(t, uint64(1), list.Pagination.Total)
}

func TestListTransactions_CorruptDocumentDataElsewhere(t *testing.T) {
	store, builder := testdb.NewStore(t,
		testdb.Record(137, 200, txHash("5"), baseTime, `{"integraHash":"`+txHash("b")+`"}`),
		testdb.Record(137, 201, txHash("6"), baseTime.Add(time.Minute), "{not json"),
	)
	svc := explorer.NewService(storage.IStorage{MainStorage: store, Builder: builder})

	list, err := svc.ListTransactions(context.Background(), storage.QueryFilter{IntegraHash: txHash("b")})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, txHash("5"), list.Items[0].Hash)
	assert.Equal(t, uint64(1), list.Pagination.Total)

	list, err = svc.ListTransactions(context.Background(), storage.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), list.Pagination.Total)
	// the corrupt row is counted but dropped from the page
	require.Len(t, list.Items, 1)
	assert.Equal(t, txHash("5"), list.Items[0].Hash)
}

func TestGetTransaction(t *testing.T) {
	svc := newService(t)

	detail, err := svc.GetTransaction(context.Background(), txHash("2"))
	require.NoError(t, err)
	assert.Equal(t, txHash("2"), detail.Hash)
	assert.JSONEq(t, `{"status":1,"gasUsed":"0x5208","logs":[{"topics":[]}]}`, string(detail.RawData.Receipt))

	_, err = svc.GetTransaction(context.Background(), txHash("0"))
	assert.ErrorIs(t, err, explorer.ErrNotFound)

	_, err = svc.GetTransaction(context.Background(), txHash("9"))
	assert.ErrorIs(t, err, explorer.ErrParseTransaction)
}

func TestGetBlockTransactions(t *testing.T) {
	svc := newService(t)

	block, err := svc.GetBlockTransactions(context.Background(), 101, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(137), block.ChainId)
	assert.Equal(t, 2, block.TransactionCount)
	require.NotNil(t, block.Timestamp)
	assert.True(t, baseTime.Add(time.Minute).Equal(*block.Timestamp))
	assert.Equal(t, txHash("2"), block.Transactions[0].Hash)

	empty, err := svc.GetBlockTransactions(context.Background(), 101, 80002)
	require.NoError(t, err)
	assert.Nil(t, empty.Timestamp)
	encoded, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"blockNumber":101,"chainId":80002,"timestamp":null,"transactionCount":0,"transactions":[]}`, string(encoded))
}

func TestGetStats(t *testing.T) {
	svc := newService(t)

	stats, err := svc.GetStats(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, &explorer.Stats{TotalTransactions: 5, TotalChains: 2, LatestBlock: 102, Timestamp: fixedNow}, stats)

	chain := uint64(80002)
	stats, err = svc.GetStats(context.Background(), &chain)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.TotalTransactions)
	assert.Equal(t, uint64(2), stats.TotalChains)
	assert.Equal(t, uint64(50), stats.LatestBlock)
}

func TestGetStats_StoreError(t *testing.T) {
	store := mocks.NewMockIMainStorage(t)
	builder := storage.NewQueryBuilder(storage.DialectSqlite, "transactions", nil)
	svc := explorer.NewService(storage.IStorage{MainStorage: store, Builder: builder})

	store.EXPECT().SelectUint64(mock.Anything, mock.Anything).Return(uint64(0), storage.ErrStoreUnavailable).Maybe()

	_, err := svc.GetStats(context.Background(), nil)
	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
}

func TestSearch_RecordsHistory(t *testing.T) {
	hist := history.NewMemoryStore(history.DefaultCapacity)
	svc := newService(t, explorer.WithHistory(hist))
	ctx := context.Background()

	result := svc.Search(ctx, "  101 ")
	assert.Equal(t, search.ResultTypeBlock, result.Type)
	result = svc.Search(ctx, txHash("1"))
	assert.Equal(t, search.ResultTypeTransaction, result.Type)
	result = svc.Search(ctx, "   ")
	assert.Equal(t, search.ResultTypeNotFound, result.Type)

	entries, err := svc.SearchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, txHash("1"), entries[0].Query)
	assert.Equal(t, "tx_hash", entries[0].Type)
	assert.Equal(t, "101", entries[1].Query)
	assert.Equal(t, "block_number", entries[1].Type)
	assert.Equal(t, fixedNow.UnixMilli(), entries[1].Timestamp)
	assert.JSONEq(t, `{"type":"block","result":{"blockNumber":101,"transactionCount":2,"chainId":137}}`, string(entries[1].Result))

	require.NoError(t, svc.ClearSearchHistory(ctx))
	entries, err = svc.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSearchHistory_WithoutStore(t *testing.T) {
	svc := newService(t)
	entries, err := svc.SearchHistory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.NoError(t, svc.ClearSearchHistory(context.Background()))
}

func TestHealth(t *testing.T) {
	svc := newService(t)
	assert.Equal(t, explorer.Health{Status: "healthy", Timestamp: fixedNow}, svc.Health(context.Background()))
	assert.NoError(t, svc.Ready(context.Background()))
}
