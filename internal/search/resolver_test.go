package search_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/search"
	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/test/mocks"
	"github.com/integra/explorer/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var blockTime = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func statementKind(kind string) interface{} {
	return mock.MatchedBy(func(stmt storage.Statement) bool { return stmt.Kind == kind })
}

func newMockResolver(t *testing.T) (*search.Resolver, *mocks.MockIMainStorage) {
	store := mocks.NewMockIMainStorage(t)
	builder := storage.NewQueryBuilder(storage.DialectSqlite, "transactions", nil)
	return search.NewResolver(store, builder, 10), store
}

func TestResolve_TransactionHashWins(t *testing.T) {
	resolver, store := newMockResolver(t)
	query := "0x" + strings.Repeat("ab", 32)

	store.EXPECT().SelectTransactions(mock.Anything, mock.MatchedBy(func(stmt storage.Statement) bool {
		return stmt.Kind == "transaction_by_hash" && stmt.Args[0] == query && stmt.Args[1] == 10
	})).Return([]common.TransactionRecord{testdb.Record(137, 5, query, blockTime, "")}, nil).Once()

	result, trace := resolver.ResolveWithTrace(context.Background(), query)

	assert.Equal(t, search.ResultTypeTransaction, result.Type)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, query, result.Transaction.Query)
	assert.Equal(t, 1, result.Transaction.TotalMatches)
	assert.Equal(t, query, result.Transaction.Transactions[0].Hash)
	assert.Equal(t, []search.StepTrace{{Step: search.StepTransactionHash, Outcome: search.OutcomeMatched}}, trace.Steps)
}

func TestResolve_FallsThroughToDocumentHash(t *testing.T) {
	resolver, store := newMockResolver(t)
	query := "0x" + strings.Repeat("cd", 32)

	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transaction_by_hash")).Return([]common.TransactionRecord{}, nil).Once()
	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transactions_by_integraHash")).Return([]common.TransactionRecord{}, nil).Once()
	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transactions_by_documentHash")).
		Return([]common.TransactionRecord{testdb.Record(1, 9, "0xtx", blockTime, `{"documentHash":"`+query+`"}`)}, nil).Once()

	result, trace := resolver.ResolveWithTrace(context.Background(), query)

	assert.Equal(t, search.ResultTypeTransaction, result.Type)
	assert.Equal(t, query, result.Transaction.Transactions[0].DocumentHash)
	assert.Equal(t, []search.StepTrace{
		{Step: search.StepTransactionHash, Outcome: search.OutcomeNoMatch},
		{Step: search.StepIntegraHash, Outcome: search.OutcomeNoMatch},
		{Step: search.StepDocumentHash, Outcome: search.OutcomeMatched},
	}, trace.Steps)
}

func TestResolve_MalformedRowsDoNotMatch(t *testing.T) {
	resolver, store := newMockResolver(t)
	query := "0x" + strings.Repeat("ef", 32)

	broken := testdb.Record(1, 9, query, blockTime, "")
	broken.ReceiptData = "{broken"
	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transaction_by_hash")).Return([]common.TransactionRecord{broken}, nil).Once()
	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transactions_by_integraHash")).
		Return([]common.TransactionRecord{testdb.Record(1, 9, "0xother", blockTime, `{"integraHash":"`+query+`"}`)}, nil).Once()

	result := resolver.Resolve(context.Background(), query)
	assert.Equal(t, search.ResultTypeTransaction, result.Type)
	assert.Equal(t, "0xother", result.Transaction.Transactions[0].Hash)
}

func TestResolve_OpaqueIdentifierUsesDerivedHash(t *testing.T) {
	resolver, store := newMockResolver(t)
	derived := search.IdentifierHash("INTEGRA-0042")

	store.EXPECT().SelectTransactions(mock.Anything, mock.MatchedBy(func(stmt storage.Statement) bool {
		return stmt.Kind == "transaction_by_hash" && stmt.Args[0] == derived
	})).Return(nil, nil).Once()
	store.EXPECT().SelectTransactions(mock.Anything, mock.MatchedBy(func(stmt storage.Statement) bool {
		return stmt.Kind == "transactions_by_integraHash" && stmt.Args[0] == derived
	})).Return([]common.TransactionRecord{testdb.Record(137, 3, "0xreg", blockTime, `{"integraHash":"`+derived+`"}`)}, nil).Once()

	result := resolver.Resolve(context.Background(), "INTEGRA-0042")
	assert.Equal(t, search.ResultTypeTransaction, result.Type)
	assert.Equal(t, "INTEGRA-0042", result.Transaction.Query)
}

func TestResolve_BlockNumberSkipsTransactionHash(t *testing.T) {
	resolver, store := newMockResolver(t)

	store.EXPECT().SelectTransactions(mock.Anything, mock.MatchedBy(func(stmt storage.Statement) bool {
		return stmt.Kind == "transactions_by_integraHash" && stmt.Args[0] == "12345"
	})).Return(nil, nil).Once()
	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transactions_by_documentHash")).Return(nil, nil).Once()
	store.EXPECT().SelectChainCounts(mock.Anything, mock.MatchedBy(func(stmt storage.Statement) bool {
		return stmt.Kind == "block_chain_counts" && stmt.Args[0] == uint64(12345)
	})).Return([]storage.ChainCount{{ChainId: 137, Count: 4}}, nil).Once()

	result, trace := resolver.ResolveWithTrace(context.Background(), "12345")

	assert.Equal(t, search.ResultTypeBlock, result.Type)
	assert.Equal(t, &search.BlockMatch{BlockNumber: 12345, TransactionCount: 4, ChainId: 137}, result.Block)
	require.Len(t, trace.Steps, 3)
	assert.Equal(t, search.StepIntegraHash, trace.Steps[0].Step)
	assert.Equal(t, search.StepBlockNumber, trace.Steps[2].Step)
}

func TestResolve_StoreErrorYieldsNotFound(t *testing.T) {
	resolver, store := newMockResolver(t)
	query := "0x" + strings.Repeat("12", 32)

	store.EXPECT().SelectTransactions(mock.Anything, statementKind("transaction_by_hash")).Return(nil, storage.ErrTimeout).Once()

	result, trace := resolver.ResolveWithTrace(context.Background(), query)
	assert.Equal(t, search.NotFound, result)
	assert.Equal(t, []search.StepTrace{{Step: search.StepTransactionHash, Outcome: search.OutcomeError}}, trace.Steps)
}

func TestResolve_EmptyQueryDoesNotTouchStore(t *testing.T) {
	resolver, _ := newMockResolver(t)
	result, trace := resolver.ResolveWithTrace(context.Background(), "   ")
	assert.Equal(t, search.NotFound, result)
	assert.Empty(t, trace.Steps)
}

func TestSearchResult_JSON(t *testing.T) {
	encoded, err := json.Marshal(search.NotFound)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"not_found","result":null}`, string(encoded))

	block := search.SearchResult{Type: search.ResultTypeBlock, Block: &search.BlockMatch{BlockNumber: 1, TransactionCount: 2, ChainId: 3}}
	encoded, err = json.Marshal(block)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"block","result":{"blockNumber":1,"transactionCount":2,"chainId":3}}`, string(encoded))

	var decoded search.SearchResult
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, block, decoded)
}
