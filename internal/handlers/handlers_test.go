package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/integra/explorer/internal/explorer"
	"github.com/integra/explorer/internal/history"
	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/test/mocks"
	"github.com/integra/explorer/test/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var blockTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func hash(digit string) string {
	return "0x" + strings.Repeat(digit, 64)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	broken := testdb.Record(137, 12, hash("e"), blockTime, "")
	broken.ReceiptData = "not json"
	store, builder := testdb.NewStore(t,
		testdb.Record(137, 10, hash("a"), blockTime, `{"documentHash":"`+hash("d")+`"}`),
		testdb.Record(137, 11, hash("b"), blockTime.Add(time.Minute), ""),
		broken,
	)
	svc := explorer.NewService(storage.IStorage{MainStorage: store, Builder: builder},
		explorer.WithHistory(history.NewMemoryStore(history.DefaultCapacity)))

	router := gin.New()
	New(svc).Register(router.Group("/api"))
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Result struct {
		Data json.RawMessage `json:"data"`
	} `json:"result"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListTransactions(t *testing.T) {
	router := setupTestRouter(t)

	for _, target := range []string{
		"/api/transactions?page=1&limit=2&chainId=137",
		"/api/listTransactions?input=" + url.QueryEscape(`{"page":1,"limit":2,"chainId":137}`),
	} {
		w := get(router, target)
		require.Equal(t, http.StatusOK, w.Code, target)

		var list explorer.TransactionList
		require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &list))
		assert.Equal(t, explorer.Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, list.Pagination)
		require.Len(t, list.Items, 1)
		assert.Equal(t, hash("b"), list.Items[0].Hash)
	}
}

func TestListTransactions_InvalidInput(t *testing.T) {
	router := setupTestRouter(t)
	w := get(router, "/api/transactions?limit=many")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decode(t, w).Error.Code)
}

func TestGetTransaction(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/api/transactionDetail?hash="+strings.ToUpper(hash("a")[2:]))
	assert.Equal(t, http.StatusNotFound, w.Code, "hash must carry the 0x prefix")

	w = get(router, "/api/transactionDetail?hash="+hash("a"))
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &detail))
	assert.Equal(t, hash("a"), detail["hash"])
	assert.Equal(t, hash("d"), detail["documentHash"])
	assert.Contains(t, detail, "rawData")

	w = get(router, "/api/getTransaction?hash="+hash("0"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Transaction not found", decode(t, w).Error.Message)

	w = get(router, "/api/getTransaction?hash="+hash("e"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to parse transaction", decode(t, w).Error.Message)

	w = get(router, "/api/getTransaction")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBlockTransactions(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/api/blockTransactions?blockNumber=10")
	require.Equal(t, http.StatusOK, w.Code)
	var block explorer.BlockTransactions
	require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &block))
	assert.Equal(t, uint64(137), block.ChainId)
	assert.Equal(t, 1, block.TransactionCount)

	w = get(router, "/api/getBlockTransactions?chainId=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchAndHistory(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/api/search?q="+hash("d"))
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Type   string `json:"type"`
		Result struct {
			TotalMatches int `json:"totalMatches"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &result))
	assert.Equal(t, "transaction", result.Type)
	assert.Equal(t, 1, result.Result.TotalMatches)

	w = get(router, "/api/search?query=999999")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"not_found","result":null}`, string(decode(t, w).Result.Data))

	w = get(router, "/api/search?q=")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(router, "/api/searchHistory")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []history.Entry
	require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "999999", entries[0].Query)
	assert.Equal(t, "block_number", entries[0].Type)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/searchHistory", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(router, "/api/searchHistory")
	assert.JSONEq(t, `[]`, string(decode(t, w).Result.Data))
}

func TestStatsAndHealth(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats explorer.Stats
	require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &stats))
	assert.Equal(t, uint64(3), stats.TotalTransactions)
	assert.Equal(t, uint64(1), stats.TotalChains)
	assert.Equal(t, uint64(12), stats.LatestBlock)

	w = get(router, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	var health explorer.Health
	require.NoError(t, json.Unmarshal(decode(t, w).Result.Data, &health))
	assert.Equal(t, "healthy", health.Status)
}

func TestStoreFailuresMapToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := mocks.NewMockIMainStorage(t)
	builder := storage.NewQueryBuilder(storage.DialectSqlite, "transactions", nil)
	router := gin.New()
	New(explorer.NewService(storage.IStorage{MainStorage: store, Builder: builder})).Register(router.Group("/api"))

	store.EXPECT().SelectUint64(mock.Anything, mock.Anything).Return(uint64(0), storage.ErrTimeout).Once()
	w := get(router, "/api/transactions")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	store.EXPECT().SelectTransactions(mock.Anything, mock.Anything).Return(nil, storage.ErrStoreUnavailable).Once()
	w = get(router, "/api/transactionDetail?hash="+hash("1"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decode(t, w).Error.Code)
}
