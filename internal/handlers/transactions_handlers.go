package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/integra/explorer/api"
	"github.com/integra/explorer/internal/explorer"
	"github.com/integra/explorer/internal/storage"
)

type TransactionInput struct {
	Hash string `json:"hash" schema:"hash"`
}

type BlockTransactionsInput struct {
	BlockNumber uint64 `json:"blockNumber" schema:"blockNumber"`
	ChainId     uint64 `json:"chainId" schema:"chainId"`
}

// @Summary List transactions
// @Description Paginated transactions, newest first, filtered by chain, contract, block and document identity
// @Tags transactions
// @Produce json
// @Param input query string false "JSON encoded procedure input"
// @Param page query int false "Page number, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param chainId query int false "Chain ID"
// @Param contractType query string false "Contract type"
// @Param contractAddress query string false "Contract address"
// @Param blockNumber query int false "Block number"
// @Param integraHash query string false "Integra hash"
// @Param documentHash query string false "Document hash"
// @Param processHash query string false "Process hash"
// @Param method query string false "Document method"
// @Success 200 {object} api.QueryResponse{result=api.Result{data=explorer.TransactionList}}
// @Failure 400 {object} api.ErrorResponse
// @Failure 503 {object} api.ErrorResponse
// @Failure 504 {object} api.ErrorResponse
// @Router /api/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	var filter storage.QueryFilter
	if err := api.DecodeInput(c, "listTransactions", &filter); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	list, err := h.svc.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		api.StoreErrorHandler(c, err)
		return
	}
	api.Success(c, list)
}

// @Summary Get transaction
// @Description Transaction summary with decoded input, events and raw payloads
// @Tags transactions
// @Produce json
// @Param input query string false "JSON encoded procedure input"
// @Param hash query string false "Transaction hash"
// @Success 200 {object} api.QueryResponse{result=api.Result{data=common.TransactionDetail}}
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /api/transactionDetail [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	var input TransactionInput
	if err := api.DecodeInput(c, "getTransaction", &input); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	detail, err := h.svc.GetTransaction(c.Request.Context(), strings.TrimSpace(input.Hash))
	switch {
	case errors.Is(err, explorer.ErrNotFound):
		api.NotFoundErrorHandler(c, "Transaction not found")
	case errors.Is(err, explorer.ErrParseTransaction):
		api.InternalErrorHandler(c, "Failed to parse transaction")
	case err != nil:
		api.StoreErrorHandler(c, err)
	default:
		api.Success(c, detail)
	}
}

// @Summary Get block transactions
// @Description All transactions of one block on one chain
// @Tags blocks
// @Produce json
// @Param input query string false "JSON encoded procedure input"
// @Param blockNumber query int false "Block number"
// @Param chainId query int false "Chain ID, defaults to 137"
// @Success 200 {object} api.QueryResponse{result=api.Result{data=explorer.BlockTransactions}}
// @Failure 400 {object} api.ErrorResponse
// @Failure 503 {object} api.ErrorResponse
// @Router /api/blockTransactions [get]
func (h *Handler) GetBlockTransactions(c *gin.Context) {
	var input BlockTransactionsInput
	if err := api.DecodeInput(c, "getBlockTransactions", &input); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	block, err := h.svc.GetBlockTransactions(c.Request.Context(), input.BlockNumber, input.ChainId)
	if err != nil {
		api.StoreErrorHandler(c, err)
		return
	}
	api.Success(c, block)
}
