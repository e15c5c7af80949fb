package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/integra/explorer/api"
)

type StatsInput struct {
	ChainId *uint64 `json:"chainId" schema:"chainId"`
}

// @Summary Ledger statistics
// @Description Transaction count, chain count and latest block, optionally for one chain
// @Tags stats
// @Produce json
// @Param input query string false "JSON encoded procedure input"
// @Param chainId query int false "Chain ID"
// @Success 200 {object} api.QueryResponse{result=api.Result{data=explorer.Stats}}
// @Failure 503 {object} api.ErrorResponse
// @Failure 504 {object} api.ErrorResponse
// @Router /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	var input StatsInput
	if err := api.DecodeInput(c, "getStats", &input); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	stats, err := h.svc.GetStats(c.Request.Context(), input.ChainId)
	if err != nil {
		api.StoreErrorHandler(c, err)
		return
	}
	api.Success(c, stats)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} api.QueryResponse{result=api.Result{data=explorer.Health}}
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	api.Success(c, h.svc.Health(c.Request.Context()))
}
