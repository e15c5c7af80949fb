package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/integra/explorer/internal/explorer"
	"github.com/integra/explorer/internal/metrics"
)

type Handler struct {
	svc *explorer.Service
}

func New(svc *explorer.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts every procedure under the group, once under its procedure
// name and once under the short alias.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/listTransactions", instrument("listTransactions", h.ListTransactions))
	r.GET("/transactions", instrument("listTransactions", h.ListTransactions))

	r.GET("/getTransaction", instrument("getTransaction", h.GetTransaction))
	r.GET("/transactionDetail", instrument("getTransaction", h.GetTransaction))

	r.GET("/getBlockTransactions", instrument("getBlockTransactions", h.GetBlockTransactions))
	r.GET("/blockTransactions", instrument("getBlockTransactions", h.GetBlockTransactions))

	r.GET("/search", instrument("search", h.Search))

	r.GET("/getStats", instrument("getStats", h.GetStats))
	r.GET("/stats", instrument("getStats", h.GetStats))

	r.GET("/health", instrument("health", h.Health))

	r.GET("/searchHistory", instrument("searchHistory", h.GetSearchHistory))
	r.DELETE("/searchHistory", instrument("clearSearchHistory", h.ClearSearchHistory))
}

func instrument(procedure string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		handler(c)
		metrics.ProcedureDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
		metrics.ProcedureRequests.WithLabelValues(procedure, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
