package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/integra/explorer/api"
)

type SearchInput struct {
	Q     string `json:"q" schema:"q"`
	Query string `json:"query" schema:"query"`
}

func (in SearchInput) value() string {
	if strings.TrimSpace(in.Q) != "" {
		return in.Q
	}
	return in.Query
}

// @Summary Universal search
// @Description Resolves a transaction hash, Integra hash, document hash, Integra ID or block number
// @Tags search
// @Produce json
// @Param input query string false "JSON encoded procedure input"
// @Param q query string false "Search query"
// @Success 200 {object} api.QueryResponse{result=api.Result{data=search.SearchResult}}
// @Failure 400 {object} api.ErrorResponse
// @Router /api/search [get]
func (h *Handler) Search(c *gin.Context) {
	var input SearchInput
	if err := api.DecodeInput(c, "search", &input); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	api.Success(c, h.svc.Search(c.Request.Context(), input.value()))
}

// @Summary Search history
// @Description The most recent searches, newest first
// @Tags search
// @Produce json
// @Success 200 {object} api.QueryResponse{result=api.Result{data=[]history.Entry}}
// @Failure 500 {object} api.ErrorResponse
// @Router /api/searchHistory [get]
func (h *Handler) GetSearchHistory(c *gin.Context) {
	entries, err := h.svc.SearchHistory(c.Request.Context())
	if err != nil {
		api.StoreErrorHandler(c, err)
		return
	}
	api.Success(c, entries)
}

// @Summary Clear search history
// @Tags search
// @Produce json
// @Success 200 {object} api.QueryResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /api/searchHistory [delete]
func (h *Handler) ClearSearchHistory(c *gin.Context) {
	if err := h.svc.ClearSearchHistory(c.Request.Context()); err != nil {
		api.StoreErrorHandler(c, err)
		return
	}
	api.Success(c, nil)
}
