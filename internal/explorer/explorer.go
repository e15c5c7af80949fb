package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/history"
	elog "github.com/integra/explorer/internal/log"
	"github.com/integra/explorer/internal/search"
	"github.com/integra/explorer/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultChainId uint64 = 137

var (
	ErrNotFound         = errors.New("transaction not found")
	ErrParseTransaction = errors.New("failed to parse transaction")
)

type Pagination struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      uint64 `json:"total"`
	TotalPages uint64 `json:"totalPages"`
}

type TransactionList struct {
	Items      []common.TransactionSummary `json:"items"`
	Pagination Pagination                  `json:"pagination"`
}

type BlockTransactions struct {
	BlockNumber      uint64                      `json:"blockNumber"`
	ChainId          uint64                      `json:"chainId"`
	Timestamp        *time.Time                  `json:"timestamp"`
	TransactionCount int                         `json:"transactionCount"`
	Transactions     []common.TransactionSummary `json:"transactions"`
}

type Stats struct {
	TotalTransactions uint64    `json:"totalTransactions"`
	TotalChains       uint64    `json:"totalChains"`
	LatestBlock       uint64    `json:"latestBlock"`
	Timestamp         time.Time `json:"timestamp"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Service implements the explorer procedures on top of the ledger store.
type Service struct {
	store          storage.IMainStorage
	builder        *storage.QueryBuilder
	resolver       *search.Resolver
	history        history.Store
	events         *elog.EventLogger
	defaultChainId uint64
	now            func() time.Time
}

type Option func(*Service)

func WithHistory(store history.Store) Option {
	return func(s *Service) { s.history = store }
}

func WithEventLogger(events *elog.EventLogger) Option {
	return func(s *Service) { s.events = events }
}

func WithDefaultChainId(chainId uint64) Option {
	return func(s *Service) {
		if chainId != 0 {
			s.defaultChainId = chainId
		}
	}
}

func WithSearchLimit(limit int) Option {
	return func(s *Service) { s.resolver = search.NewResolver(s.store, s.builder, limit) }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(st storage.IStorage, opts ...Option) *Service {
	s := &Service{
		store:          st.MainStorage,
		builder:        st.Builder,
		defaultChainId: DefaultChainId,
		now:            time.Now,
	}
	s.resolver = search.NewResolver(s.store, s.builder, search.DefaultResultLimit)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) DefaultChainId() uint64 {
	return s.defaultChainId
}

// ListTransactions returns one page of normalized transactions. Malformed rows
// are dropped from the page but still counted in the total.
func (s *Service) ListTransactions(ctx context.Context, filter storage.QueryFilter) (*TransactionList, error) {
	plan := s.builder.Build(filter)
	total, err := s.store.SelectUint64(ctx, plan.CountStatement())
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	records, err := s.store.SelectTransactions(ctx, plan.SelectStatement())
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	items := common.SummarizeTransactions(records)
	if dropped := len(records) - len(items); dropped > 0 {
		s.events.Warn(ctx, "malformed_records", "dropped malformed transactions from listing", map[string]any{"dropped": dropped})
	}

	normalized := filter.Normalize()
	return &TransactionList{
		Items: items,
		Pagination: Pagination{
			Page:       normalized.Page,
			Limit:      normalized.Limit,
			Total:      total,
			TotalPages: totalPages(total, normalized.Limit),
		},
	}, nil
}

func totalPages(total uint64, limit int) uint64 {
	if limit <= 0 {
		return 0
	}
	l := uint64(limit)
	return (total + l - 1) / l
}

// GetTransaction looks a transaction up by hash, case-insensitively.
func (s *Service) GetTransaction(ctx context.Context, hash string) (*common.TransactionDetail, error) {
	records, err := s.store.SelectTransactions(ctx, s.builder.TransactionByHash(hash, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	detail, err := records[0].Detail()
	if err != nil {
		s.events.Error(ctx, "malformed_record", "transaction could not be parsed", map[string]any{"hash": hash, "error": err.Error()})
		return nil, fmt.Errorf("%w: %w", ErrParseTransaction, err)
	}
	return detail, nil
}

// GetBlockTransactions lists the transactions of one block. chainId 0 selects
// the default chain.
func (s *Service) GetBlockTransactions(ctx context.Context, blockNumber uint64, chainId uint64) (*BlockTransactions, error) {
	if chainId == 0 {
		chainId = s.defaultChainId
	}
	records, err := s.store.SelectTransactions(ctx, s.builder.BlockTransactions(chainId, blockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get block transactions: %w", err)
	}
	transactions := common.SummarizeTransactions(records)

	result := &BlockTransactions{
		BlockNumber:      blockNumber,
		ChainId:          chainId,
		TransactionCount: len(transactions),
		Transactions:     transactions,
	}
	if len(transactions) > 0 {
		ts := transactions[0].Timestamp
		result.Timestamp = &ts
	}
	return result, nil
}

// Search resolves the query and records it in the search history.
func (s *Service) Search(ctx context.Context, query string) search.SearchResult {
	result, trace := s.resolver.ResolveWithTrace(ctx, query)
	if trace.Classification.Query == "" {
		return result
	}

	s.events.Info(ctx, "search", "search resolved", map[string]any{
		"query":  trace.Classification.Query,
		"kind":   string(trace.Classification.Kind),
		"result": string(result.Type),
	})
	s.record(ctx, trace.Classification, result)
	return result
}

func (s *Service) record(ctx context.Context, c search.Classification, result search.SearchResult) {
	if s.history == nil {
		return
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode search result for history")
		encoded = nil
	}
	entry := history.NewEntry(c.Query, c.SearchType(), encoded, s.now())
	if err := s.history.Push(ctx, entry); err != nil {
		log.Warn().Err(err).Str("query", c.Query).Msg("failed to record search history")
	}
}

// SearchHistory returns the recent searches, newest first.
func (s *Service) SearchHistory(ctx context.Context) ([]history.Entry, error) {
	if s.history == nil {
		return []history.Entry{}, nil
	}
	entries, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	return entries, nil
}

func (s *Service) ClearSearchHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}

// GetStats runs the three aggregate queries concurrently. The chain filter
// applies to the transaction count and latest block, never to the chain count.
func (s *Service) GetStats(ctx context.Context, chainId *uint64) (*Stats, error) {
	if chainId != nil && *chainId == 0 {
		chainId = nil
	}
	stats := &Stats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.store.SelectUint64(gctx, s.builder.CountTransactions(chainId))
		stats.TotalTransactions = total
		return err
	})
	g.Go(func() error {
		chains, err := s.store.SelectUint64(gctx, s.builder.CountChains())
		stats.TotalChains = chains
		return err
	})
	g.Go(func() error {
		latest, err := s.store.SelectUint64(gctx, s.builder.LatestBlock(chainId))
		stats.LatestBlock = latest
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	stats.Timestamp = s.now().UTC()
	return stats, nil
}

func (s *Service) Health(ctx context.Context) Health {
	return Health{Status: "healthy", Timestamp: s.now().UTC()}
}

// Ready pings the store; used by the readiness probe.
func (s *Service) Ready(ctx context.Context) error {
	return s.store.Ping(ctx)
}
