package search

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/metrics"
	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/internal/tracing"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultResultLimit = 10

type ResultType string

const (
	ResultTypeTransaction ResultType = "transaction"
	ResultTypeBlock       ResultType = "block"
	ResultTypeNotFound    ResultType = "not_found"
)

type TransactionMatch struct {
	Query        string                      `json:"query"`
	TotalMatches int                         `json:"totalMatches"`
	Transactions []common.TransactionSummary `json:"transactions"`
}

type BlockMatch struct {
	BlockNumber      uint64 `json:"blockNumber"`
	TransactionCount uint64 `json:"transactionCount"`
	ChainId          uint64 `json:"chainId"`
}

// SearchResult is a tagged union: Type decides which of Transaction and Block is set.
type SearchResult struct {
	Type        ResultType
	Transaction *TransactionMatch
	Block       *BlockMatch
}

var NotFound = SearchResult{Type: ResultTypeNotFound}

type searchResultJSON struct {
	Type   ResultType      `json:"type"`
	Result json.RawMessage `json:"result"`
}

// MarshalJSON renders {"type": ..., "result": ...} with a null result for not_found.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	var payload any
	switch r.Type {
	case ResultTypeTransaction:
		payload = r.Transaction
	case ResultTypeBlock:
		payload = r.Block
	}
	result, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(searchResultJSON{Type: r.Type, Result: result})
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var raw searchResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = SearchResult{Type: raw.Type}
	switch raw.Type {
	case ResultTypeTransaction:
		r.Transaction = &TransactionMatch{}
		return json.Unmarshal(raw.Result, r.Transaction)
	case ResultTypeBlock:
		r.Block = &BlockMatch{}
		return json.Unmarshal(raw.Result, r.Block)
	}
	return nil
}

type StepName string

const (
	StepTransactionHash StepName = "transaction_hash"
	StepIntegraHash     StepName = "integra_hash"
	StepDocumentHash    StepName = "document_hash"
	StepBlockNumber     StepName = "block_number"
)

type StepOutcome string

const (
	OutcomeMatched StepOutcome = "matched"
	OutcomeNoMatch StepOutcome = "no_match"
	OutcomeError   StepOutcome = "error"
)

type StepTrace struct {
	Step    StepName    `json:"step"`
	Outcome StepOutcome `json:"outcome"`
}

// Trace records the classification and every step that ran, in order.
type Trace struct {
	Classification Classification `json:"classification"`
	Steps          []StepTrace    `json:"steps"`
}

// lookupStep is one interpretation of the query. Steps run in order and the
// first one that matches ends the cascade.
type lookupStep struct {
	name    StepName
	applies func(c Classification) bool
	run     func(ctx context.Context, r *Resolver, c Classification) (SearchResult, bool, error)
}

type Resolver struct {
	store   storage.IMainStorage
	builder *storage.QueryBuilder
	limit   int
	steps   []lookupStep
}

func NewResolver(store storage.IMainStorage, builder *storage.QueryBuilder, limit int) *Resolver {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &Resolver{
		store:   store,
		builder: builder,
		limit:   limit,
		steps:   defaultSteps(),
	}
}

// transaction identity takes priority over document identity
func defaultSteps() []lookupStep {
	notBlockNumber := func(c Classification) bool { return c.Kind != KindBlockNumberLike }
	always := func(Classification) bool { return true }
	return []lookupStep{
		{
			name:    StepTransactionHash,
			applies: notBlockNumber,
			run: func(ctx context.Context, r *Resolver, c Classification) (SearchResult, bool, error) {
				return r.transactions(ctx, c, r.builder.TransactionByHash(c.LookupValue, r.limit))
			},
		},
		{
			name:    StepIntegraHash,
			applies: always,
			run: func(ctx context.Context, r *Resolver, c Classification) (SearchResult, bool, error) {
				return r.transactions(ctx, c, r.builder.TransactionsByDocumentField(storage.DocumentFieldIntegraHash, c.LookupValue, r.limit))
			},
		},
		{
			name:    StepDocumentHash,
			applies: always,
			run: func(ctx context.Context, r *Resolver, c Classification) (SearchResult, bool, error) {
				return r.transactions(ctx, c, r.builder.TransactionsByDocumentField(storage.DocumentFieldDocumentHash, c.LookupValue, r.limit))
			},
		},
		{
			name: StepBlockNumber,
			applies: func(c Classification) bool {
				if c.Kind != KindBlockNumberLike {
					return false
				}
				_, err := strconv.ParseUint(c.Query, 10, 64)
				return err == nil
			},
			run: func(ctx context.Context, r *Resolver, c Classification) (SearchResult, bool, error) {
				blockNumber, _ := strconv.ParseUint(c.Query, 10, 64)
				return r.block(ctx, blockNumber)
			},
		},
	}
}

// Resolve never fails: store errors are logged and end the cascade with not_found.
func (r *Resolver) Resolve(ctx context.Context, query string) SearchResult {
	result, _ := r.ResolveWithTrace(ctx, query)
	return result
}

func (r *Resolver) ResolveWithTrace(ctx context.Context, query string) (SearchResult, Trace) {
	classification := Classify(query)
	trace := Trace{Classification: classification, Steps: []StepTrace{}}
	if classification.Query == "" {
		metrics.SearchResults.WithLabelValues(string(classification.Kind), string(ResultTypeNotFound)).Inc()
		return NotFound, trace
	}

	ctx, span := tracing.StartSpan(ctx, "search.resolve", attribute.String("search.kind", string(classification.Kind)))
	defer span.End()

	result := NotFound
	for _, step := range r.steps {
		if !step.applies(classification) {
			continue
		}
		stepResult, matched, err := r.runStep(ctx, step, classification)
		if err != nil {
			metrics.ResolverSteps.WithLabelValues(string(step.name), string(OutcomeError)).Inc()
			trace.Steps = append(trace.Steps, StepTrace{Step: step.name, Outcome: OutcomeError})
			log.Error().Err(err).Str("step", string(step.name)).Str("query", classification.Query).Msg("search step failed")
			break
		}
		if matched {
			metrics.ResolverSteps.WithLabelValues(string(step.name), string(OutcomeMatched)).Inc()
			trace.Steps = append(trace.Steps, StepTrace{Step: step.name, Outcome: OutcomeMatched})
			result = stepResult
			break
		}
		metrics.ResolverSteps.WithLabelValues(string(step.name), string(OutcomeNoMatch)).Inc()
		trace.Steps = append(trace.Steps, StepTrace{Step: step.name, Outcome: OutcomeNoMatch})
	}

	metrics.SearchResults.WithLabelValues(string(classification.Kind), string(result.Type)).Inc()
	log.Debug().
		Str("query", classification.Query).
		Str("kind", string(classification.Kind)).
		Str("result", string(result.Type)).
		Interface("steps", trace.Steps).
		Msg("search resolved")
	return result, trace
}

func (r *Resolver) runStep(ctx context.Context, step lookupStep, c Classification) (result SearchResult, matched bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "search.step."+string(step.name))
	defer func() {
		span.SetAttributes(attribute.Bool("search.matched", matched))
		tracing.EndSpan(span, err)
	}()
	return step.run(ctx, r, c)
}

// transactions matches only when at least one row normalizes.
func (r *Resolver) transactions(ctx context.Context, c Classification, stmt storage.Statement) (SearchResult, bool, error) {
	records, err := r.store.SelectTransactions(ctx, stmt)
	if err != nil {
		return NotFound, false, err
	}
	summaries := common.SummarizeTransactions(records)
	if len(summaries) == 0 {
		return NotFound, false, nil
	}
	return SearchResult{
		Type: ResultTypeTransaction,
		Transaction: &TransactionMatch{
			Query:        c.Query,
			TotalMatches: len(summaries),
			Transactions: summaries,
		},
	}, true, nil
}

func (r *Resolver) block(ctx context.Context, blockNumber uint64) (SearchResult, bool, error) {
	counts, err := r.store.SelectChainCounts(ctx, r.builder.BlockChainCounts(blockNumber))
	if err != nil {
		return NotFound, false, err
	}
	if len(counts) == 0 || counts[0].Count == 0 {
		return NotFound, false, nil
	}
	return SearchResult{
		Type: ResultTypeBlock,
		Block: &BlockMatch{
			BlockNumber:      blockNumber,
			TransactionCount: counts[0].Count,
			ChainId:          counts[0].ChainId,
		},
	}, true, nil
}
