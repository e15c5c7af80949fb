package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API Metrics
var (
	ProcedureRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_procedure_requests_total",
		Help: "The total number of procedure calls by procedure and HTTP status",
	}, []string{"procedure", "status"})

	ProcedureDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "explorer_procedure_duration_seconds",
		Help:    "Time spent serving a procedure call",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure"})
)

// Store Metrics
var (
	StoreQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "explorer_store_query_duration_seconds",
		Help:    "Time spent executing a statement against the main store",
		Buckets: prometheus.DefBuckets,
	}, []string{"engine", "kind"})

	StoreQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_store_query_errors_total",
		Help: "The total number of failed store statements by error class",
	}, []string{"engine", "class"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_cache_hits_total",
		Help: "The total number of statement cache hits",
	}, []string{"provider"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_cache_misses_total",
		Help: "The total number of statement cache misses",
	}, []string{"provider"})
)

// Normalizer Metrics
var MalformedRecords = promauto.NewCounter(prometheus.CounterOpts{
	Name: "explorer_malformed_records_total",
	Help: "The total number of ledger rows dropped because a JSON blob failed to parse",
})

// Search Metrics
var (
	ResolverSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_resolver_steps_total",
		Help: "The total number of resolver lookup steps by step and outcome",
	}, []string{"step", "outcome"})

	SearchResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_search_results_total",
		Help: "The total number of searches by classification and result type",
	}, []string{"kind", "type"})
)

// Publisher Metrics
var (
	PublisherEventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "explorer_publisher_events_published_total",
		Help: "The total number of events published to kafka",
	})

	PublisherErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "explorer_publisher_errors_total",
		Help: "The total number of kafka publish failures",
	})
)

// Export Metrics
var ExportedRows = promauto.NewCounter(prometheus.CounterOpts{
	Name: "explorer_exported_rows_total",
	Help: "The total number of transaction rows written to parquet exports",
})
