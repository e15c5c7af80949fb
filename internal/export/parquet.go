package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/metrics"
	"github.com/integra/explorer/internal/storage"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog/log"
)

const DefaultBatchSize = storage.MaxLimit

// ParquetTransaction is one exported row: the normalized summary of a
// transaction plus its block coordinates.
type ParquetTransaction struct {
	ChainId        uint64 `parquet:"chain_id"`
	BlockNumber    uint64 `parquet:"block_number"`
	BlockTimestamp int64  `parquet:"block_timestamp"`
	Hash           string `parquet:"hash"`
	From           string `parquet:"from_address"`
	To             string `parquet:"to_address"`
	Value          string `parquet:"value"`
	GasUsed        string `parquet:"gas_used"`
	GasPrice       string `parquet:"gas_price"`
	Status         string `parquet:"status"`
	Method         string `parquet:"method"`
	ContractType   string `parquet:"contract_type"`
	EventCount     int32  `parquet:"event_count"`
	IntegraHash    string `parquet:"integra_hash,optional"`
	DocumentHash   string `parquet:"document_hash,optional"`
	ProcessHash    string `parquet:"process_hash,optional"`
}

func toParquet(s common.TransactionSummary) ParquetTransaction {
	return ParquetTransaction{
		ChainId:        s.ChainId,
		BlockNumber:    s.BlockNumber,
		BlockTimestamp: s.Timestamp.Unix(),
		Hash:           s.Hash,
		From:           s.From,
		To:             s.To,
		Value:          s.Value,
		GasUsed:        s.GasUsed,
		GasPrice:       s.GasPrice,
		Status:         string(s.Status),
		Method:         s.Method,
		ContractType:   s.ContractType,
		EventCount:     int32(s.EventCount),
		IntegraHash:    s.IntegraHash,
		DocumentHash:   s.DocumentHash,
		ProcessHash:    s.ProcessHash,
	}
}

var writerOptions = []parquet.WriterOption{
	parquet.Compression(&parquet.Zstd),
	parquet.DataPageStatistics(true),
	parquet.PageBufferSize(1024 * 1024),
}

// Uploader ships a finished export file to remote storage.
type Uploader interface {
	Upload(ctx context.Context, file *os.File, key string, metadata map[string]string) error
}

type Result struct {
	Path     string `json:"path"`
	Key      string `json:"key,omitempty"`
	Rows     int    `json:"rows"`
	Skipped  int    `json:"skipped"`
	Uploaded bool   `json:"uploaded"`
}

type Exporter struct {
	store     storage.IMainStorage
	builder   *storage.QueryBuilder
	dir       string
	batchSize int
	uploader  Uploader
	now       func() time.Time
}

func NewExporter(st storage.IStorage, dir string, batchSize int, uploader Uploader) *Exporter {
	if dir == "" {
		dir = os.TempDir()
	}
	if batchSize <= 0 || batchSize > storage.MaxLimit {
		batchSize = DefaultBatchSize
	}
	return &Exporter{
		store:     st.MainStorage,
		builder:   st.Builder,
		dir:       dir,
		batchSize: batchSize,
		uploader:  uploader,
		now:       time.Now,
	}
}

// Export writes every transaction matching the filter to one parquet file,
// walking the listing page by page in listing order. Malformed rows are
// skipped. With an uploader the file is uploaded and removed locally.
func (e *Exporter) Export(ctx context.Context, filter storage.QueryFilter) (*Result, error) {
	startedAt := e.now().UTC()
	name := fmt.Sprintf("transactions_%s_%d.parquet", chainLabel(filter.ChainId), startedAt.Unix())
	path := filepath.Join(e.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[ParquetTransaction](file, writerOptions...)
	result := &Result{Path: path}

	filter.Limit = e.batchSize
	for page := 1; ; page++ {
		filter.Page = page
		records, err := e.store.SelectTransactions(ctx, e.builder.Build(filter).SelectStatement())
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to read page %d: %w", page, err)
		}

		summaries := common.SummarizeTransactions(records)
		rows := make([]ParquetTransaction, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, toParquet(s))
		}
		if _, err := writer.Write(rows); err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write parquet rows: %w", err)
		}
		result.Rows += len(rows)
		result.Skipped += len(records) - len(rows)
		metrics.ExportedRows.Add(float64(len(rows)))

		if len(records) < e.batchSize {
			break
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close parquet writer: %w", err)
	}
	log.Info().Str("path", path).Int("rows", result.Rows).Int("skipped", result.Skipped).Msg("Wrote transaction export")

	if e.uploader == nil {
		return result, nil
	}

	result.Key = name
	metadata := map[string]string{
		"chain_id": chainLabel(filter.ChainId),
		"rows":     fmt.Sprintf("%d", result.Rows),
		"exported": startedAt.Format(time.RFC3339),
	}
	if err := e.uploader.Upload(ctx, file, name, metadata); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}
	result.Uploaded = true
	if err := os.Remove(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to delete uploaded export")
	}
	return result, nil
}

func chainLabel(chainId *uint64) string {
	if chainId == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *chainId)
}
