package common

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/integra/explorer/internal/metrics"
	"github.com/rs/zerolog/log"
)

var ErrMalformedRecord = errors.New("malformed transaction record")

const unknownValue = "Unknown"

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// TransactionRecord is one row of the transactions ledger table.
type TransactionRecord struct {
	Id              uint64         `db:"id" json:"id"`
	ChainId         uint64         `db:"chain_id" json:"chain_id"`
	ContractType    string         `db:"contract_type" json:"contract_type"`
	ContractAddress string         `db:"contract_address" json:"contract_address"`
	BlockNumber     uint64         `db:"block_number" json:"block_number"`
	BlockTimestamp  BlockTimestamp `db:"block_timestamp" json:"block_timestamp" swaggertype:"string"`
	TransactionHash string         `db:"transaction_hash" json:"transaction_hash"`
	TransactionData string         `db:"transaction_data" json:"transaction_data"`
	ReceiptData     string         `db:"receipt_data" json:"receipt_data"`
	ParsedInput     sql.NullString `db:"parsed_input" json:"parsed_input" swaggertype:"string"`
	ParsedEvents    sql.NullString `db:"parsed_events" json:"parsed_events" swaggertype:"string"`
	DocumentData    sql.NullString `db:"document_data" json:"document_data" swaggertype:"string"`
}

type TransactionSummary struct {
	Hash         string            `json:"hash"`
	BlockNumber  uint64            `json:"blockNumber"`
	Timestamp    time.Time         `json:"timestamp"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	Value        string            `json:"value"`
	GasUsed      string            `json:"gasUsed"`
	GasPrice     string            `json:"gasPrice"`
	Status       TransactionStatus `json:"status"`
	Method       string            `json:"method"`
	ContractType string            `json:"contractType"`
	ChainId      uint64            `json:"chainId"`
	EventCount   int               `json:"eventCount"`
	IntegraHash  string            `json:"integraHash,omitempty"`
	DocumentHash string            `json:"documentHash,omitempty"`
	ProcessHash  string            `json:"processHash,omitempty"`
}

type RawTransactionData struct {
	Transaction json.RawMessage `json:"transaction" swaggertype:"object"`
	Receipt     json.RawMessage `json:"receipt" swaggertype:"object"`
}

type TransactionDetail struct {
	TransactionSummary
	DecodedInput json.RawMessage    `json:"decodedInput" swaggertype:"object"`
	Events       json.RawMessage    `json:"events" swaggertype:"object"`
	RawData      RawTransactionData `json:"rawData"`
}

// Summary normalizes the record. Blobs that are not JSON objects yield ErrMalformedRecord.
func (r *TransactionRecord) Summary() (*TransactionSummary, error) {
	txData, err := decodeObject(r.TransactionData)
	if err != nil {
		return nil, fmt.Errorf("%w: record %d transaction_data: %v", ErrMalformedRecord, r.Id, err)
	}
	receipt, err := decodeObject(r.ReceiptData)
	if err != nil {
		return nil, fmt.Errorf("%w: record %d receipt_data: %v", ErrMalformedRecord, r.Id, err)
	}
	var document map[string]any
	if r.DocumentData.Valid && strings.TrimSpace(r.DocumentData.String) != "" {
		document, err = decodeObject(r.DocumentData.String)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d document_data: %v", ErrMalformedRecord, r.Id, err)
		}
	}

	to := stringField(txData, "to")
	if to == "" {
		to = r.ContractAddress
	}
	contractType := r.ContractType
	if contractType == "" {
		contractType = unknownValue
	}
	method := stringField(document, "method")
	if method == "" {
		method = unknownValue
	}

	return &TransactionSummary{
		Hash:         r.TransactionHash,
		BlockNumber:  r.BlockNumber,
		Timestamp:    r.BlockTimestamp.Time,
		From:         stringField(txData, "from"),
		To:           to,
		Value:        NormalizeQuantity(txData["value"]),
		GasUsed:      NormalizeQuantity(receipt["gasUsed"]),
		GasPrice:     NormalizeQuantity(txData["gasPrice"]),
		Status:       receiptStatus(receipt["status"]),
		Method:       method,
		ContractType: contractType,
		ChainId:      r.ChainId,
		EventCount:   eventCount(receipt["logs"]),
		IntegraHash:  stringField(document, "integraHash"),
		DocumentHash: stringField(document, "documentHash"),
		ProcessHash:  stringField(document, "processHash"),
	}, nil
}

// Detail extends the summary with the decoded call, events and raw payloads.
// Unparsable parsed_input or parsed_events are reported as null.
func (r *TransactionRecord) Detail() (*TransactionDetail, error) {
	summary, err := r.Summary()
	if err != nil {
		return nil, err
	}
	return &TransactionDetail{
		TransactionSummary: *summary,
		DecodedInput:       optionalJSON(r.ParsedInput),
		Events:             optionalJSON(r.ParsedEvents),
		RawData: RawTransactionData{
			Transaction: json.RawMessage(r.TransactionData),
			Receipt:     json.RawMessage(r.ReceiptData),
		},
	}, nil
}

// SummarizeTransactions normalizes all records, dropping and logging malformed ones.
func SummarizeTransactions(records []TransactionRecord) []TransactionSummary {
	summaries := make([]TransactionSummary, 0, len(records))
	for i := range records {
		summary, err := records[i].Summary()
		if err != nil {
			metrics.MalformedRecords.Inc()
			log.Warn().Err(err).
				Uint64("record_id", records[i].Id).
				Str("transaction_hash", records[i].TransactionHash).
				Msg("dropping malformed transaction record")
			continue
		}
		summaries = append(summaries, *summary)
	}
	return summaries
}

func decodeObject(blob string) (map[string]any, error) {
	decoder := json.NewDecoder(strings.NewReader(blob))
	decoder.UseNumber()
	var obj map[string]any
	if err := decoder.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("expected a JSON object")
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON object")
	}
	return obj, nil
}

func optionalJSON(value sql.NullString) json.RawMessage {
	if !value.Valid || !json.Valid([]byte(value.String)) {
		return nil
	}
	return json.RawMessage(value.String)
}

func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// only the numeric code 1 is a success, "0x1" strings are not
func receiptStatus(value any) TransactionStatus {
	number, ok := value.(json.Number)
	if !ok {
		return TransactionStatusFailed
	}
	status, ok := new(big.Float).SetString(number.String())
	if ok && status.Cmp(big.NewFloat(1)) == 0 {
		return TransactionStatusSuccess
	}
	return TransactionStatusFailed
}

func eventCount(value any) int {
	logs, ok := value.([]any)
	if !ok {
		return 0
	}
	return len(logs)
}
