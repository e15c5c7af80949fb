package testdb

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/db"
	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/storage"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var databaseCounter atomic.Uint64

// NewSqlite opens a private in-memory sqlite database migrated to the latest schema.
func NewSqlite(t testing.TB) *sqlx.DB {
	t.Helper()
	name := fmt.Sprintf("file:explorer_test_%d?mode=memory&cache=shared", databaseCounter.Add(1))
	conn, err := sqlx.Open("sqlite", name)
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.ApplySchema(conn.DB, config.StorageEngineSqlite, db.VersionLatest))
	return conn
}

// NewStore returns a connector and query builder over a fresh sqlite database.
func NewStore(t testing.TB, records ...common.TransactionRecord) (*storage.SQLConnector, *storage.QueryBuilder) {
	t.Helper()
	conn := NewSqlite(t)
	Insert(t, conn, records...)
	return storage.NewSQLConnectorFromDB(conn, storage.DialectSqlite, 5*time.Second),
		storage.NewQueryBuilder(storage.DialectSqlite, "transactions", storage.JSONPathStrategy{})
}

// Insert writes fixture rows. Ids are assigned by the database.
func Insert(t testing.TB, conn *sqlx.DB, records ...common.TransactionRecord) {
	t.Helper()
	for _, r := range records {
		_, err := conn.Exec(`INSERT INTO transactions
			(chain_id, contract_type, contract_address, block_number, block_timestamp, transaction_hash,
			 transaction_data, receipt_data, parsed_input, parsed_events, document_data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ChainId, r.ContractType, r.ContractAddress, r.BlockNumber,
			r.BlockTimestamp.UTC().Format("2006-01-02 15:04:05"), r.TransactionHash,
			r.TransactionData, r.ReceiptData, nullable(r.ParsedInput), nullable(r.ParsedEvents), nullable(r.DocumentData))
		require.NoError(t, err)
	}
}

func nullable(value sql.NullString) any {
	if !value.Valid {
		return nil
	}
	return value.String
}

// Record builds a well-formed fixture row.
func Record(chainId uint64, blockNumber uint64, hash string, timestamp time.Time, documentData string) common.TransactionRecord {
	record := common.TransactionRecord{
		ChainId:         chainId,
		ContractType:    "IntegraDocumentRegistry",
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		BlockNumber:     blockNumber,
		BlockTimestamp:  common.BlockTimestamp{Time: timestamp},
		TransactionHash: hash,
		TransactionData: `{"from":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266","to":"0x5FbDB2315678afecb367f032d93F642f64180aa3","value":"0x0","gasPrice":"0x77359400"}`,
		ReceiptData:     `{"status":1,"gasUsed":"0x5208","logs":[{"topics":[]}]}`,
	}
	if documentData != "" {
		record.DocumentData = sql.NullString{String: documentData, Valid: true}
	}
	return record
}
