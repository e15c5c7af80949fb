package storage

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit within a 32-bit OFFSET.
	MaxPage = math.MaxInt32 / MaxLimit

	defaultTable   = "transactions"
	defaultOrderBy = "block_timestamp DESC, transaction_hash DESC"
)

var transactionColumns = []string{
	"id",
	"chain_id",
	"contract_type",
	"contract_address",
	"block_number",
	"block_timestamp",
	"transaction_hash",
	"transaction_data",
	"receipt_data",
	"parsed_input",
	"parsed_events",
	"document_data",
}

type QueryFilter struct {
	Page            int     `json:"page,omitempty" schema:"page"`
	Limit           int     `json:"limit,omitempty" schema:"limit"`
	ChainId         *uint64 `json:"chainId,omitempty" schema:"chainId"`
	ContractType    string  `json:"contractType,omitempty" schema:"contractType"`
	ContractAddress string  `json:"contractAddress,omitempty" schema:"contractAddress"`
	BlockNumber     *uint64 `json:"blockNumber,omitempty" schema:"blockNumber"`
	IntegraHash     string  `json:"integraHash,omitempty" schema:"integraHash"`
	DocumentHash    string  `json:"documentHash,omitempty" schema:"documentHash"`
	ProcessHash     string  `json:"processHash,omitempty" schema:"processHash"`
	Method          string  `json:"method,omitempty" schema:"method"`
}

// Normalize clamps paging to 1 <= page <= MaxPage and 1 <= limit <= MaxLimit.
// Out of range values fall back to the defaults rather than failing.
func (qf QueryFilter) Normalize() QueryFilter {
	if qf.Page < 1 {
		qf.Page = DefaultPage
	}
	if qf.Page > MaxPage {
		qf.Page = MaxPage
	}
	if qf.Limit < 1 {
		qf.Limit = DefaultLimit
	}
	if qf.Limit > MaxLimit {
		qf.Limit = MaxLimit
	}
	return qf
}

func (qf QueryFilter) Offset() int {
	n := qf.Normalize()
	return (n.Page - 1) * n.Limit
}

// Statement is a parameterized SQL statement ready to run against the main store.
type Statement struct {
	Kind string
	SQL  string
	Args []any
}

// QueryPlan is a filtered listing of transactions. Predicates are joined with AND.
type QueryPlan struct {
	Predicates []string
	Args       []any
	OrderBy    string
	Limit      int
	Offset     int

	dialect Dialect
	table   string
}

func (p QueryPlan) where() string {
	if len(p.Predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.Predicates, " AND ")
}

// SelectStatement renders the page query. LIMIT and OFFSET are bound last.
func (p QueryPlan) SelectStatement() Statement {
	args := make([]any, 0, len(p.Args)+2)
	args = append(args, p.Args...)
	args = append(args, p.Limit, p.Offset)

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT %s OFFSET %s",
		strings.Join(transactionColumns, ", "), p.table, p.where(), p.OrderBy,
		p.dialect.Placeholder(len(p.Args)+1), p.dialect.Placeholder(len(p.Args)+2))
	return Statement{Kind: "list_transactions", SQL: query, Args: args}
}

// CountStatement shares the predicates of the page query but has no ordering or paging.
func (p QueryPlan) CountStatement() Statement {
	args := make([]any, len(p.Args))
	copy(args, p.Args)
	query := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s%s", p.table, p.where())
	return Statement{Kind: "count_transactions", SQL: query, Args: args}
}

type QueryBuilder struct {
	dialect Dialect
	table   string
	fields  DocumentFieldStrategy
}

func NewQueryBuilder(dialect Dialect, table string, fields DocumentFieldStrategy) *QueryBuilder {
	if table == "" {
		table = defaultTable
	}
	if fields == nil {
		fields = JSONPathStrategy{}
	}
	return &QueryBuilder{dialect: dialect, table: table, fields: fields}
}

func (b *QueryBuilder) Dialect() Dialect {
	return b.dialect
}

type clauseBuilder struct {
	dialect    Dialect
	predicates []string
	args       []any
}

func (c *clauseBuilder) add(format string, value any) {
	c.args = append(c.args, value)
	c.predicates = append(c.predicates, fmt.Sprintf(format, c.dialect.Placeholder(len(c.args))))
}

// Build turns the filter into a plan. Present filters append one predicate and one
// argument each, always in the order chainId, contractType, contractAddress,
// blockNumber, integraHash, documentHash, processHash, method.
func (b *QueryBuilder) Build(qf QueryFilter) QueryPlan {
	qf = qf.Normalize()
	c := &clauseBuilder{dialect: b.dialect}

	if qf.ChainId != nil {
		c.add("chain_id = %s", *qf.ChainId)
	}
	if qf.ContractType != "" {
		c.add("contract_type = %s", qf.ContractType)
	}
	if qf.ContractAddress != "" {
		c.add("LOWER(contract_address) = LOWER(%s)", qf.ContractAddress)
	}
	if qf.BlockNumber != nil {
		c.add("block_number = %s", *qf.BlockNumber)
	}
	b.addDocumentField(c, DocumentFieldIntegraHash, qf.IntegraHash)
	b.addDocumentField(c, DocumentFieldDocumentHash, qf.DocumentHash)
	b.addDocumentField(c, DocumentFieldProcessHash, qf.ProcessHash)
	b.addDocumentField(c, DocumentFieldMethod, qf.Method)

	return QueryPlan{
		Predicates: c.predicates,
		Args:       c.args,
		OrderBy:    defaultOrderBy,
		Limit:      qf.Limit,
		Offset:     qf.Offset(),
		dialect:    b.dialect,
		table:      b.table,
	}
}

func (b *QueryBuilder) addDocumentField(c *clauseBuilder, field DocumentField, value string) {
	if value == "" {
		return
	}
	c.add(b.fields.Expression(b.dialect, field)+" = %s", value)
}

func (b *QueryBuilder) selectColumns() string {
	return strings.Join(transactionColumns, ", ")
}

// TransactionByHash matches transaction hashes case-insensitively.
func (b *QueryBuilder) TransactionByHash(hash string, limit int) Statement {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(transaction_hash) = LOWER(%s) ORDER BY %s LIMIT %s",
		b.selectColumns(), b.table, b.dialect.Placeholder(1), defaultOrderBy, b.dialect.Placeholder(2))
	return Statement{Kind: "transaction_by_hash", SQL: query, Args: []any{hash, limit}}
}

func (b *QueryBuilder) TransactionsByDocumentField(field DocumentField, value string, limit int) Statement {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s ORDER BY %s LIMIT %s",
		b.selectColumns(), b.table, b.fields.Expression(b.dialect, field), b.dialect.Placeholder(1),
		defaultOrderBy, b.dialect.Placeholder(2))
	return Statement{Kind: "transactions_by_" + string(field), SQL: query, Args: []any{value, limit}}
}

// BlockChainCounts counts the transactions of a block per chain, lowest chain id first.
func (b *QueryBuilder) BlockChainCounts(blockNumber uint64) Statement {
	query := fmt.Sprintf("SELECT chain_id, COUNT(*) AS count FROM %s WHERE block_number = %s GROUP BY chain_id ORDER BY chain_id LIMIT 1",
		b.table, b.dialect.Placeholder(1))
	return Statement{Kind: "block_chain_counts", SQL: query, Args: []any{blockNumber}}
}

func (b *QueryBuilder) BlockTransactions(chainId uint64, blockNumber uint64) Statement {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE chain_id = %s AND block_number = %s ORDER BY transaction_hash",
		b.selectColumns(), b.table, b.dialect.Placeholder(1), b.dialect.Placeholder(2))
	return Statement{Kind: "block_transactions", SQL: query, Args: []any{chainId, blockNumber}}
}

func (b *QueryBuilder) CountTransactions(chainId *uint64) Statement {
	if chainId == nil {
		return Statement{Kind: "count_transactions", SQL: fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", b.table)}
	}
	query := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s WHERE chain_id = %s", b.table, b.dialect.Placeholder(1))
	return Statement{Kind: "count_transactions", SQL: query, Args: []any{*chainId}}
}

func (b *QueryBuilder) CountChains() Statement {
	return Statement{Kind: "count_chains", SQL: fmt.Sprintf("SELECT COUNT(DISTINCT chain_id) AS count FROM %s", b.table)}
}

// LatestBlock yields 0 for an empty table.
func (b *QueryBuilder) LatestBlock(chainId *uint64) Statement {
	if chainId == nil {
		return Statement{Kind: "latest_block", SQL: fmt.Sprintf("SELECT COALESCE(MAX(block_number), 0) AS count FROM %s", b.table)}
	}
	query := fmt.Sprintf("SELECT COALESCE(MAX(block_number), 0) AS count FROM %s WHERE chain_id = %s", b.table, b.dialect.Placeholder(1))
	return Statement{Kind: "latest_block", SQL: query, Args: []any{*chainId}}
}
