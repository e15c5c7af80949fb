package storage

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-sql-driver/mysql"
	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/common"
	"github.com/integra/explorer/internal/metrics"
	"github.com/integra/explorer/internal/tracing"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"
)

const defaultQueryTimeout = 10 * time.Second

// SQLConnector serves the main store over database/sql for every supported engine.
type SQLConnector struct {
	db           *sqlx.DB
	dialect      Dialect
	queryTimeout time.Duration
}

func NewSQLConnector(cfg *config.StorageConnectionConfig) (*SQLConnector, error) {
	dialect, err := DialectForEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect, err)
	}

	log.Info().Str("engine", string(dialect)).Msg("Connected to main storage")
	return NewSQLConnectorFromDB(db, dialect, time.Duration(cfg.QueryTimeoutMs)*time.Millisecond), nil
}

// NewSQLConnectorFromDB wraps an already opened database.
func NewSQLConnectorFromDB(db *sqlx.DB, dialect Dialect, queryTimeout time.Duration) *SQLConnector {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &SQLConnector{db: db, dialect: dialect, queryTimeout: queryTimeout}
}

// OpenDB opens the configured engine without checking connectivity.
func OpenDB(cfg *config.StorageConnectionConfig) (*sqlx.DB, error) {
	dialect, err := DialectForEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return openPostgres(cfg.Postgres)
	case DialectMysql:
		return openMysql(cfg.Mysql)
	case DialectClickhouse:
		return openClickhouse(cfg.Clickhouse)
	default:
		return openSqlite(cfg.Sqlite)
	}
}

func openSqlite(cfg *config.SqliteConfig) (*sqlx.DB, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, errors.New("sqlite path is not configured")
	}
	db, err := sqlx.Open(DialectSqlite.DriverName(), cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	return db, nil
}

func openPostgres(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	// Default to "require" for security if SSL mode not specified
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
		log.Info().Msg("No SSL mode specified, defaulting to 'require' for secure connection")
	}
	connStr += fmt.Sprintf(" sslmode=%s", sslMode)

	if cfg.ConnectTimeout > 0 {
		connStr += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
	}

	db, err := sqlx.Open(DialectPostgres.DriverName(), connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	}
	return db, nil
}

func openMysql(cfg *config.MysqlConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true

	db, err := sqlx.Open(DialectMysql.DriverName(), mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	return db, nil
}

func openClickhouse(cfg *config.ClickhouseConfig) (*sqlx.DB, error) {
	options := &clickhouse.Options{
		Addr:     []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Protocol: clickhouse.Native,
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	}
	if !cfg.DisableTLS {
		options.TLS = &tls.Config{}
	}
	return sqlx.NewDb(clickhouse.OpenDB(options), DialectClickhouse.DriverName()), nil
}

func (c *SQLConnector) DB() *sqlx.DB {
	return c.db
}

func (c *SQLConnector) Dialect() Dialect {
	return c.dialect
}

func (c *SQLConnector) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()
	return classifyError(ctx, c.db.PingContext(ctx))
}

func (c *SQLConnector) Close() error {
	return c.db.Close()
}

func (c *SQLConnector) SelectTransactions(ctx context.Context, stmt Statement) ([]common.TransactionRecord, error) {
	records := []common.TransactionRecord{}
	err := c.run(ctx, stmt, func(ctx context.Context) error {
		return c.db.SelectContext(ctx, &records, stmt.SQL, stmt.Args...)
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *SQLConnector) SelectChainCounts(ctx context.Context, stmt Statement) ([]ChainCount, error) {
	counts := []ChainCount{}
	err := c.run(ctx, stmt, func(ctx context.Context) error {
		return c.db.SelectContext(ctx, &counts, stmt.SQL, stmt.Args...)
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// SelectUint64 reads the single value of a one-row, one-column statement.
func (c *SQLConnector) SelectUint64(ctx context.Context, stmt Statement) (uint64, error) {
	var value sql.NullInt64
	err := c.run(ctx, stmt, func(ctx context.Context) error {
		return c.db.QueryRowxContext(ctx, stmt.SQL, stmt.Args...).Scan(&value)
	})
	if err != nil {
		return 0, err
	}
	if !value.Valid || value.Int64 < 0 {
		return 0, nil
	}
	return uint64(value.Int64), nil
}

func (c *SQLConnector) run(ctx context.Context, stmt Statement, query func(ctx context.Context) error) (err error) {
	ctx, span := tracing.StartSpan(ctx, "storage."+stmt.Kind,
		attribute.String("db.system", string(c.dialect)),
		attribute.String("db.statement", stmt.SQL),
	)
	defer func() { tracing.EndSpan(span, err) }()

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	start := time.Now()
	err = query(ctx)
	metrics.StoreQueryDuration.WithLabelValues(string(c.dialect), stmt.Kind).Observe(time.Since(start).Seconds())
	if err != nil {
		err = classifyError(ctx, err)
		metrics.StoreQueryErrors.WithLabelValues(string(c.dialect), errorClass(err)).Inc()
		log.Error().Err(err).Str("kind", stmt.Kind).Msg("store query failed")
		return err
	}
	return nil
}
