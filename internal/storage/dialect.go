package storage

import (
	"fmt"

	config "github.com/integra/explorer/configs"
)

// Dialect decides placeholder syntax and JSON extraction for an engine.
type Dialect string

const (
	DialectSqlite     Dialect = "sqlite"
	DialectPostgres   Dialect = "postgres"
	DialectMysql      Dialect = "mysql"
	DialectClickhouse Dialect = "clickhouse"
)

func DialectForEngine(engine config.StorageEngine) (Dialect, error) {
	switch engine {
	case config.StorageEngineSqlite, "":
		return DialectSqlite, nil
	case config.StorageEnginePostgres:
		return DialectPostgres, nil
	case config.StorageEngineMysql:
		return DialectMysql, nil
	case config.StorageEngineClickhouse:
		return DialectClickhouse, nil
	default:
		return "", fmt.Errorf("unsupported storage engine %q", engine)
	}
}

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// PostgresJSONFieldFunction is created by the postgres migrations. It returns
// NULL instead of raising when the document is not valid JSON.
const PostgresJSONFieldFunction = "explorer_json_field"

// JSONExtract returns an expression yielding the text value of a top-level
// field of a JSON document column. Rows whose column is not valid JSON yield
// NULL (empty string on clickhouse) and never fail the statement.
func (d Dialect) JSONExtract(column string, field string) string {
	switch d {
	case DialectPostgres:
		return fmt.Sprintf("%s(%s, '%s')", PostgresJSONFieldFunction, column, field)
	case DialectMysql:
		return fmt.Sprintf("CASE WHEN JSON_VALID(%s) THEN JSON_UNQUOTE(JSON_EXTRACT(%s, '$.%s')) END", column, column, field)
	case DialectClickhouse:
		// JSONExtractString returns '' for unparsable input
		return fmt.Sprintf("JSONExtractString(ifNull(%s, ''), '%s')", column, field)
	default:
		return fmt.Sprintf("CASE WHEN json_valid(%s) THEN json_extract(%s, '$.%s') END", column, column, field)
	}
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	case DialectMysql:
		return "mysql"
	case DialectClickhouse:
		return "clickhouse"
	default:
		return "sqlite"
	}
}
