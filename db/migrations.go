package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	config "github.com/integra/explorer/configs"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/sqlite/*.sql
var embedSqliteSchema embed.FS

//go:embed migrations/postgres/*.sql
var embedPostgresSchema embed.FS

//go:embed migrations/mysql/*.sql
var embedMysqlSchema embed.FS

//go:embed migrations/clickhouse/*.sql
var embedClickhouseSchema embed.FS

// Versions accepted by ApplySchema besides an explicit target.
const (
	VersionLatest int64 = -2
	VersionNext   int64 = -1
)

func schemaFor(engine config.StorageEngine) (fs.FS, string, string, error) {
	switch engine {
	case config.StorageEngineSqlite, "":
		return embedSqliteSchema, "sqlite3", "migrations/sqlite", nil
	case config.StorageEnginePostgres:
		return embedPostgresSchema, "postgres", "migrations/postgres", nil
	case config.StorageEngineMysql:
		return embedMysqlSchema, "mysql", "migrations/mysql", nil
	case config.StorageEngineClickhouse:
		return embedClickhouseSchema, "clickhouse", "migrations/clickhouse", nil
	default:
		return nil, "", "", fmt.Errorf("unknown database engine %q", engine)
	}
}

// ApplySchema migrates the transactions table up to version, VersionLatest or VersionNext.
func ApplySchema(db *sql.DB, engine config.StorageEngine, version int64) error {
	schema, engineDialect, schemaDirectory, err := schemaFor(engine)
	if err != nil {
		return err
	}
	goose.SetBaseFS(schema)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(engineDialect); err != nil {
		return err
	}

	switch version {
	case VersionLatest:
		err = goose.Up(db, schemaDirectory, goose.WithAllowMissing())
	case VersionNext:
		err = goose.UpByOne(db, schemaDirectory, goose.WithAllowMissing())
	default:
		err = goose.UpTo(db, schemaDirectory, version, goose.WithAllowMissing())
	}
	if err != nil {
		return fmt.Errorf("failed to apply %s schema: %w", engine, err)
	}

	current, err := goose.GetDBVersion(db)
	if err == nil {
		log.Info().Str("engine", string(engine)).Int64("version", current).Msg("Schema migrations applied")
	}
	return nil
}

// RollbackSchema reverts the most recent migration.
func RollbackSchema(db *sql.DB, engine config.StorageEngine) error {
	schema, engineDialect, schemaDirectory, err := schemaFor(engine)
	if err != nil {
		return err
	}
	goose.SetBaseFS(schema)
	if err := goose.SetDialect(engineDialect); err != nil {
		return err
	}
	return goose.Down(db, schemaDirectory)
}
