package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/db"
	"github.com/integra/explorer/internal/storage"
)

var (
	migrateVersion  int64
	migrateRollback bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the transactions schema to the configured store",
		Long:  "Apply the embedded goose migrations for the configured storage engine. By default migrates to the latest version.",
		Run: func(cmd *cobra.Command, args []string) {
			RunMigrate(cmd, args)
		},
	}
)

func init() {
	migrateCmd.Flags().Int64Var(&migrateVersion, "version", db.VersionLatest, "Target schema version (-2 latest, -1 next)")
	migrateCmd.Flags().BoolVar(&migrateRollback, "rollback", false, "Revert the most recent migration instead")
}

func RunMigrate(cmd *cobra.Command, args []string) {
	cfg := &config.Cfg.Storage.Main
	conn, err := storage.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer conn.Close()

	if migrateRollback {
		if err := db.RollbackSchema(conn.DB, cfg.Engine); err != nil {
			log.Fatal().Err(err).Msg("Failed to roll back schema")
		}
		log.Info().Str("engine", string(cfg.Engine)).Msg("Rolled back the latest migration")
		return
	}

	if err := db.ApplySchema(conn.DB, cfg.Engine, migrateVersion); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}
	log.Info().Str("engine", string(cfg.Engine)).Int64("version", migrateVersion).Msg("Schema is up to date")
}
