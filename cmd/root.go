package cmd

import (
	"fmt"
	"os"

	configs "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/env"
	customLogger "github.com/integra/explorer/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "explorer",
		Short: "Integra transaction explorer",
		Long:  "Read-only explorer API over the Integra transaction ledger: listing, lookup, universal search and statistics.",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().Int("api-port", 0, "Port the API listens on")
	rootCmd.PersistentFlags().String("api-host", "", "Public host of the API, used in the swagger docs")
	rootCmd.PersistentFlags().String("api-basicAuth-username", "", "Basic auth username for the API")
	rootCmd.PersistentFlags().String("api-basicAuth-password", "", "Basic auth password for the API")
	rootCmd.PersistentFlags().Bool("api-rateLimit-enabled", false, "Toggle per-client rate limiting")
	rootCmd.PersistentFlags().String("storage-main-engine", "", "Storage engine: sqlite, postgres, mysql or clickhouse")
	rootCmd.PersistentFlags().String("storage-main-sqlite-path", "", "Path of the sqlite database")
	rootCmd.PersistentFlags().String("storage-main-documentFields", "", "Document field strategy: json or columns")
	rootCmd.PersistentFlags().Int("storage-main-queryTimeoutMs", 0, "Timeout of a single store query in milliseconds")
	rootCmd.PersistentFlags().String("cache-provider", "", "Statement cache: redis, memory or empty to disable")
	rootCmd.PersistentFlags().String("history-provider", "", "Search history store: memory, redis, pebble or badger")
	rootCmd.PersistentFlags().Bool("publisher-enabled", false, "Toggle publishing events to kafka")
	rootCmd.PersistentFlags().String("publisher-brokers", "", "Comma separated kafka brokers")
	rootCmd.PersistentFlags().String("tracing-endpoint", "", "OTLP/HTTP endpoint for traces")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("api.port", rootCmd.PersistentFlags().Lookup("api-port"))
	viper.BindPFlag("api.host", rootCmd.PersistentFlags().Lookup("api-host"))
	viper.BindPFlag("api.basicAuth.username", rootCmd.PersistentFlags().Lookup("api-basicAuth-username"))
	viper.BindPFlag("api.basicAuth.password", rootCmd.PersistentFlags().Lookup("api-basicAuth-password"))
	viper.BindPFlag("api.rateLimit.enabled", rootCmd.PersistentFlags().Lookup("api-rateLimit-enabled"))
	viper.BindPFlag("storage.main.engine", rootCmd.PersistentFlags().Lookup("storage-main-engine"))
	viper.BindPFlag("storage.main.sqlite.path", rootCmd.PersistentFlags().Lookup("storage-main-sqlite-path"))
	viper.BindPFlag("storage.main.documentFields", rootCmd.PersistentFlags().Lookup("storage-main-documentFields"))
	viper.BindPFlag("storage.main.queryTimeoutMs", rootCmd.PersistentFlags().Lookup("storage-main-queryTimeoutMs"))
	viper.BindPFlag("cache.provider", rootCmd.PersistentFlags().Lookup("cache-provider"))
	viper.BindPFlag("history.provider", rootCmd.PersistentFlags().Lookup("history-provider"))
	viper.BindPFlag("publisher.enabled", rootCmd.PersistentFlags().Lookup("publisher-enabled"))
	viper.BindPFlag("publisher.brokers", rootCmd.PersistentFlags().Lookup("publisher-brokers"))
	viper.BindPFlag("tracing.endpoint", rootCmd.PersistentFlags().Lookup("tracing-endpoint"))
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(hashCmd)
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	customLogger.InitLogger()
}
