package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type BasicAuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

type APIConfig struct {
	Host           string          `mapstructure:"host"`
	Port           int             `mapstructure:"port"`
	BasicAuth      BasicAuthConfig `mapstructure:"basicAuth"`
	AllowedOrigins []string        `mapstructure:"allowedOrigins"`
	RateLimit      RateLimitConfig `mapstructure:"rateLimit"`
	// Chain used by blockTransactions when the caller omits chainId.
	DefaultChainId uint64 `mapstructure:"defaultChainId"`
	SearchLimit    int    `mapstructure:"searchLimit"`
}

type StorageEngine string

const (
	StorageEngineSqlite     StorageEngine = "sqlite"
	StorageEnginePostgres   StorageEngine = "postgres"
	StorageEngineMysql      StorageEngine = "mysql"
	StorageEngineClickhouse StorageEngine = "clickhouse"
)

type StorageConfig struct {
	Main StorageConnectionConfig `mapstructure:"main"`
}

type StorageConnectionConfig struct {
	Engine         StorageEngine     `mapstructure:"engine"`
	Table          string            `mapstructure:"table"`
	QueryTimeoutMs int               `mapstructure:"queryTimeoutMs"`
	DocumentFields string            `mapstructure:"documentFields"`
	Sqlite         *SqliteConfig     `mapstructure:"sqlite"`
	Postgres       *PostgresConfig   `mapstructure:"postgres"`
	Mysql          *MysqlConfig      `mapstructure:"mysql"`
	Clickhouse     *ClickhouseConfig `mapstructure:"clickhouse"`
}

type SqliteConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type PostgresConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslMode"`
	MaxOpenConns    int    `mapstructure:"maxOpenConns"`
	MaxIdleConns    int    `mapstructure:"maxIdleConns"`
	MaxConnLifetime int    `mapstructure:"maxConnLifetime"`
	ConnectTimeout  int    `mapstructure:"connectTimeout"`
}

type MysqlConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
}

type ClickhouseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	DisableTLS   bool   `mapstructure:"disableTLS"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"poolSize"`
	EnableTLS bool   `mapstructure:"enableTLS"`
}

type MemoryCacheConfig struct {
	SizeMB int `mapstructure:"sizeMB"`
}

type CacheConfig struct {
	// "", "redis" or "memory"
	Provider   string            `mapstructure:"provider"`
	TTLSeconds int               `mapstructure:"ttlSeconds"`
	Redis      *RedisConfig      `mapstructure:"redis"`
	Memory     MemoryCacheConfig `mapstructure:"memory"`
}

type PebbleConfig struct {
	Path string `mapstructure:"path"`
}

type BadgerConfig struct {
	Path string `mapstructure:"path"`
}

type HistoryConfig struct {
	// "memory", "redis", "pebble" or "badger"
	Provider string        `mapstructure:"provider"`
	Capacity int           `mapstructure:"capacity"`
	Key      string        `mapstructure:"key"`
	Redis    *RedisConfig  `mapstructure:"redis"`
	Pebble   *PebbleConfig `mapstructure:"pebble"`
	Badger   *BadgerConfig `mapstructure:"badger"`
}

type PublisherConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Brokers   string `mapstructure:"brokers"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	EnableTLS bool   `mapstructure:"enableTLS"`
	Topic     string `mapstructure:"topic"`
}

type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"serviceName"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type ExportConfig struct {
	Dir       string    `mapstructure:"dir"`
	BatchSize int       `mapstructure:"batchSize"`
	S3        *S3Config `mapstructure:"s3"`
}

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	API       APIConfig       `mapstructure:"api"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Cache     CacheConfig     `mapstructure:"cache"`
	History   HistoryConfig   `mapstructure:"history"`
	Publisher PublisherConfig `mapstructure:"publisher"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Export    ExportConfig    `mapstructure:"export"`
}

var Cfg Config

func setDefaults() {
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("api.host", "localhost:3000")
	viper.SetDefault("api.port", 3000)
	viper.SetDefault("api.defaultChainId", 137)
	viper.SetDefault("api.searchLimit", 10)
	viper.SetDefault("api.allowedOrigins", []string{"*"})
	viper.SetDefault("api.rateLimit.requestsPerSecond", 20)
	viper.SetDefault("api.rateLimit.burst", 40)
	viper.SetDefault("storage.main.engine", string(StorageEngineSqlite))
	viper.SetDefault("storage.main.table", "transactions")
	viper.SetDefault("storage.main.queryTimeoutMs", 10000)
	viper.SetDefault("storage.main.documentFields", "json")
	viper.SetDefault("storage.main.sqlite.path", "explorer.db")
	viper.SetDefault("cache.ttlSeconds", 30)
	viper.SetDefault("cache.memory.sizeMB", 64)
	viper.SetDefault("history.provider", "memory")
	viper.SetDefault("history.capacity", 20)
	viper.SetDefault("history.key", "explorer:search_history")
	viper.SetDefault("publisher.topic", "explorer.events")
	viper.SetDefault("tracing.serviceName", "integra-explorer")
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("export.batchSize", 100)
}

func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			// running on defaults, flags and env is fine
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}

		viper.SetConfigName("secrets")
		if err := viper.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error loading secrets file: %v", err)
			}
		}
	}

	// sets e.g. API_PORT to api.port
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	if Cfg.Storage.Main.Engine == StorageEngineSqlite && Cfg.Storage.Main.Sqlite == nil {
		Cfg.Storage.Main.Sqlite = &SqliteConfig{Path: viper.GetString("storage.main.sqlite.path")}
	}
	if path := os.Getenv("EXPLORER_SQLITE_PATH"); path != "" && Cfg.Storage.Main.Sqlite != nil {
		Cfg.Storage.Main.Sqlite.Path = path
	}

	return nil
}
