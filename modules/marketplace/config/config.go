package config

import (
	"time"

	"github.com/gaze-network/marketplace-indexer/internal/postgres"
)

const (
	DatabaseMemory   = "memory"
	DatabasePostgres = "postgres"
	DatabaseRedis    = "redis"

	ListingSourceMaterialized = "materialized"
	ListingSourceLogScan      = "logscan"
	ListingSourceSubgraph     = "subgraph"
)

type Config struct {
	// ContractAddress is the marketplace contract to index.
	ContractAddress string `mapstructure:"contract_address"`

	// StartBlock is the contract deployment block. Nothing below it is fetched.
	StartBlock uint64 `mapstructure:"start_block"`

	Database    string          `mapstructure:"database"`     // memory, postgres or redis
	APIHandlers []string        `mapstructure:"api_handlers"` // e.g. `http`
	Postgres    postgres.Config `mapstructure:"postgres"`
	Redis       RedisConfig     `mapstructure:"redis"`

	Datasource DatasourceConfig `mapstructure:"datasource"`

	// ListingSource selects how GetActiveListings is answered: materialized, logscan or subgraph.
	ListingSource string `mapstructure:"listing_source"`
	SubgraphURL   string `mapstructure:"subgraph_url"`

	// ScanBlocks is the lookback window of the logscan source, 0 scans from StartBlock.
	ScanBlocks uint64 `mapstructure:"scan_blocks"`

	LiveWatcher bool          `mapstructure:"live_watcher"`
	Archive     ArchiveConfig `mapstructure:"archive"`
}

type DatasourceConfig struct {
	ChunkSize       uint64        `mapstructure:"chunk_size"`
	Confirmations   uint64        `mapstructure:"confirmations"`
	Concurrency     int           `mapstructure:"concurrency"`
	PollingInterval time.Duration `mapstructure:"polling_interval"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type ArchiveConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `mapstructure:"endpoint"`
}

func Default() Config {
	return Config{
		Database:      DatabasePostgres,
		APIHandlers:   []string{"http"},
		ListingSource: ListingSourceMaterialized,
		Redis: RedisConfig{
			Addr:      "127.0.0.1:6379",
			KeyPrefix: "marketplace",
		},
		Datasource: DatasourceConfig{
			ChunkSize:       100,
			Confirmations:   2,
			Concurrency:     4,
			PollingInterval: 12 * time.Second,
		},
		ScanBlocks:  50_000,
		LiveWatcher: true,
		Archive: ArchiveConfig{
			Prefix: "marketplace",
			Region: "us-east-1",
		},
	}
}
