package config

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common"
	marketplaceconfig "github.com/gaze-network/marketplace-indexer/modules/marketplace/config"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gaze-network/marketplace-indexer/pkg/middleware/requestcontext"
	"github.com/gaze-network/marketplace-indexer/pkg/middleware/requestlogger"
	"github.com/gaze-network/marketplace-indexer/pkg/reportingclient"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network:       common.NetworkMainnet,
		EnableModules: []string{"marketplace"},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
		},
		EVMNode: EVMNodeClient{
			MaxBlockRange:  10,
			RequestTimeout: 30 * time.Second,
		},
		Modules: Modules{
			Marketplace: marketplaceconfig.Default(),
		},
		Reporting: reportingclient.Config{
			Disabled: true,
		},
	}
)

type Config struct {
	Logger        logger.Config          `mapstructure:"logger"`
	EVMNode       EVMNodeClient          `mapstructure:"evm_node"`
	Network       common.Network         `mapstructure:"network"`
	HTTPServer    HTTPServerConfig       `mapstructure:"http_server"`
	Reporting     reportingclient.Config `mapstructure:"reporting"`
	Modules       Modules                `mapstructure:"modules"`
	EnableModules []string               `mapstructure:"enable_modules"`
	APIOnly       bool                   `mapstructure:"api_only"`
}

// EVMNodeClient is the JSON-RPC endpoint configuration of the chain node.
type EVMNodeClient struct {
	RPCURL string `mapstructure:"rpc_url"`

	// WSURL is used by the live watcher. Falls back to RPCURL when empty.
	WSURL string `mapstructure:"ws_url"`

	// MaxBlockRange is the provider's eth_getLogs range limit, 0 means unknown.
	MaxBlockRange  uint64        `mapstructure:"max_block_range"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type Modules struct {
	Marketplace marketplaceconfig.Config `mapstructure:"marketplace"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"requestip"`
}

// Parse parse the configuration from environment variables
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

// Load returns the loaded configuration
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if isInit {
		return *config
	}
	return parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
// Example (where serverCmd is a Cobra instance):
//
//	serverCmd.Flags().Int("port", 1138, "Port to run Application server on")
//	Viper.BindPFlag("port", serverCmd.Flags().Lookup("port"))
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slogx.String("package", "config"), slogx.Error(err))
	}
}

// SetDefault sets the default value for this key.
// Default only used when no value is provided by the user via flag, config or ENV.
func SetDefault(key string, value any) { viper.SetDefault(key, value) }

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}
