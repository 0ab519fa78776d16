package postgres

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = "5432"
	DefaultDBName   = "postgres"
	DefaultSSLMode  = "prefer"
	DefaultMaxConns = 16
	DefaultMinConns = 0
	DefaultLogLevel = tracelog.LogLevelError
)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`

	// URL takes precedence over the other connection fields.
	URL string `mapstructure:"url"`

	MaxConns int32 `mapstructure:"max_conns"`
	MinConns int32 `mapstructure:"min_conns"`

	Debug bool `mapstructure:"debug"`
}

// NewPool opens a connection pool and pings it.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse postgres config")
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	poolConfig.ConnConfig.Tracer = conf.QueryTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	return pool, nil
}

func (conf Config) withDefaults() Config {
	conf.Host = utils.Default(conf.Host, DefaultHost)
	conf.Port = utils.Default(conf.Port, DefaultPort)
	conf.DBName = utils.Default(conf.DBName, DefaultDBName)
	conf.SSLMode = utils.Default(conf.SSLMode, DefaultSSLMode)
	return conf
}

// String returns the connection string in DSN format, or URL if set.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}
	conf = conf.withDefaults()
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s sslmode=%s", conf.Host, conf.Port, conf.DBName, conf.SSLMode)
	if conf.User != "" {
		dsn += " user=" + conf.User
	}
	if conf.Password != "" {
		dsn += " password=" + conf.Password
	}
	return dsn
}

// URLString returns the connection string in URL format, as golang-migrate expects.
func (conf Config) URLString() string {
	if conf.URL != "" {
		return conf.URL
	}
	conf = conf.withDefaults()
	u := url.URL{
		Scheme:   "postgres",
		Host:     conf.Host + ":" + conf.Port,
		Path:     "/" + conf.DBName,
		RawQuery: url.Values{"sslmode": []string{conf.SSLMode}}.Encode(),
	}
	switch {
	case conf.User != "" && conf.Password != "":
		u.User = url.UserPassword(conf.User, conf.Password)
	case conf.User != "":
		u.User = url.User(conf.User)
	}
	return u.String()
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	level := DefaultLogLevel
	if conf.Debug {
		level = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With("package", "postgres")),
		LogLevel: level,
	}
}
