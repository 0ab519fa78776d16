package marketplace

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/internal/postgres"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/memory"
	marketplacepostgres "github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres"
	marketplaceredis "github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/redis"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/go-redis/redis/v8"
)

// newDataGateway opens the configured store. The returned funcs release its connections.
func newDataGateway(ctx context.Context, conf config.Config) (datagateway.MarketplaceDataGateway, []func(context.Context) error, error) {
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(conf.Database) {
	case config.DatabaseMemory:
		logger.WarnContext(ctx, "Using in-memory database, indexed data is lost on restart")
		return memory.New(), nil, nil
	case config.DatabasePostgres, "postgresql", "pg":
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, nil, errors.Wrap(err, "Invalid Postgres configuration for indexer")
			}
			return nil, nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		return marketplacepostgres.NewRepository(pg), cleanupFuncs, nil
	case config.DatabaseRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		repo := marketplaceredis.NewRepository(client, conf.Redis.KeyPrefix)
		if err := repo.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, errors.Wrapf(err, "can't connect to Redis %q", conf.Redis.Addr)
		}
		logger.InfoContext(ctx, "Connected to Redis", slogx.String("addr", conf.Redis.Addr))
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		})
		return repo, cleanupFuncs, nil
	default:
		return nil, nil, errors.Wrapf(errs.Unsupported, "%q database for indexer is not supported", conf.Database)
	}
}
