// Package redis stores the marketplace state in Redis.
//
// Listings are hashes guarded by WATCH for the compare-and-set in SaveListing. Redis has no
// multi-command rollback, so BeginMarketplaceTx returns a repository whose Commit and Rollback
// are no-ops. A batch interrupted halfway is repaired by reprocessing it: events are stored
// idempotently and listings only move forward in order key. Listings that must be rebuilt after
// their events are deleted are queued in a set first, and the queue is drained on startup.
//
// GetListingSnapshot runs as a Lua script that reads listing hashes by computed name, so the
// repository needs a single node rather than a cluster.
package redis

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/go-redis/redis/v8"
)

var _ datagateway.MarketplaceDataGatewayWithTx = (*Repository)(nil)

type Repository struct {
	client redis.UniversalClient
	prefix string
}

func NewRepository(client redis.UniversalClient, prefix string) *Repository {
	return &Repository{
		client: client,
		prefix: prefix,
	}
}

func (r *Repository) key(parts ...string) string {
	return r.prefix + ":" + strings.Join(parts, ":")
}

func (r *Repository) BeginMarketplaceTx(ctx context.Context) (datagateway.MarketplaceDataGatewayWithTx, error) {
	return r, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return errors.Wrap(r.client.Ping(ctx).Err(), "failed to ping redis")
}
