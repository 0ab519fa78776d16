package datagateway

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

type MarketplaceDataGateway interface {
	ListingDataGateway
	EventDataGateway
	IndexedBlockDataGateway
	RebuildDataGateway
	IndexerInfoDataGateway

	BeginMarketplaceTx(ctx context.Context) (MarketplaceDataGatewayWithTx, error)
}

type MarketplaceDataGatewayWithTx interface {
	MarketplaceDataGateway
	Tx
}

// ListingDataGateway stores the materialized listing records.
type ListingDataGateway interface {
	// GetListing returns errs.NotFound if the key has no record.
	GetListing(ctx context.Context, key entity.ListingKey) (*entity.Listing, error)

	// SaveListing writes listing only if the stored record was last applied at expected
	// (no stored record if expected is nil) and listing.LastApplied is after it.
	// Otherwise nothing is written and errs.Conflict is returned.
	SaveListing(ctx context.Context, listing *entity.Listing, expected *entity.OrderKey) error

	// PutListing writes listing unconditionally. Used when rebuilding records from history.
	PutListing(ctx context.Context, listing *entity.Listing) error
	DeleteListing(ctx context.Context, key entity.ListingKey) error

	// GetActiveListings returns active listings with a nonzero price, most recently listed first.
	GetActiveListings(ctx context.Context) ([]entity.ActiveListing, error)
	GetActiveListingsBySeller(ctx context.Context, seller common.Address) ([]entity.ActiveListing, error)

	// GetListingSnapshot reads the active listings, the latest indexed block and the skipped
	// block ranges at one point in time. Returns errs.NotFound if no block has been indexed yet.
	GetListingSnapshot(ctx context.Context) (*entity.ListingSnapshot, error)
}

// EventDataGateway stores the event history. Events are identified by transaction hash and log index.
type EventDataGateway interface {
	// CreateEvent is a no-op if the event is already stored.
	CreateEvent(ctx context.Context, event entity.ListingEvent) error

	// GetEventsByKey returns the events of a listing in canonical order.
	GetEventsByKey(ctx context.Context, key entity.ListingKey) ([]entity.ListingEvent, error)

	// GetEventsByBlockRange returns the events in [from, to] in canonical order.
	GetEventsByBlockRange(ctx context.Context, from, to uint64) ([]entity.ListingEvent, error)
	GetKeysWithEventsSinceHeight(ctx context.Context, from uint64) ([]entity.ListingKey, error)
	DeleteEventsInBlockRange(ctx context.Context, from, to uint64) error
	DeleteEventsSinceHeight(ctx context.Context, from uint64) error
}

type IndexedBlockDataGateway interface {
	// GetLatestIndexedBlock returns errs.NotFound if nothing has been indexed.
	GetLatestIndexedBlock(ctx context.Context) (entity.IndexedBlock, error)

	// GetIndexedBlockAtOrBelow returns the highest indexed block not above height,
	// errs.NotFound if there is none.
	GetIndexedBlockAtOrBelow(ctx context.Context, height uint64) (entity.IndexedBlock, error)
	CreateIndexedBlock(ctx context.Context, block entity.IndexedBlock) error
	DeleteIndexedBlocksSinceHeight(ctx context.Context, from uint64) error

	// CreateSkippedRange records a block range whose logs the node refused to return.
	CreateSkippedRange(ctx context.Context, r types.BlockRange) error

	// GetSkippedRanges returns the recorded skipped ranges in ascending order.
	GetSkippedRanges(ctx context.Context) ([]types.BlockRange, error)

	// DeleteSkippedRangesSinceHeight deletes the skipped ranges starting at or above from.
	DeleteSkippedRangesSinceHeight(ctx context.Context, from uint64) error
}

// RebuildDataGateway queues listings whose records must be recomputed from their event history.
// A key stays queued until it is removed, so a rebuild interrupted by a crash can be resumed.
type RebuildDataGateway interface {
	AddPendingRebuilds(ctx context.Context, keys []entity.ListingKey) error
	GetPendingRebuilds(ctx context.Context) ([]entity.ListingKey, error)
	RemovePendingRebuilds(ctx context.Context, keys []entity.ListingKey) error
}
