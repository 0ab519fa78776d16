package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/samber/lo"
)

// GetActiveListings returns errs.NotInitialized until the listing source has completed a first read.
// A snapshot built from a partial read is returned with Incomplete set.
func (u *Usecase) GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error) {
	snapshot, err := u.source.GetActiveListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active listings")
	}
	return snapshot, nil
}

// GetActiveListingsBySeller is GetActiveListings restricted to one seller.
func (u *Usecase) GetActiveListingsBySeller(ctx context.Context, seller common.Address) (*entity.ListingSnapshot, error) {
	snapshot, err := u.GetActiveListings(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	filtered := *snapshot
	filtered.Listings = lo.Filter(snapshot.Listings, func(l entity.ActiveListing, _ int) bool {
		return l.Seller == seller
	})
	return &filtered, nil
}

// GetListing returns the materialized record of a key, active or not.
func (u *Usecase) GetListing(ctx context.Context, key entity.ListingKey) (*entity.Listing, error) {
	l, err := u.dg.GetListing(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}
	return l, nil
}

func (u *Usecase) GetListingEvents(ctx context.Context, key entity.ListingKey) ([]entity.ListingEvent, error) {
	events, err := u.dg.GetEventsByKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing events")
	}
	return events, nil
}

func (u *Usecase) GetLatestBlock(ctx context.Context) (entity.IndexedBlock, error) {
	block, err := u.dg.GetLatestIndexedBlock(ctx)
	if err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "failed to get latest indexed block")
	}
	return block, nil
}
