package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) GetListing(ctx context.Context, key entity.ListingKey) (*entity.Listing, error) {
	model, err := r.queries.GetListing(ctx, gen.GetListingParams{
		NftAddress: addressString(key.NftAddress),
		TokenID:    numericFromUint256(&key.TokenID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	listing, err := mapListingModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse listing model")
	}
	return listing, nil
}

func (r *Repository) SaveListing(ctx context.Context, l *entity.Listing, expected *entity.OrderKey) error {
	params := mapListingTypeToParams(l)
	if expected == nil {
		affected, err := r.queries.InsertListingIfAbsent(ctx, gen.InsertListingIfAbsentParams(params))
		if err != nil {
			return errors.Wrap(err, "error during exec")
		}
		if affected == 0 {
			return errors.Wrapf(errs.Conflict, "listing %s already exists", l.Key)
		}
		return nil
	}
	if !expected.Less(l.LastApplied) {
		return errors.Wrapf(errs.Conflict, "listing %s is already at %v", l.Key, *expected)
	}
	affected, err := r.queries.UpdateListingIfLastApplied(ctx, gen.UpdateListingIfLastAppliedParams{
		Seller:              params.Seller,
		Price:               params.Price,
		Active:              params.Active,
		Buyer:               params.Buyer,
		ListedAtBlock:       params.ListedAtBlock,
		ListedAtLogIndex:    params.ListedAtLogIndex,
		LastAppliedBlock:    params.LastAppliedBlock,
		LastAppliedLogIndex: params.LastAppliedLogIndex,
		TxHash:              params.TxHash,
		BlockTimestamp:      params.BlockTimestamp,
		NftAddress:          params.NftAddress,
		TokenID:             params.TokenID,
		ExpectedBlock:       int64(expected.BlockNumber),
		ExpectedLogIndex:    int32(expected.LogIndex),
	})
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.Conflict, "listing %s was modified", l.Key)
	}
	return nil
}

func (r *Repository) PutListing(ctx context.Context, l *entity.Listing) error {
	if err := r.queries.UpsertListing(ctx, mapListingTypeToParams(l)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteListing(ctx context.Context, key entity.ListingKey) error {
	if err := r.queries.DeleteListing(ctx, gen.DeleteListingParams{
		NftAddress: addressString(key.NftAddress),
		TokenID:    numericFromUint256(&key.TokenID),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetActiveListings(ctx context.Context) ([]entity.ActiveListing, error) {
	models, err := r.queries.GetActiveListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapActiveListings(models)
}

func (r *Repository) GetActiveListingsBySeller(ctx context.Context, seller common.Address) ([]entity.ActiveListing, error) {
	models, err := r.queries.GetActiveListingsBySeller(ctx, addressString(seller))
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapActiveListings(models)
}

// GetListingSnapshot reads in a repeatable read transaction unless the repository already is in one.
func (r *Repository) GetListingSnapshot(ctx context.Context) (_ *entity.ListingSnapshot, err error) {
	repo := r
	if r.tx == nil {
		repo, err = r.begin(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer func() {
			if rollbackErr := repo.Rollback(ctx); rollbackErr != nil && err == nil {
				err = errors.WithStack(rollbackErr)
			}
		}()
	}

	block, err := repo.GetLatestIndexedBlock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "no indexed block")
	}
	listings, err := repo.GetActiveListings(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	skipped, err := repo.GetSkippedRanges(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &entity.ListingSnapshot{
		Listings:     listings,
		AsOfBlock:    block.Height,
		Incomplete:   len(skipped) > 0,
		FailedRanges: skipped,
	}, nil
}

func mapActiveListings(models []gen.MarketplaceListing) ([]entity.ActiveListing, error) {
	listings := make([]entity.ActiveListing, 0, len(models))
	for _, model := range models {
		l, err := mapListingModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse listing model")
		}
		if active, ok := l.ActiveListing(); ok {
			listings = append(listings, active)
		}
	}
	return listings, nil
}
