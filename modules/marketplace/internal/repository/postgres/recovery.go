package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
)

func (r *Repository) CreateSkippedRange(ctx context.Context, br types.BlockRange) error {
	if err := r.queries.CreateSkippedRange(ctx, gen.CreateSkippedRangeParams{
		FromBlock: int64(br.From),
		ToBlock:   int64(br.To),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetSkippedRanges(ctx context.Context) ([]types.BlockRange, error) {
	models, err := r.queries.GetSkippedRanges(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	ranges := make([]types.BlockRange, 0, len(models))
	for _, model := range models {
		ranges = append(ranges, mapSkippedRangeModelToType(model))
	}
	return ranges, nil
}

func (r *Repository) DeleteSkippedRangesSinceHeight(ctx context.Context, from uint64) error {
	if err := r.queries.DeleteSkippedRangesSinceHeight(ctx, int64(from)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) AddPendingRebuilds(ctx context.Context, keys []entity.ListingKey) error {
	for _, key := range keys {
		if err := r.queries.AddPendingRebuild(ctx, gen.AddPendingRebuildParams{
			NftAddress: addressString(key.NftAddress),
			TokenID:    numericFromUint256(&key.TokenID),
		}); err != nil {
			return errors.Wrapf(err, "error during exec, key: %s", key)
		}
	}
	return nil
}

func (r *Repository) GetPendingRebuilds(ctx context.Context) ([]entity.ListingKey, error) {
	models, err := r.queries.GetPendingRebuilds(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	keys := make([]entity.ListingKey, 0, len(models))
	for _, model := range models {
		key, err := mapListingKeyModelToType(model.NftAddress, model.TokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *Repository) RemovePendingRebuilds(ctx context.Context, keys []entity.ListingKey) error {
	for _, key := range keys {
		if err := r.queries.RemovePendingRebuild(ctx, gen.RemovePendingRebuildParams{
			NftAddress: addressString(key.NftAddress),
			TokenID:    numericFromUint256(&key.TokenID),
		}); err != nil {
			return errors.Wrapf(err, "error during exec, key: %s", key)
		}
	}
	return nil
}
