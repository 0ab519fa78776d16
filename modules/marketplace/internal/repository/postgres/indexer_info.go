package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error) {
	model, err := r.queries.GetLatestIndexerState(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.IndexerState{}, errors.WithStack(errs.NotFound)
		}
		return entity.IndexerState{}, errors.Wrap(err, "error during query")
	}
	return mapIndexerStateModelToType(model), nil
}

func (r *Repository) CreateIndexerState(ctx context.Context, state entity.IndexerState) error {
	if err := r.queries.CreateIndexerState(ctx, mapIndexerStateTypeToParams(state)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetLatestIndexedBlock(ctx context.Context) (entity.IndexedBlock, error) {
	model, err := r.queries.GetLatestIndexedBlock(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.IndexedBlock{}, errors.WithStack(errs.NotFound)
		}
		return entity.IndexedBlock{}, errors.Wrap(err, "error during query")
	}
	return mapIndexedBlockModelToType(model), nil
}

func (r *Repository) GetIndexedBlockAtOrBelow(ctx context.Context, height uint64) (entity.IndexedBlock, error) {
	model, err := r.queries.GetIndexedBlockAtOrBelow(ctx, int64(height))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.IndexedBlock{}, errors.WithStack(errs.NotFound)
		}
		return entity.IndexedBlock{}, errors.Wrap(err, "error during query")
	}
	return mapIndexedBlockModelToType(model), nil
}

func (r *Repository) CreateIndexedBlock(ctx context.Context, block entity.IndexedBlock) error {
	if err := r.queries.CreateIndexedBlock(ctx, gen.CreateIndexedBlockParams{
		Height:   int64(block.Height),
		Hash:     block.Hash.Hex(),
		PrevHash: block.PrevHash.Hex(),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteIndexedBlocksSinceHeight(ctx context.Context, from uint64) error {
	if err := r.queries.DeleteIndexedBlocksSinceHeight(ctx, int64(from)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
