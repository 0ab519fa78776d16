package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
)

func (r *Repository) CreateEvent(ctx context.Context, event entity.ListingEvent) error {
	if err := r.queries.CreateEvent(ctx, mapEventTypeToParams(event)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetEventsByKey(ctx context.Context, key entity.ListingKey) ([]entity.ListingEvent, error) {
	models, err := r.queries.GetEventsByKey(ctx, gen.GetEventsByKeyParams{
		NftAddress: addressString(key.NftAddress),
		TokenID:    numericFromUint256(&key.TokenID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapEvents(models)
}

func (r *Repository) GetEventsByBlockRange(ctx context.Context, from, to uint64) ([]entity.ListingEvent, error) {
	models, err := r.queries.GetEventsByBlockRange(ctx, gen.GetEventsByBlockRangeParams{
		FromBlock: int64(from),
		ToBlock:   int64(to),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapEvents(models)
}

func (r *Repository) GetKeysWithEventsSinceHeight(ctx context.Context, from uint64) ([]entity.ListingKey, error) {
	rows, err := r.queries.GetKeysWithEventsSinceHeight(ctx, int64(from))
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	keys := make([]entity.ListingKey, 0, len(rows))
	for _, row := range rows {
		key, err := mapListingKeyModelToType(row.NftAddress, row.TokenID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *Repository) DeleteEventsInBlockRange(ctx context.Context, from, to uint64) error {
	if err := r.queries.DeleteEventsInBlockRange(ctx, gen.DeleteEventsInBlockRangeParams{
		FromBlock: int64(from),
		ToBlock:   int64(to),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteEventsSinceHeight(ctx context.Context, from uint64) error {
	if err := r.queries.DeleteEventsSinceHeight(ctx, int64(from)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func mapEvents(models []gen.MarketplaceEvent) ([]entity.ListingEvent, error) {
	events := make([]entity.ListingEvent, 0, len(models))
	for _, model := range models {
		event, err := mapEventModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse event model")
		}
		events = append(events, event)
	}
	return events, nil
}
