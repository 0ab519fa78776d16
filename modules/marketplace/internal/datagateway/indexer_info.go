package datagateway

import (
	"context"

	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

type IndexerInfoDataGateway interface {
	// GetLatestIndexerState returns errs.NotFound if the indexer has never run.
	GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error)
	CreateIndexerState(ctx context.Context, state entity.IndexerState) error
}
