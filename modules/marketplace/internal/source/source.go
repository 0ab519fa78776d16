package source

import (
	"context"

	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

// ListingSource answers the active listing query.
type ListingSource interface {
	Name() string

	// GetActiveListings returns errs.NotInitialized until the source has completed a first read.
	GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error)
}
