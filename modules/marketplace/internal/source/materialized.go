package source

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

const NameMaterialized = "materialized"

var _ ListingSource = (*Materialized)(nil)

// Materialized reads the listing records kept by the materializer.
type Materialized struct {
	dg datagateway.ListingDataGateway
}

func NewMaterialized(dg datagateway.ListingDataGateway) *Materialized {
	return &Materialized{dg: dg}
}

func (m *Materialized) Name() string {
	return NameMaterialized
}

func (m *Materialized) GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error) {
	snapshot, err := m.dg.GetListingSnapshot(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrap(errs.NotInitialized, "no block has been indexed yet")
		}
		return nil, errors.Wrap(err, "failed to read listing snapshot")
	}
	snapshot.Source = NameMaterialized
	return snapshot, nil
}
