package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/source"
	"github.com/holiman/uint256"
)

// OnchainReader reads the marketplace contract views. *contract.Caller implements it.
type OnchainReader interface {
	GetListing(ctx context.Context, key entity.ListingKey) (contract.OnchainListing, error)
	GetProceeds(ctx context.Context, seller common.Address) (*uint256.Int, error)
}

var _ OnchainReader = (*contract.Caller)(nil)

type Usecase struct {
	source  source.ListingSource
	dg      datagateway.MarketplaceDataGateway
	onchain OnchainReader
}

func New(src source.ListingSource, dg datagateway.MarketplaceDataGateway, onchain OnchainReader) *Usecase {
	return &Usecase{
		source:  src,
		dg:      dg,
		onchain: onchain,
	}
}

func (u *Usecase) SourceName() string {
	return u.source.Name()
}
