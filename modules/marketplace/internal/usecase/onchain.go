package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
)

func (u *Usecase) GetOnchainListing(ctx context.Context, key entity.ListingKey) (contract.OnchainListing, error) {
	l, err := u.onchain.GetListing(ctx, key)
	if err != nil {
		return contract.OnchainListing{}, errors.Wrap(err, "failed to read listing from contract")
	}
	return l, nil
}

func (u *Usecase) GetProceeds(ctx context.Context, seller common.Address) (*uint256.Int, error) {
	proceeds, err := u.onchain.GetProceeds(ctx, seller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read proceeds from contract")
	}
	return proceeds, nil
}
