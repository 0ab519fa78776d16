package contract

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
)

// OnchainListing is the listing as stored by the contract. A zero Seller means not listed.
type OnchainListing struct {
	Price  uint256.Int
	Seller common.Address
}

func (l OnchainListing) IsListed() bool {
	return l.Seller != (common.Address{})
}

// Caller reads the marketplace view functions through eth_call.
type Caller struct {
	contract *bind.BoundContract
}

func NewCaller(address common.Address, backend bind.ContractCaller) *Caller {
	return &Caller{
		contract: bind.NewBoundContract(address, marketplaceABI, backend, nil, nil),
	}
}

func (c *Caller) GetListing(ctx context.Context, key entity.ListingKey) (OnchainListing, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getListing", key.NftAddress, key.TokenID.ToBig()); err != nil {
		return OnchainListing{}, errors.Wrap(err, "failed to call getListing")
	}
	if len(out) != 2 {
		return OnchainListing{}, errors.Newf("getListing: unexpected %d outputs", len(out))
	}
	price, err := toUint256(*abiConvert[*big.Int](out[0]))
	if err != nil {
		return OnchainListing{}, errors.Wrap(err, "getListing: price")
	}
	seller := *abiConvert[common.Address](out[1])
	return OnchainListing{Price: *price, Seller: seller}, nil
}

func (c *Caller) GetProceeds(ctx context.Context, seller common.Address) (*uint256.Int, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getProceeds", seller); err != nil {
		return nil, errors.Wrap(err, "failed to call getProceeds")
	}
	if len(out) != 1 {
		return nil, errors.Newf("getProceeds: unexpected %d outputs", len(out))
	}
	proceeds, err := toUint256(*abiConvert[*big.Int](out[0]))
	if err != nil {
		return nil, errors.Wrap(err, "getProceeds")
	}
	return proceeds, nil
}

func abiConvert[T any](v interface{}) *T {
	return abi.ConvertType(v, new(T)).(*T)
}
