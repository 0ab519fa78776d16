package httphandler

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/usecase"
	"github.com/gaze-network/marketplace-indexer/pkg/ethunits"
	"github.com/holiman/uint256"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network gazecommon.Network
}

func New(network gazecommon.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("'%s' is not a valid address", s)
	}
	return common.HexToAddress(s), nil
}

func parseListingKey(nftAddress, tokenID string) (entity.ListingKey, []error) {
	var errList []error
	address, err := parseAddress(nftAddress)
	if err != nil {
		errList = append(errList, err)
	}
	id, err := uint256.FromDecimal(tokenID)
	if err != nil {
		errList = append(errList, errors.Errorf("'%s' is not a valid token id", tokenID))
	}
	if len(errList) > 0 {
		return entity.ListingKey{}, errList
	}
	return entity.NewListingKey(address, id), nil
}

func addressString(a common.Address) string {
	return strings.ToLower(a.Hex())
}

type amount struct {
	Wei   string `json:"wei"`
	Ether string `json:"ether"`
}

func newAmount(wei *uint256.Int) amount {
	return amount{
		Wei:   wei.Dec(),
		Ether: ethunits.FromWei(wei),
	}
}
