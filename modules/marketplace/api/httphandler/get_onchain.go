package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getOnchainListingResult struct {
	NftAddress string `json:"nftAddress"`
	TokenID    string `json:"tokenId"`
	Listed     bool   `json:"listed"`
	Seller     string `json:"seller"`
	Price      amount `json:"price"`
}

type getOnchainListingResponse = gazecommon.HttpResponse[getOnchainListingResult]

func (h *HttpHandler) GetOnchainListing(ctx *fiber.Ctx) (err error) {
	key, err := parseListingKeyRequest(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.usecase.GetOnchainListing(ctx.UserContext(), key)
	if err != nil {
		return errors.Wrap(err, "error during GetOnchainListing")
	}

	return errors.WithStack(ctx.JSON(getOnchainListingResponse{
		Result: &getOnchainListingResult{
			NftAddress: addressString(key.NftAddress),
			TokenID:    key.TokenID.Dec(),
			Listed:     listing.IsListed(),
			Seller:     addressString(listing.Seller),
			Price:      newAmount(&listing.Price),
		},
	}))
}

type getProceedsRequest struct {
	Seller string `params:"seller"`
}

func (r *getProceedsRequest) Validate() error {
	_, err := parseAddress(r.Seller)
	return errs.WithPublicMessage(err, "validation error")
}

type getProceedsResult struct {
	Seller   string `json:"seller"`
	Proceeds amount `json:"proceeds"`
}

type getProceedsResponse = gazecommon.HttpResponse[getProceedsResult]

func (h *HttpHandler) GetProceeds(ctx *fiber.Ctx) (err error) {
	var req getProceedsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	seller := common.HexToAddress(req.Seller)
	proceeds, err := h.usecase.GetProceeds(ctx.UserContext(), seller)
	if err != nil {
		return errors.Wrap(err, "error during GetProceeds")
	}

	return errors.WithStack(ctx.JSON(getProceedsResponse{
		Result: &getProceedsResult{
			Seller:   addressString(seller),
			Proceeds: newAmount(proceeds),
		},
	}))
}
