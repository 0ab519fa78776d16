package httphandler

import (
	"github.com/cockroachdb/errors"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gofiber/fiber/v2"
)

// listingKeyRequest is shared by every route keyed by /:nftAddress/:tokenId.
type listingKeyRequest struct {
	NftAddress string `params:"nftAddress"`
	TokenID    string `params:"tokenId"`
}

func (r *listingKeyRequest) Validate() error {
	_, errList := parseListingKey(r.NftAddress, r.TokenID)
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

// Key must only be called after Validate succeeded.
func (r *listingKeyRequest) Key() entity.ListingKey {
	key, _ := parseListingKey(r.NftAddress, r.TokenID)
	return key
}

func parseListingKeyRequest(ctx *fiber.Ctx) (entity.ListingKey, error) {
	var req listingKeyRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return entity.ListingKey{}, errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return entity.ListingKey{}, errors.WithStack(err)
	}
	return req.Key(), nil
}

type getListingResult struct {
	NftAddress  string  `json:"nftAddress"`
	TokenID     string  `json:"tokenId"`
	Seller      string  `json:"seller"`
	Price       amount  `json:"price"`
	Active      bool    `json:"active"`
	Buyer       *string `json:"buyer,omitempty"`
	ListedAt    uint64  `json:"listedAtBlock"`
	LastApplied uint64  `json:"lastAppliedBlock"`
	TxHash      string  `json:"txHash"`
}

type getListingResponse = gazecommon.HttpResponse[getListingResult]

func (h *HttpHandler) GetListing(ctx *fiber.Ctx) (err error) {
	key, err := parseListingKeyRequest(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.usecase.GetListing(ctx.UserContext(), key)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.WithStack(fiber.NewError(fiber.StatusNotFound, "listing not found"))
		}
		return errors.Wrap(err, "error during GetListing")
	}

	result := getListingResult{
		NftAddress:  addressString(listing.Key.NftAddress),
		TokenID:     listing.Key.TokenID.Dec(),
		Seller:      addressString(listing.Seller),
		Price:       newAmount(&listing.Price),
		Active:      listing.Active,
		ListedAt:    listing.ListedAtBlock,
		LastApplied: listing.LastApplied.BlockNumber,
		TxHash:      listing.TxHash.Hex(),
	}
	if listing.Buyer != nil {
		buyer := addressString(*listing.Buyer)
		result.Buyer = &buyer
	}

	return errors.WithStack(ctx.JSON(getListingResponse{Result: &result}))
}
