package httphandler

import (
	"github.com/cockroachdb/errors"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getActiveListingsRequest struct {
	paginationRequest
}

func (r *getActiveListingsRequest) Validate() error {
	return errs.WithPublicMessage(r.paginationRequest.Validate(), "validation error")
}

type activeListing struct {
	NftAddress       string `json:"nftAddress"`
	TokenID          string `json:"tokenId"`
	Seller           string `json:"seller"`
	Price            amount `json:"price"`
	ListedAtBlock    uint64 `json:"listedAtBlock"`
	ListedAtLogIndex uint   `json:"listedAtLogIndex"`
	TxHash           string `json:"txHash"`
	Timestamp        int64  `json:"timestamp,omitempty"`
}

type failedRange struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

type listingSnapshotResult struct {
	Source       string          `json:"source"`
	AsOfBlock    uint64          `json:"asOfBlock"`
	Incomplete   bool            `json:"incomplete"`
	FailedRanges []failedRange   `json:"failedRanges,omitempty"`
	Total        int             `json:"total"`
	List         []activeListing `json:"list"`
}

type getActiveListingsResponse = gazecommon.HttpResponse[listingSnapshotResult]

func (h *HttpHandler) GetActiveListings(ctx *fiber.Ctx) (err error) {
	var req getActiveListingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	req.ParseDefault()

	snapshot, err := h.usecase.GetActiveListings(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetActiveListings")
	}

	resp := getActiveListingsResponse{
		Result: newListingSnapshotResult(snapshot, req.paginationRequest),
	}
	return errors.WithStack(ctx.JSON(resp))
}

func newListingSnapshotResult(snapshot *entity.ListingSnapshot, page paginationRequest) *listingSnapshotResult {
	listings := paginate(snapshot.Listings, page.Limit, page.Offset)
	return &listingSnapshotResult{
		Source:     snapshot.Source,
		AsOfBlock:  snapshot.AsOfBlock,
		Incomplete: snapshot.Incomplete,
		FailedRanges: lo.Map(snapshot.FailedRanges, func(r types.BlockRange, _ int) failedRange {
			return failedRange{From: r.From, To: r.To}
		}),
		Total: len(snapshot.Listings),
		List:  lo.Map(listings, func(l entity.ActiveListing, _ int) activeListing { return newActiveListing(l) }),
	}
}

func newActiveListing(l entity.ActiveListing) activeListing {
	result := activeListing{
		NftAddress:       addressString(l.Key.NftAddress),
		TokenID:          l.Key.TokenID.Dec(),
		Seller:           addressString(l.Seller),
		Price:            newAmount(&l.Price),
		ListedAtBlock:    l.ListedAtBlock,
		ListedAtLogIndex: l.ListedAtLogIndex,
		TxHash:           l.TxHash.Hex(),
	}
	if !l.Timestamp.IsZero() {
		result.Timestamp = l.Timestamp.Unix()
	}
	return result
}
