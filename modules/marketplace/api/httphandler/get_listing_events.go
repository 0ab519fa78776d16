package httphandler

import (
	"github.com/cockroachdb/errors"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type listingEvent struct {
	Kind        string `json:"kind"`
	Account     string `json:"account"`
	Price       amount `json:"price"`
	BlockNumber uint64 `json:"blockNumber"`
	LogIndex    uint   `json:"logIndex"`
	BlockHash   string `json:"blockHash"`
	TxHash      string `json:"txHash"`
	Timestamp   int64  `json:"timestamp,omitempty"`
}

type getListingEventsResult struct {
	List []listingEvent `json:"list"`
}

type getListingEventsResponse = gazecommon.HttpResponse[getListingEventsResult]

func (h *HttpHandler) GetListingEvents(ctx *fiber.Ctx) (err error) {
	key, err := parseListingKeyRequest(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	events, err := h.usecase.GetListingEvents(ctx.UserContext(), key)
	if err != nil {
		return errors.Wrap(err, "error during GetListingEvents")
	}

	list := lo.Map(events, func(ev entity.ListingEvent, _ int) listingEvent {
		result := listingEvent{
			Kind:        ev.Kind.String(),
			Account:     addressString(ev.Account),
			Price:       newAmount(&ev.Price),
			BlockNumber: ev.BlockNumber,
			LogIndex:    ev.LogIndex,
			BlockHash:   ev.BlockHash.Hex(),
			TxHash:      ev.TxHash.Hex(),
		}
		if !ev.Timestamp.IsZero() {
			result.Timestamp = ev.Timestamp.Unix()
		}
		return result
	})

	return errors.WithStack(ctx.JSON(getListingEventsResponse{
		Result: &getListingEventsResult{List: list},
	}))
}
