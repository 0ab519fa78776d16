package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getActiveListingsBySellerRequest struct {
	paginationRequest
	Address string `params:"address"`
}

func (r *getActiveListingsBySellerRequest) Validate() error {
	var errList []error
	if _, err := parseAddress(r.Address); err != nil {
		errList = append(errList, err)
	}
	if err := r.paginationRequest.Validate(); err != nil {
		errList = append(errList, err)
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (h *HttpHandler) GetActiveListingsBySeller(ctx *fiber.Ctx) (err error) {
	var req getActiveListingsBySellerRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	req.ParseDefault()

	snapshot, err := h.usecase.GetActiveListingsBySeller(ctx.UserContext(), common.HexToAddress(req.Address))
	if err != nil {
		return errors.Wrap(err, "error during GetActiveListingsBySeller")
	}

	resp := getActiveListingsResponse{
		Result: newListingSnapshotResult(snapshot, req.paginationRequest),
	}
	return errors.WithStack(ctx.JSON(resp))
}
