package httphandler

import (
	"github.com/cockroachdb/errors"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gofiber/fiber/v2"
)

type getCurrentBlockResult struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
	Source string `json:"source"`
}

type getCurrentBlockResponse = gazecommon.HttpResponse[getCurrentBlockResult]

func (h *HttpHandler) GetCurrentBlock(ctx *fiber.Ctx) (err error) {
	block, err := h.usecase.GetLatestBlock(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetLatestBlock")
	}

	resp := getCurrentBlockResponse{
		Result: &getCurrentBlockResult{
			Hash:   block.Hash.Hex(),
			Height: block.Height,
			Source: h.usecase.SourceName(),
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
