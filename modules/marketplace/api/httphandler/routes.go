package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/marketplace")

	r.Get("/listings", h.GetActiveListings)
	r.Get("/listings/seller/:address", h.GetActiveListingsBySeller)
	r.Get("/listings/:nftAddress/:tokenId", h.GetListing)
	r.Get("/listings/:nftAddress/:tokenId/events", h.GetListingEvents)
	r.Get("/listings/:nftAddress/:tokenId/onchain", h.GetOnchainListing)
	r.Get("/proceeds/:seller", h.GetProceeds)
	r.Get("/block", h.GetCurrentBlock)
	return nil
}
