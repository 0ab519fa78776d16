package contract

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

// EncodeListingEvent builds the log a marketplace contract at address would emit for ev.
// It is the inverse of DecodeListingEvent and is used to feed fake nodes.
func EncodeListingEvent(address common.Address, ev entity.ListingEvent) ethtypes.Log {
	log := ethtypes.Log{
		Address: address,
		Topics: []common.Hash{
			Topic(ev.Kind),
			common.BytesToHash(ev.Account.Bytes()),
			common.BytesToHash(ev.Key.NftAddress.Bytes()),
			common.Hash(ev.Key.TokenID.Bytes32()),
		},
		BlockNumber: ev.BlockNumber,
		Index:       ev.LogIndex,
		BlockHash:   ev.BlockHash,
		TxHash:      ev.TxHash,
	}
	if ev.Kind != entity.EventKindCanceled {
		data, err := marketplaceABI.Events[eventNames[ev.Kind]].Inputs.NonIndexed().Pack(ev.Price.ToBig())
		if err != nil {
			panic(err)
		}
		log.Data = data
	}
	return log
}
