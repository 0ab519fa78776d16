package contract

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
)

// DecodeListingEvent decodes a marketplace log. Logs that are not marketplace events or that
// don't match the event layout return an error marked errs.MalformedEvent.
func DecodeListingEvent(log ethtypes.Log) (entity.ListingEvent, error) {
	if len(log.Topics) == 0 {
		return entity.ListingEvent{}, errors.Wrap(errs.MalformedEvent, "log has no topics")
	}
	kind, ok := KindOf(log.Topics[0])
	if !ok {
		return entity.ListingEvent{}, errors.Wrapf(errs.MalformedEvent, "unknown event topic %s", log.Topics[0])
	}
	event := marketplaceABI.Events[eventNames[kind]]

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if len(log.Topics) != len(indexed)+1 {
		return entity.ListingEvent{}, errors.Wrapf(errs.MalformedEvent, "%s: expected %d topics, got %d", event.Name, len(indexed)+1, len(log.Topics))
	}

	fields := make(map[string]interface{}, len(event.Inputs))
	if err := abi.ParseTopicsIntoMap(fields, indexed, log.Topics[1:]); err != nil {
		return entity.ListingEvent{}, errors.Mark(errors.Wrapf(err, "%s: can't parse topics", event.Name), errs.MalformedEvent)
	}
	if len(event.Inputs.NonIndexed()) > 0 {
		if err := event.Inputs.UnpackIntoMap(fields, log.Data); err != nil {
			return entity.ListingEvent{}, errors.Mark(errors.Wrapf(err, "%s: can't unpack data", event.Name), errs.MalformedEvent)
		}
	}

	accountField := "seller"
	if kind == entity.EventKindBought {
		accountField = "buyer"
	}
	account, ok := fields[accountField].(common.Address)
	if !ok {
		return entity.ListingEvent{}, errors.Wrapf(errs.MalformedEvent, "%s: missing %s", event.Name, accountField)
	}
	nftAddress, ok := fields["nftAddress"].(common.Address)
	if !ok {
		return entity.ListingEvent{}, errors.Wrapf(errs.MalformedEvent, "%s: missing nftAddress", event.Name)
	}
	tokenID, err := toUint256(fields["tokenId"])
	if err != nil {
		return entity.ListingEvent{}, errors.Wrapf(err, "%s: tokenId", event.Name)
	}

	ev := entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(nftAddress, tokenID),
		Account:     account,
		BlockNumber: log.BlockNumber,
		LogIndex:    log.Index,
		BlockHash:   log.BlockHash,
		TxHash:      log.TxHash,
	}
	if kind != entity.EventKindCanceled {
		price, err := toUint256(fields["price"])
		if err != nil {
			return entity.ListingEvent{}, errors.Wrapf(err, "%s: price", event.Name)
		}
		ev.Price = *price
	}
	return ev, nil
}

func toUint256(v interface{}) (*uint256.Int, error) {
	b, ok := v.(*big.Int)
	if !ok || b == nil {
		return nil, errors.Wrap(errs.MalformedEvent, "missing uint256 value")
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Wrap(errs.MalformedEvent, "uint256 overflow")
	}
	return u, nil
}
