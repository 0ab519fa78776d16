package archive

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
)

// eventRecord is one row of an archive file.
type eventRecord struct {
	Kind           string `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8"`
	NftAddress     string `parquet:"name=nft_address, type=BYTE_ARRAY, convertedtype=UTF8"`
	TokenID        string `parquet:"name=token_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Account        string `parquet:"name=account, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price          string `parquet:"name=price, type=BYTE_ARRAY, convertedtype=UTF8"`
	BlockNumber    int64  `parquet:"name=block_number, type=INT64"`
	LogIndex       int64  `parquet:"name=log_index, type=INT64"`
	BlockHash      string `parquet:"name=block_hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	TxHash         string `parquet:"name=tx_hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	BlockTimestamp int64  `parquet:"name=block_timestamp, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

func toRecord(ev entity.ListingEvent) eventRecord {
	var ts int64
	if !ev.Timestamp.IsZero() {
		ts = ev.Timestamp.UnixMilli()
	}
	return eventRecord{
		Kind:           ev.Kind.String(),
		NftAddress:     ev.Key.NftAddress.Hex(),
		TokenID:        ev.Key.TokenID.Dec(),
		Account:        ev.Account.Hex(),
		Price:          ev.Price.Dec(),
		BlockNumber:    int64(ev.BlockNumber),
		LogIndex:       int64(ev.LogIndex),
		BlockHash:      ev.BlockHash.Hex(),
		TxHash:         ev.TxHash.Hex(),
		BlockTimestamp: ts,
	}
}

func fromRecord(r eventRecord) (entity.ListingEvent, error) {
	kind, err := entity.ParseEventKind(r.Kind)
	if err != nil {
		return entity.ListingEvent{}, errors.WithStack(err)
	}
	for _, addr := range []string{r.NftAddress, r.Account} {
		if !common.IsHexAddress(addr) {
			return entity.ListingEvent{}, errors.Wrapf(errs.InvalidArgument, "invalid address %q", addr)
		}
	}
	tokenID, err := uint256.FromDecimal(r.TokenID)
	if err != nil {
		return entity.ListingEvent{}, errors.Wrapf(errs.InvalidArgument, "invalid token id %q", r.TokenID)
	}
	price, err := uint256.FromDecimal(r.Price)
	if err != nil {
		return entity.ListingEvent{}, errors.Wrapf(errs.InvalidArgument, "invalid price %q", r.Price)
	}
	if r.BlockNumber < 0 || r.LogIndex < 0 {
		return entity.ListingEvent{}, errors.Wrapf(errs.InvalidArgument, "invalid position %d:%d", r.BlockNumber, r.LogIndex)
	}

	var ts time.Time
	if r.BlockTimestamp != 0 {
		ts = time.UnixMilli(r.BlockTimestamp).UTC()
	}
	return entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(common.HexToAddress(r.NftAddress), tokenID),
		Account:     common.HexToAddress(r.Account),
		Price:       *price,
		BlockNumber: uint64(r.BlockNumber),
		LogIndex:    uint(r.LogIndex),
		BlockHash:   common.HexToHash(r.BlockHash),
		TxHash:      common.HexToHash(r.TxHash),
		Timestamp:   ts,
	}, nil
}
