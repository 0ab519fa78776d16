package postgres

import (
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgtype"
)

func numericFromUint256(src *uint256.Int) pgtype.Numeric {
	return pgtype.Numeric{Int: src.ToBig(), Exp: 0, Valid: true}
}

// uint256FromNumeric accepts any finite non-negative integral numeric. Postgres may return
// integral values with a positive exponent, e.g. 10000 as 1e4.
func uint256FromNumeric(src pgtype.Numeric) (uint256.Int, error) {
	if !src.Valid || src.NaN || src.InfinityModifier != pgtype.Finite || src.Int == nil {
		return uint256.Int{}, errors.New("numeric is not a finite number")
	}
	value := new(big.Int).Set(src.Int)
	if src.Exp != 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(src.Exp))), nil)
		if src.Exp > 0 {
			value.Mul(value, scale)
		} else {
			var rem big.Int
			value.QuoRem(value, scale, &rem)
			if rem.Sign() != 0 {
				return uint256.Int{}, errors.New("numeric is not an integer")
			}
		}
	}
	if value.Sign() < 0 {
		return uint256.Int{}, errors.New("numeric is negative")
	}
	result, overflow := uint256.FromBig(value)
	if overflow {
		return uint256.Int{}, errors.New("numeric overflows uint256")
	}
	return *result, nil
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func addressString(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

func timestampFromTime(t time.Time) pgtype.Timestamp {
	if t.IsZero() {
		return pgtype.Timestamp{}
	}
	return pgtype.Timestamp{Time: t.UTC(), Valid: true}
}

func timeFromTimestamp(t pgtype.Timestamp) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

func mapListingKeyModelToType(nftAddress string, tokenID pgtype.Numeric) (entity.ListingKey, error) {
	address, err := parseAddress(nftAddress)
	if err != nil {
		return entity.ListingKey{}, errors.Wrap(err, "failed to parse nft address")
	}
	id, err := uint256FromNumeric(tokenID)
	if err != nil {
		return entity.ListingKey{}, errors.Wrap(err, "failed to parse token id")
	}
	return entity.NewListingKey(address, &id), nil
}

func mapListingModelToType(src gen.MarketplaceListing) (*entity.Listing, error) {
	key, err := mapListingKeyModelToType(src.NftAddress, src.TokenID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	seller, err := parseAddress(src.Seller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse seller")
	}
	price, err := uint256FromNumeric(src.Price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse price")
	}
	var buyer *common.Address
	if src.Buyer.Valid {
		b, err := parseAddress(src.Buyer.String)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse buyer")
		}
		buyer = &b
	}
	return &entity.Listing{
		Key:              key,
		Seller:           seller,
		Price:            price,
		Active:           src.Active,
		Buyer:            buyer,
		ListedAtBlock:    uint64(src.ListedAtBlock),
		ListedAtLogIndex: uint(src.ListedAtLogIndex),
		LastApplied: entity.OrderKey{
			BlockNumber: uint64(src.LastAppliedBlock),
			LogIndex:    uint(src.LastAppliedLogIndex),
		},
		TxHash:    common.HexToHash(src.TxHash),
		Timestamp: timeFromTimestamp(src.BlockTimestamp),
	}, nil
}

func mapListingTypeToParams(src *entity.Listing) gen.UpsertListingParams {
	var buyer pgtype.Text
	if src.Buyer != nil {
		buyer = pgtype.Text{String: addressString(*src.Buyer), Valid: true}
	}
	return gen.UpsertListingParams{
		NftAddress:          addressString(src.Key.NftAddress),
		TokenID:             numericFromUint256(&src.Key.TokenID),
		Seller:              addressString(src.Seller),
		Price:               numericFromUint256(&src.Price),
		Active:              src.Active,
		Buyer:               buyer,
		ListedAtBlock:       int64(src.ListedAtBlock),
		ListedAtLogIndex:    int32(src.ListedAtLogIndex),
		LastAppliedBlock:    int64(src.LastApplied.BlockNumber),
		LastAppliedLogIndex: int32(src.LastApplied.LogIndex),
		TxHash:              src.TxHash.Hex(),
		BlockTimestamp:      timestampFromTime(src.Timestamp),
	}
}

func mapEventModelToType(src gen.MarketplaceEvent) (entity.ListingEvent, error) {
	kind, err := entity.ParseEventKind(src.Kind)
	if err != nil {
		return entity.ListingEvent{}, errors.WithStack(err)
	}
	key, err := mapListingKeyModelToType(src.NftAddress, src.TokenID)
	if err != nil {
		return entity.ListingEvent{}, errors.WithStack(err)
	}
	account, err := parseAddress(src.Account)
	if err != nil {
		return entity.ListingEvent{}, errors.Wrap(err, "failed to parse account")
	}
	price, err := uint256FromNumeric(src.Price)
	if err != nil {
		return entity.ListingEvent{}, errors.Wrap(err, "failed to parse price")
	}
	return entity.ListingEvent{
		Kind:        kind,
		Key:         key,
		Account:     account,
		Price:       price,
		BlockNumber: uint64(src.BlockNumber),
		LogIndex:    uint(src.LogIndex),
		BlockHash:   common.HexToHash(src.BlockHash),
		TxHash:      common.HexToHash(src.TxHash),
		Timestamp:   timeFromTimestamp(src.BlockTimestamp),
	}, nil
}

func mapEventTypeToParams(src entity.ListingEvent) gen.CreateEventParams {
	return gen.CreateEventParams{
		TxHash:         src.TxHash.Hex(),
		LogIndex:       int32(src.LogIndex),
		Kind:           src.Kind.String(),
		NftAddress:     addressString(src.Key.NftAddress),
		TokenID:        numericFromUint256(&src.Key.TokenID),
		Account:        addressString(src.Account),
		Price:          numericFromUint256(&src.Price),
		BlockNumber:    int64(src.BlockNumber),
		BlockHash:      src.BlockHash.Hex(),
		BlockTimestamp: timestampFromTime(src.Timestamp),
	}
}

func mapIndexedBlockModelToType(src gen.MarketplaceIndexedBlock) entity.IndexedBlock {
	return entity.IndexedBlock{
		Height:   uint64(src.Height),
		Hash:     common.HexToHash(src.Hash),
		PrevHash: common.HexToHash(src.PrevHash),
	}
}

func mapSkippedRangeModelToType(src gen.MarketplaceSkippedRange) types.BlockRange {
	return types.BlockRange{From: uint64(src.FromBlock), To: uint64(src.ToBlock)}
}

func mapIndexerStateModelToType(src gen.MarketplaceIndexerState) entity.IndexerState {
	return entity.IndexerState{
		ClientVersion:   src.ClientVersion,
		DBVersion:       src.DbVersion,
		EventVersion:    src.EventVersion,
		ChainID:         uint64(src.ChainID),
		ContractAddress: common.HexToAddress(src.ContractAddress),
		CreatedAt:       timeFromTimestamp(src.CreatedAt),
	}
}

func mapIndexerStateTypeToParams(src entity.IndexerState) gen.CreateIndexerStateParams {
	return gen.CreateIndexerStateParams{
		ClientVersion:   src.ClientVersion,
		DbVersion:       src.DBVersion,
		EventVersion:    src.EventVersion,
		ChainID:         int64(src.ChainID),
		ContractAddress: addressString(src.ContractAddress),
	}
}
