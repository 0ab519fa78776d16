package postgres

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint256FromNumeric(t *testing.T) {
	maxUint256 := new(uint256.Int).SetAllOne()
	tc := []struct {
		name     string
		input    pgtype.Numeric
		expected *uint256.Int
		wantErr  bool
	}{
		{name: "zero", input: pgtype.Numeric{Int: big.NewInt(0), Valid: true}, expected: uint256.NewInt(0)},
		{name: "positive exponent", input: pgtype.Numeric{Int: big.NewInt(1), Exp: 4, Valid: true}, expected: uint256.NewInt(10000)},
		{name: "negative exponent integral", input: pgtype.Numeric{Int: big.NewInt(1500), Exp: -2, Valid: true}, expected: uint256.NewInt(15)},
		{name: "max uint256", input: numericFromUint256(maxUint256), expected: maxUint256},
		{name: "fraction", input: pgtype.Numeric{Int: big.NewInt(15), Exp: -1, Valid: true}, wantErr: true},
		{name: "negative", input: pgtype.Numeric{Int: big.NewInt(-1), Valid: true}, wantErr: true},
		{name: "overflow", input: pgtype.Numeric{Int: new(big.Int).Lsh(big.NewInt(1), 256), Valid: true}, wantErr: true},
		{name: "null", input: pgtype.Numeric{}, wantErr: true},
		{name: "nan", input: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}
	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := uint256FromNumeric(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Dec(), actual.Dec())
		})
	}
}

func TestMapListing(t *testing.T) {
	buyer := common.HexToAddress("0x00000000000000000000000000000000000000Bb")
	listing := &entity.Listing{
		Key:              entity.NewListingKey(common.HexToAddress("0x00000000000000000000000000000000000000Aa"), uint256.NewInt(42)),
		Seller:           common.HexToAddress("0x00000000000000000000000000000000000000Cc"),
		Price:            *uint256.NewInt(1e18),
		Buyer:            &buyer,
		ListedAtBlock:    10,
		ListedAtLogIndex: 2,
		LastApplied:      entity.OrderKey{BlockNumber: 12, LogIndex: 1},
		TxHash:           common.HexToHash("0x1234"),
		Timestamp:        time.Unix(1700000000, 0).UTC(),
	}

	params := mapListingTypeToParams(listing)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", params.NftAddress)
	assert.Equal(t, "0x00000000000000000000000000000000000000bb", params.Buyer.String)
	assert.Equal(t, int64(12), params.LastAppliedBlock)

	actual, err := mapListingModelToType(gen.MarketplaceListing(params))
	require.NoError(t, err)
	assert.Equal(t, listing, actual)
}

func TestMapListingWithoutBuyer(t *testing.T) {
	listing := &entity.Listing{
		Key:    entity.NewListingKey(common.HexToAddress("0x01"), uint256.NewInt(1)),
		Seller: common.HexToAddress("0x02"),
		Price:  *uint256.NewInt(5),
		Active: true,
	}
	params := mapListingTypeToParams(listing)
	assert.False(t, params.Buyer.Valid)
	assert.False(t, params.BlockTimestamp.Valid)

	actual, err := mapListingModelToType(gen.MarketplaceListing(params))
	require.NoError(t, err)
	assert.Nil(t, actual.Buyer)
	assert.True(t, actual.Timestamp.IsZero())
}

func TestMapEvent(t *testing.T) {
	event := entity.ListingEvent{
		Kind:        entity.EventKindBought,
		Key:         entity.NewListingKey(common.HexToAddress("0xaa"), uint256.NewInt(7)),
		Account:     common.HexToAddress("0xbb"),
		Price:       *uint256.NewInt(100),
		BlockNumber: 99,
		LogIndex:    3,
		BlockHash:   common.HexToHash("0x99"),
		TxHash:      common.HexToHash("0x98"),
	}
	actual, err := mapEventModelToType(gen.MarketplaceEvent(mapEventTypeToParams(event)))
	require.NoError(t, err)
	assert.Equal(t, event, actual)
}

func TestMapEventUnknownKind(t *testing.T) {
	params := mapEventTypeToParams(entity.ListingEvent{Kind: entity.EventKindListed})
	params.Kind = "transferred"
	_, err := mapEventModelToType(gen.MarketplaceEvent(params))
	assert.Error(t, err)
}

func TestMapSkippedRange(t *testing.T) {
	actual := mapSkippedRangeModelToType(gen.MarketplaceSkippedRange{FromBlock: 120, ToBlock: 121})
	assert.Equal(t, types.BlockRange{From: 120, To: 121}, actual)
}
