package entity

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingKey(t *testing.T) {
	tokenID := uint256.MustFromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	key := NewListingKey(common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"), tokenID)

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01-"+tokenID.Dec(), key.String())
	})
	t.Run("parse", func(t *testing.T) {
		parsed, err := ParseListingKey(key.String())
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	})
	t.Run("usable as map key", func(t *testing.T) {
		m := map[ListingKey]int{key: 1}
		other := NewListingKey(key.NftAddress, uint256.MustFromDecimal(tokenID.Dec()))
		assert.Equal(t, 1, m[other])
	})
	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "0x01", "nope-1", "0xabcdef0123456789abcdef0123456789abcdef01-x"} {
			_, err := ParseListingKey(s)
			assert.ErrorIs(t, err, errs.InvalidArgument, s)
		}
	})
}

func TestSortEvents(t *testing.T) {
	events := []ListingEvent{
		{Kind: EventKindBought, BlockNumber: 10, LogIndex: 2},
		{Kind: EventKindListed, BlockNumber: 2, LogIndex: 7},
		{Kind: EventKindCanceled, BlockNumber: 10, LogIndex: 0},
		{Kind: EventKindListed, BlockNumber: 2, LogIndex: 1},
	}
	SortEvents(events)

	keys := make([]OrderKey, 0, len(events))
	for _, ev := range events {
		keys = append(keys, ev.OrderKey())
	}
	assert.Equal(t, []OrderKey{{2, 1}, {2, 7}, {10, 0}, {10, 2}}, keys)
}

func TestEventAccounts(t *testing.T) {
	account := common.HexToAddress("0x01")

	listed := ListingEvent{Kind: EventKindListed, Account: account}
	assert.Equal(t, account, listed.Seller())
	assert.Equal(t, common.Address{}, listed.Buyer())

	bought := ListingEvent{Kind: EventKindBought, Account: account}
	assert.Equal(t, common.Address{}, bought.Seller())
	assert.Equal(t, account, bought.Buyer())
}

func TestParseEventKind(t *testing.T) {
	for _, kind := range EventKinds {
		parsed, err := ParseEventKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseEventKind("updated")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestListingActiveListing(t *testing.T) {
	l := &Listing{Active: true, Price: *uint256.NewInt(5), ListedAtBlock: 3, ListedAtLogIndex: 1}
	active, ok := l.ActiveListing()
	require.True(t, ok)
	assert.Equal(t, OrderKey{3, 1}, active.OrderKey())

	l.Price = *uint256.NewInt(0)
	_, ok = l.ActiveListing()
	assert.False(t, ok)

	var nilListing *Listing
	_, ok = nilListing.ActiveListing()
	assert.False(t, ok)
}
