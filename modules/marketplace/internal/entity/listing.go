package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/holiman/uint256"
)

// ListingKey identifies a listing by NFT contract and token id.
type ListingKey struct {
	NftAddress common.Address
	TokenID    uint256.Int
}

func NewListingKey(nftAddress common.Address, tokenID *uint256.Int) ListingKey {
	return ListingKey{NftAddress: nftAddress, TokenID: *tokenID}
}

// String returns "<lowercase nft address>-<decimal token id>".
func (k ListingKey) String() string {
	return fmt.Sprintf("%s-%s", strings.ToLower(k.NftAddress.Hex()), k.TokenID.Dec())
}

// ParseListingKey parses the format produced by ListingKey.String.
func ParseListingKey(s string) (ListingKey, error) {
	address, tokenID, ok := strings.Cut(s, "-")
	if !ok {
		return ListingKey{}, errors.Wrapf(errs.InvalidArgument, "invalid listing key %q", s)
	}
	if !common.IsHexAddress(address) {
		return ListingKey{}, errors.Wrapf(errs.InvalidArgument, "invalid nft address %q", address)
	}
	id, err := uint256.FromDecimal(tokenID)
	if err != nil {
		return ListingKey{}, errors.Wrapf(errs.InvalidArgument, "invalid token id %q", tokenID)
	}
	return NewListingKey(common.HexToAddress(address), id), nil
}

// ActiveListing is a listing whose latest event is a Listed event with a nonzero price.
type ActiveListing struct {
	Key              ListingKey
	Seller           common.Address
	Price            uint256.Int
	ListedAtBlock    uint64
	ListedAtLogIndex uint
	TxHash           common.Hash
	Timestamp        time.Time
}

func (a ActiveListing) OrderKey() OrderKey {
	return OrderKey{BlockNumber: a.ListedAtBlock, LogIndex: a.ListedAtLogIndex}
}

// Listing is the materialized record of a key. Canceled and bought listings are kept
// with Active set to false, so LastApplied keeps rejecting stale events.
type Listing struct {
	Key              ListingKey
	Seller           common.Address
	Price            uint256.Int
	Active           bool
	Buyer            *common.Address
	ListedAtBlock    uint64
	ListedAtLogIndex uint
	LastApplied      OrderKey
	TxHash           common.Hash
	Timestamp        time.Time
}

// ActiveListing returns the listing as an active listing, false if it is inactive or free.
func (l *Listing) ActiveListing() (ActiveListing, bool) {
	if l == nil || !l.Active || l.Price.IsZero() {
		return ActiveListing{}, false
	}
	return ActiveListing{
		Key:              l.Key,
		Seller:           l.Seller,
		Price:            l.Price,
		ListedAtBlock:    l.ListedAtBlock,
		ListedAtLogIndex: l.ListedAtLogIndex,
		TxHash:           l.TxHash,
		Timestamp:        l.Timestamp,
	}, true
}

func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	c := *l
	if l.Buyer != nil {
		buyer := *l.Buyer
		c.Buyer = &buyer
	}
	return &c
}

// ListingSnapshot is a point-in-time view of the active listings.
type ListingSnapshot struct {
	Source    string
	Listings  []ActiveListing
	AsOfBlock uint64

	// Incomplete is set when some block ranges couldn't be read, listed in FailedRanges.
	Incomplete   bool
	FailedRanges []types.BlockRange
}
