package entity

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/holiman/uint256"
)

type EventKind uint8

const (
	EventKindListed EventKind = iota + 1
	EventKindCanceled
	EventKindBought
)

// EventKinds lists every marketplace event kind.
var EventKinds = []EventKind{EventKindListed, EventKindCanceled, EventKindBought}

var eventKindNames = map[EventKind]string{
	EventKindListed:   "listed",
	EventKindCanceled: "canceled",
	EventKindBought:   "bought",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k EventKind) IsValid() bool {
	_, ok := eventKindNames[k]
	return ok
}

func ParseEventKind(s string) (EventKind, error) {
	for kind, name := range eventKindNames {
		if strings.EqualFold(name, s) {
			return kind, nil
		}
	}
	return 0, errors.Wrapf(errs.InvalidArgument, "unknown event kind %q", s)
}

// OrderKey is the canonical position of a log on chain.
type OrderKey struct {
	BlockNumber uint64
	LogIndex    uint
}

func (o OrderKey) Compare(other OrderKey) int {
	if c := cmp.Compare(o.BlockNumber, other.BlockNumber); c != 0 {
		return c
	}
	return cmp.Compare(o.LogIndex, other.LogIndex)
}

func (o OrderKey) Less(other OrderKey) bool {
	return o.Compare(other) < 0
}

// ListingEvent is one decoded marketplace event.
// Account is the seller for Listed and Canceled, the buyer for Bought.
// Price is zero for Canceled.
type ListingEvent struct {
	Kind        EventKind
	Key         ListingKey
	Account     common.Address
	Price       uint256.Int
	BlockNumber uint64
	LogIndex    uint
	BlockHash   common.Hash
	TxHash      common.Hash
	Timestamp   time.Time
}

func (e ListingEvent) OrderKey() OrderKey {
	return OrderKey{BlockNumber: e.BlockNumber, LogIndex: e.LogIndex}
}

// Seller returns the seller of Listed and Canceled events, zero address otherwise.
func (e ListingEvent) Seller() common.Address {
	if e.Kind == EventKindBought {
		return common.Address{}
	}
	return e.Account
}

// Buyer returns the buyer of Bought events, zero address otherwise.
func (e ListingEvent) Buyer() common.Address {
	if e.Kind != EventKindBought {
		return common.Address{}
	}
	return e.Account
}

// CompareEvents orders events canonically. Ties, which only malformed input can produce,
// are broken by kind and transaction hash so sorting stays deterministic.
func CompareEvents(a, b ListingEvent) int {
	if c := a.OrderKey().Compare(b.OrderKey()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	return bytes.Compare(a.TxHash[:], b.TxHash[:])
}

// SortEvents sorts events in place in canonical order.
func SortEvents(events []ListingEvent) {
	slices.SortStableFunc(events, CompareEvents)
}
