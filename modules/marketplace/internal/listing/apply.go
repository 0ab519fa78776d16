package listing

import (
	"slices"

	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

// Apply returns the state of a listing after ev. current may be nil when the key has no record.
//
// Events at or before current.LastApplied are ignored and current is returned as is, so
// applying an event twice is a no-op. Canceled and Bought on a key without record return nil.
// Apply never mutates current.
func Apply(current *entity.Listing, ev entity.ListingEvent) *entity.Listing {
	if current != nil && !current.LastApplied.Less(ev.OrderKey()) {
		return current
	}

	switch ev.Kind {
	case entity.EventKindListed:
		return &entity.Listing{
			Key:              ev.Key,
			Seller:           ev.Account,
			Price:            ev.Price,
			Active:           true,
			ListedAtBlock:    ev.BlockNumber,
			ListedAtLogIndex: ev.LogIndex,
			LastApplied:      ev.OrderKey(),
			TxHash:           ev.TxHash,
			Timestamp:        ev.Timestamp,
		}
	case entity.EventKindCanceled, entity.EventKindBought:
		if current == nil {
			return nil
		}
		next := current.Clone()
		next.Active = false
		next.LastApplied = ev.OrderKey()
		if ev.Kind == entity.EventKindBought {
			buyer := ev.Account
			next.Buyer = &buyer
		}
		return next
	default:
		return current
	}
}

// Replay applies events in canonical order starting from an empty record.
func Replay(events []entity.ListingEvent) *entity.Listing {
	sorted := slices.Clone(events)
	entity.SortEvents(sorted)

	var current *entity.Listing
	for _, ev := range sorted {
		current = Apply(current, ev)
	}
	return current
}
