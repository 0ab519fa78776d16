package listing

import (
	"slices"

	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

// Reconcile folds the three event collections into the set of active listings.
// The result does not depend on input order and reconciling twice yields the same set.
func Reconcile(listed, canceled, bought []entity.ListingEvent) map[entity.ListingKey]entity.ActiveListing {
	events := make([]entity.ListingEvent, 0, len(listed)+len(canceled)+len(bought))
	events = append(events, listed...)
	events = append(events, canceled...)
	events = append(events, bought...)
	return reconcile(events)
}

// ReconcileEvents is Reconcile over one mixed collection.
func ReconcileEvents(events []entity.ListingEvent) map[entity.ListingKey]entity.ActiveListing {
	return reconcile(slices.Clone(events))
}

// reconcile sorts events in place.
func reconcile(events []entity.ListingEvent) map[entity.ListingKey]entity.ActiveListing {
	entity.SortEvents(events)

	active := make(map[entity.ListingKey]entity.ActiveListing)
	for _, ev := range events {
		switch ev.Kind {
		case entity.EventKindListed:
			active[ev.Key] = entity.ActiveListing{
				Key:              ev.Key,
				Seller:           ev.Account,
				Price:            ev.Price,
				ListedAtBlock:    ev.BlockNumber,
				ListedAtLogIndex: ev.LogIndex,
				TxHash:           ev.TxHash,
				Timestamp:        ev.Timestamp,
			}
		case entity.EventKindCanceled, entity.EventKindBought:
			delete(active, ev.Key)
		}
	}

	for key, l := range active {
		if l.Price.IsZero() {
			delete(active, key)
		}
	}
	return active
}

// Sorted returns the listings most recently listed first.
func Sorted(active map[entity.ListingKey]entity.ActiveListing) []entity.ActiveListing {
	listings := make([]entity.ActiveListing, 0, len(active))
	for _, l := range active {
		listings = append(listings, l)
	}
	SortByRecency(listings)
	return listings
}

// SortByRecency sorts listings in place, most recently listed first.
func SortByRecency(listings []entity.ActiveListing) {
	slices.SortFunc(listings, func(a, b entity.ActiveListing) int {
		return b.OrderKey().Compare(a.OrderKey())
	})
}
