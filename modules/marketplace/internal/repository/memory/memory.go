// Package memory is an in-process store for tests and single-node deployments.
//
// A transaction works on a private copy of the committed state and holds the store's write
// lock until Commit or Rollback; writes made outside of a transaction wait for it. Reads
// outside of a transaction only see committed state.
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/listing"
)

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

var _ datagateway.MarketplaceDataGatewayWithTx = (*Repository)(nil)

type eventID struct {
	TxHash   common.Hash
	LogIndex uint
}

// state is one version of the data. Stored listings are never modified in place, so copies
// of a state may share them.
type state struct {
	listings map[entity.ListingKey]*entity.Listing
	events   map[eventID]entity.ListingEvent
	blocks   []entity.IndexedBlock // ascending height
	skipped  []types.BlockRange    // ascending start
	pending  map[entity.ListingKey]struct{}
	states   []entity.IndexerState
}

func newState() *state {
	return &state{
		listings: make(map[entity.ListingKey]*entity.Listing),
		events:   make(map[eventID]entity.ListingEvent),
		pending:  make(map[entity.ListingKey]struct{}),
	}
}

func (s *state) clone() *state {
	return &state{
		listings: maps.Clone(s.listings),
		events:   maps.Clone(s.events),
		blocks:   slices.Clone(s.blocks),
		skipped:  slices.Clone(s.skipped),
		pending:  maps.Clone(s.pending),
		states:   slices.Clone(s.states),
	}
}

type store struct {
	mu        sync.RWMutex
	writeMu   sync.Mutex
	committed *state
}

type transaction struct {
	mu   sync.Mutex
	data *state
}

type Repository struct {
	s  *store
	tx *transaction
}

func New() *Repository {
	return &Repository{
		s: &store{committed: newState()},
	}
}

// read runs fn on the state visible to the repository.
func (r *Repository) read(fn func(s *state)) {
	if tx := r.tx; tx != nil {
		tx.mu.Lock()
		defer tx.mu.Unlock()
		fn(tx.data)
		return
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	fn(r.s.committed)
}

// write runs fn on the transaction's copy, or on the committed state under the store locks.
// fn must not change anything when it returns an error.
func (r *Repository) write(fn func(s *state) error) error {
	if tx := r.tx; tx != nil {
		tx.mu.Lock()
		defer tx.mu.Unlock()
		return errors.WithStack(fn(tx.data))
	}
	r.s.writeMu.Lock()
	defer r.s.writeMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return errors.WithStack(fn(r.s.committed))
}

func (r *Repository) BeginMarketplaceTx(ctx context.Context) (datagateway.MarketplaceDataGatewayWithTx, error) {
	if r.tx != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	r.s.writeMu.Lock()
	r.s.mu.RLock()
	data := r.s.committed.clone()
	r.s.mu.RUnlock()
	return &Repository{s: r.s, tx: &transaction{data: data}}, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	r.s.mu.Lock()
	r.s.committed = r.tx.data
	r.s.mu.Unlock()
	r.tx = nil
	r.s.writeMu.Unlock()
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	r.tx = nil
	r.s.writeMu.Unlock()
	return nil
}

func (r *Repository) GetListing(ctx context.Context, key entity.ListingKey) (l *entity.Listing, err error) {
	r.read(func(s *state) {
		stored, ok := s.listings[key]
		if !ok {
			err = errors.WithStack(errs.NotFound)
			return
		}
		l = stored.Clone()
	})
	return l, err
}

func (r *Repository) SaveListing(ctx context.Context, l *entity.Listing, expected *entity.OrderKey) error {
	return r.write(func(s *state) error {
		stored, exists := s.listings[l.Key]
		switch {
		case expected == nil && exists:
			return errors.Wrapf(errs.Conflict, "listing %s already exists", l.Key)
		case expected != nil && (!exists || stored.LastApplied != *expected):
			return errors.Wrapf(errs.Conflict, "listing %s was modified", l.Key)
		case exists && !stored.LastApplied.Less(l.LastApplied):
			return errors.Wrapf(errs.Conflict, "listing %s is already at %v", l.Key, stored.LastApplied)
		}
		s.listings[l.Key] = l.Clone()
		return nil
	})
}

func (r *Repository) PutListing(ctx context.Context, l *entity.Listing) error {
	return r.write(func(s *state) error {
		s.listings[l.Key] = l.Clone()
		return nil
	})
}

func (r *Repository) DeleteListing(ctx context.Context, key entity.ListingKey) error {
	return r.write(func(s *state) error {
		delete(s.listings, key)
		return nil
	})
}

func (r *Repository) GetActiveListings(ctx context.Context) (listings []entity.ActiveListing, _ error) {
	r.read(func(s *state) {
		listings = s.activeListings(func(*entity.Listing) bool { return true })
	})
	return listings, nil
}

func (r *Repository) GetActiveListingsBySeller(ctx context.Context, seller common.Address) (listings []entity.ActiveListing, _ error) {
	r.read(func(s *state) {
		listings = s.activeListings(func(l *entity.Listing) bool { return l.Seller == seller })
	})
	return listings, nil
}

func (r *Repository) GetListingSnapshot(ctx context.Context) (snapshot *entity.ListingSnapshot, err error) {
	r.read(func(s *state) {
		if len(s.blocks) == 0 {
			err = errors.Wrap(errs.NotFound, "no indexed block")
			return
		}
		snapshot = &entity.ListingSnapshot{
			Listings:     s.activeListings(func(*entity.Listing) bool { return true }),
			AsOfBlock:    s.blocks[len(s.blocks)-1].Height,
			Incomplete:   len(s.skipped) > 0,
			FailedRanges: slices.Clone(s.skipped),
		}
	})
	return snapshot, err
}

func (s *state) activeListings(filter func(*entity.Listing) bool) []entity.ActiveListing {
	listings := make([]entity.ActiveListing, 0)
	for _, l := range s.listings {
		if !filter(l) {
			continue
		}
		if active, ok := l.ActiveListing(); ok {
			listings = append(listings, active)
		}
	}
	listing.SortByRecency(listings)
	return listings
}

func (r *Repository) CreateEvent(ctx context.Context, event entity.ListingEvent) error {
	return r.write(func(s *state) error {
		id := eventID{TxHash: event.TxHash, LogIndex: event.LogIndex}
		if _, exists := s.events[id]; !exists {
			s.events[id] = event
		}
		return nil
	})
}

func (r *Repository) GetEventsByKey(ctx context.Context, key entity.ListingKey) ([]entity.ListingEvent, error) {
	return r.filterEvents(func(ev entity.ListingEvent) bool { return ev.Key == key }), nil
}

func (r *Repository) GetEventsByBlockRange(ctx context.Context, from, to uint64) ([]entity.ListingEvent, error) {
	return r.filterEvents(func(ev entity.ListingEvent) bool {
		return ev.BlockNumber >= from && ev.BlockNumber <= to
	}), nil
}

func (r *Repository) filterEvents(filter func(entity.ListingEvent) bool) []entity.ListingEvent {
	events := make([]entity.ListingEvent, 0)
	r.read(func(s *state) {
		for _, ev := range s.events {
			if filter(ev) {
				events = append(events, ev)
			}
		}
	})
	entity.SortEvents(events)
	return events
}

func (r *Repository) GetKeysWithEventsSinceHeight(ctx context.Context, from uint64) ([]entity.ListingKey, error) {
	seen := make(map[entity.ListingKey]struct{})
	r.read(func(s *state) {
		for _, ev := range s.events {
			if ev.BlockNumber >= from {
				seen[ev.Key] = struct{}{}
			}
		}
	})
	return sortedKeys(seen), nil
}

func (r *Repository) DeleteEventsInBlockRange(ctx context.Context, from, to uint64) error {
	return r.write(func(s *state) error {
		maps.DeleteFunc(s.events, func(_ eventID, ev entity.ListingEvent) bool {
			return ev.BlockNumber >= from && ev.BlockNumber <= to
		})
		return nil
	})
}

func (r *Repository) DeleteEventsSinceHeight(ctx context.Context, from uint64) error {
	return r.write(func(s *state) error {
		maps.DeleteFunc(s.events, func(_ eventID, ev entity.ListingEvent) bool { return ev.BlockNumber >= from })
		return nil
	})
}

func (r *Repository) GetLatestIndexedBlock(ctx context.Context) (block entity.IndexedBlock, err error) {
	r.read(func(s *state) {
		if len(s.blocks) == 0 {
			err = errors.WithStack(errs.NotFound)
			return
		}
		block = s.blocks[len(s.blocks)-1]
	})
	return block, err
}

func (r *Repository) GetIndexedBlockAtOrBelow(ctx context.Context, height uint64) (block entity.IndexedBlock, err error) {
	r.read(func(s *state) {
		// first block above height
		i := sort.Search(len(s.blocks), func(i int) bool { return s.blocks[i].Height > height })
		if i == 0 {
			err = errors.WithStack(errs.NotFound)
			return
		}
		block = s.blocks[i-1]
	})
	return block, err
}

func (r *Repository) CreateIndexedBlock(ctx context.Context, block entity.IndexedBlock) error {
	return r.write(func(s *state) error {
		i := sort.Search(len(s.blocks), func(i int) bool { return s.blocks[i].Height >= block.Height })
		if i < len(s.blocks) && s.blocks[i].Height == block.Height {
			s.blocks[i] = block
		} else {
			s.blocks = slices.Insert(s.blocks, i, block)
		}
		return nil
	})
}

func (r *Repository) DeleteIndexedBlocksSinceHeight(ctx context.Context, from uint64) error {
	return r.write(func(s *state) error {
		i := sort.Search(len(s.blocks), func(i int) bool { return s.blocks[i].Height >= from })
		s.blocks = s.blocks[:i]
		return nil
	})
}

func (r *Repository) CreateSkippedRange(ctx context.Context, br types.BlockRange) error {
	return r.write(func(s *state) error {
		i := sort.Search(len(s.skipped), func(i int) bool { return s.skipped[i].From >= br.From })
		if i < len(s.skipped) && s.skipped[i].From == br.From {
			s.skipped[i] = br
		} else {
			s.skipped = slices.Insert(s.skipped, i, br)
		}
		return nil
	})
}

func (r *Repository) GetSkippedRanges(ctx context.Context) (ranges []types.BlockRange, _ error) {
	r.read(func(s *state) {
		ranges = slices.Clone(s.skipped)
	})
	if ranges == nil {
		ranges = []types.BlockRange{}
	}
	return ranges, nil
}

func (r *Repository) DeleteSkippedRangesSinceHeight(ctx context.Context, from uint64) error {
	return r.write(func(s *state) error {
		i := sort.Search(len(s.skipped), func(i int) bool { return s.skipped[i].From >= from })
		s.skipped = s.skipped[:i]
		return nil
	})
}

func (r *Repository) AddPendingRebuilds(ctx context.Context, keys []entity.ListingKey) error {
	return r.write(func(s *state) error {
		for _, key := range keys {
			s.pending[key] = struct{}{}
		}
		return nil
	})
}

func (r *Repository) GetPendingRebuilds(ctx context.Context) ([]entity.ListingKey, error) {
	var keys []entity.ListingKey
	r.read(func(s *state) {
		keys = sortedKeys(s.pending)
	})
	return keys, nil
}

func (r *Repository) RemovePendingRebuilds(ctx context.Context, keys []entity.ListingKey) error {
	return r.write(func(s *state) error {
		for _, key := range keys {
			delete(s.pending, key)
		}
		return nil
	})
}

func (r *Repository) GetLatestIndexerState(ctx context.Context) (st entity.IndexerState, err error) {
	r.read(func(s *state) {
		if len(s.states) == 0 {
			err = errors.WithStack(errs.NotFound)
			return
		}
		st = s.states[len(s.states)-1]
	})
	return st, err
}

func (r *Repository) CreateIndexerState(ctx context.Context, st entity.IndexerState) error {
	return r.write(func(s *state) error {
		s.states = append(s.states, st)
		return nil
	})
}

func sortedKeys(set map[entity.ListingKey]struct{}) []entity.ListingKey {
	keys := make([]entity.ListingKey, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
