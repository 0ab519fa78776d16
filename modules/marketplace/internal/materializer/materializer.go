package materializer

import (
	"context"
	"hash/maphash"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/listing"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 8

	lockStripes = 256

	// maxAttempts bounds the retries of a write that lost a compare-and-swap race.
	maxAttempts = 5
)

// Store is the part of the datagateway the materializer writes to.
type Store interface {
	datagateway.ListingDataGateway
	datagateway.EventDataGateway
}

// Materializer maintains the listing records by applying events one at a time.
type Materializer struct {
	store       Store
	locks       *keyLocks
	concurrency int
}

type Option func(*Materializer)

func WithConcurrency(n int) Option {
	return func(m *Materializer) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

func New(store Store, opts ...Option) *Materializer {
	m := &Materializer{
		store:       store,
		locks:       newKeyLocks(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTx returns a materializer writing through tx. A transaction isn't safe for concurrent
// use, so keys are applied one after another. Key locks are not taken: the store's row locks
// serialize writers of the same key across transactions.
func (m *Materializer) WithTx(tx Store) *Materializer {
	return &Materializer{
		store:       tx,
		concurrency: 1,
	}
}

// ApplyEvent records ev and applies it to its listing. It returns false if the listing
// already reflects ev or a later event.
func (m *Materializer) ApplyEvent(ctx context.Context, ev entity.ListingEvent) (bool, error) {
	unlock := m.locks.lock(ev.Key)
	defer unlock()

	if err := m.store.CreateEvent(ctx, ev); err != nil {
		return false, errors.Wrap(err, "failed to record event")
	}

	for attempt := 1; ; attempt++ {
		applied, err := m.apply(ctx, ev)
		if err == nil {
			return applied, nil
		}
		if !errors.Is(err, errs.Conflict) || attempt >= maxAttempts {
			return false, errors.WithStack(err)
		}
		logger.DebugContext(ctx, "Listing was modified concurrently, retrying",
			slogx.Stringer("key", ev.Key),
			slogx.Int("attempt", attempt),
		)
	}
}

func (m *Materializer) apply(ctx context.Context, ev entity.ListingEvent) (bool, error) {
	current, err := m.store.GetListing(ctx, ev.Key)
	if err != nil {
		if !errors.Is(err, errs.NotFound) {
			return false, errors.Wrap(err, "failed to get listing")
		}
		current = nil
	}

	next := listing.Apply(current, ev)
	if next == nil || next == current {
		return false, nil
	}

	var expected *entity.OrderKey
	if current != nil {
		expected = &current.LastApplied
	}
	if err := m.store.SaveListing(ctx, next, expected); err != nil {
		return false, errors.Wrap(err, "failed to save listing")
	}
	return true, nil
}

// ApplyEvents applies events grouped by listing. Each listing's events are applied in
// canonical order, different listings in parallel. It returns the number of applied events.
func (m *Materializer) ApplyEvents(ctx context.Context, events []entity.ListingEvent) (int, error) {
	groups := groupByKey(events)

	var (
		mu      sync.Mutex
		applied int
	)
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(m.concurrency)
	for _, group := range groups {
		group := group
		eg.Go(func() error {
			n := 0
			for _, ev := range group {
				ok, err := m.ApplyEvent(ectx, ev)
				if err != nil {
					return errors.Wrapf(err, "failed to apply %s event of %s at %d:%d", ev.Kind, ev.Key, ev.BlockNumber, ev.LogIndex)
				}
				if ok {
					n++
				}
			}
			mu.Lock()
			applied += n
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, errors.WithStack(err)
	}
	return applied, nil
}

// Rebuild recomputes the records of keys from their stored event history.
func (m *Materializer) Rebuild(ctx context.Context, keys []entity.ListingKey) error {
	for _, key := range keys {
		if err := m.rebuild(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to rebuild listing %s", key)
		}
	}
	return nil
}

func (m *Materializer) rebuild(ctx context.Context, key entity.ListingKey) error {
	unlock := m.locks.lock(key)
	defer unlock()

	events, err := m.store.GetEventsByKey(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to get events")
	}
	rebuilt := listing.Replay(events)
	if rebuilt == nil {
		return errors.WithStack(m.store.DeleteListing(ctx, key))
	}
	return errors.WithStack(m.store.PutListing(ctx, rebuilt))
}

// groupByKey groups events by listing key, keeping first-seen key order and sorting each group.
func groupByKey(events []entity.ListingEvent) [][]entity.ListingEvent {
	index := make(map[entity.ListingKey]int)
	groups := make([][]entity.ListingEvent, 0)
	for _, ev := range events {
		i, ok := index[ev.Key]
		if !ok {
			i = len(groups)
			index[ev.Key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], ev)
	}
	for _, group := range groups {
		entity.SortEvents(group)
	}
	return groups
}

// keyLocks serializes work on the same listing key with a fixed set of mutexes.
// A nil *keyLocks doesn't lock.
type keyLocks struct {
	seed    maphash.Seed
	stripes [lockStripes]sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{seed: maphash.MakeSeed()}
}

func (l *keyLocks) lock(key entity.ListingKey) (unlock func()) {
	if l == nil {
		return func() {}
	}
	var h maphash.Hash
	h.SetSeed(l.seed)
	_, _ = h.Write(key.NftAddress.Bytes())
	tokenID := key.TokenID.Bytes32()
	_, _ = h.Write(tokenID[:])
	mu := &l.stripes[h.Sum64()%lockStripes]
	mu.Lock()
	return mu.Unlock
}
