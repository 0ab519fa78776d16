package listing

import (
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nft     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	keyA    = entity.NewListingKey(nft, uint256.NewInt(1))
	keyB    = entity.NewListingKey(nft, uint256.NewInt(2))
	seller1 = common.HexToAddress("0x0000000000000000000000000000000000000051")
	seller2 = common.HexToAddress("0x0000000000000000000000000000000000000052")
	buyer1  = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

func listed(key entity.ListingKey, seller common.Address, price uint64, block uint64, logIndex uint) entity.ListingEvent {
	return entity.ListingEvent{Kind: entity.EventKindListed, Key: key, Account: seller, Price: *uint256.NewInt(price), BlockNumber: block, LogIndex: logIndex}
}

func canceled(key entity.ListingKey, seller common.Address, block uint64, logIndex uint) entity.ListingEvent {
	return entity.ListingEvent{Kind: entity.EventKindCanceled, Key: key, Account: seller, BlockNumber: block, LogIndex: logIndex}
}

func bought(key entity.ListingKey, buyer common.Address, price uint64, block uint64, logIndex uint) entity.ListingEvent {
	return entity.ListingEvent{Kind: entity.EventKindBought, Key: key, Account: buyer, Price: *uint256.NewInt(price), BlockNumber: block, LogIndex: logIndex}
}

func TestReconcileScenarios(t *testing.T) {
	t.Run("bought listing leaves the set", func(t *testing.T) {
		active := ReconcileEvents([]entity.ListingEvent{
			listed(keyA, seller1, 100, 5, 0),
			listed(keyB, seller2, 50, 6, 0),
			bought(keyA, buyer1, 100, 7, 0),
		})
		require.Len(t, active, 1)
		assert.Equal(t, seller2, active[keyB].Seller)
		assert.Equal(t, *uint256.NewInt(50), active[keyB].Price)
	})
	t.Run("relisted then canceled", func(t *testing.T) {
		active := ReconcileEvents([]entity.ListingEvent{
			listed(keyA, seller1, 100, 5, 0),
			listed(keyA, seller1, 200, 8, 0),
			canceled(keyA, seller1, 10, 0),
		})
		assert.Empty(t, active)
	})
	t.Run("listed then canceled", func(t *testing.T) {
		active := Reconcile(
			[]entity.ListingEvent{listed(keyA, seller1, 100, 5, 0)},
			[]entity.ListingEvent{canceled(keyA, seller1, 6, 0)},
			nil,
		)
		assert.Empty(t, active)
	})
	t.Run("relisting keeps the latest price", func(t *testing.T) {
		active := Reconcile([]entity.ListingEvent{
			listed(keyA, seller1, 200, 8, 0),
			listed(keyA, seller1, 100, 5, 0),
		}, nil, nil)
		require.Contains(t, active, keyA)
		assert.Equal(t, *uint256.NewInt(200), active[keyA].Price)
		assert.Equal(t, uint64(8), active[keyA].ListedAtBlock)
	})
	t.Run("cancel and buy without listing", func(t *testing.T) {
		active := Reconcile(nil,
			[]entity.ListingEvent{canceled(keyA, seller1, 3, 0)},
			[]entity.ListingEvent{bought(keyB, buyer1, 10, 4, 0)},
		)
		assert.Empty(t, active)
	})
	t.Run("zero price is dropped", func(t *testing.T) {
		active := Reconcile([]entity.ListingEvent{
			listed(keyA, seller1, 0, 5, 0),
			listed(keyB, seller2, 1, 5, 1),
		}, nil, nil)
		assert.NotContains(t, active, keyA)
		assert.Contains(t, active, keyB)
	})
	t.Run("same block ordered by log index", func(t *testing.T) {
		active := Reconcile(
			[]entity.ListingEvent{listed(keyA, seller1, 100, 5, 3)},
			[]entity.ListingEvent{canceled(keyA, seller1, 5, 1)},
			nil,
		)
		assert.Contains(t, active, keyA)
	})
}

func TestReconcileOrderInsensitive(t *testing.T) {
	events := []entity.ListingEvent{
		listed(keyA, seller1, 100, 5, 0),
		listed(keyB, seller2, 50, 6, 0),
		canceled(keyB, seller2, 6, 2),
		listed(keyB, seller2, 70, 9, 1),
		bought(keyA, buyer1, 100, 7, 0),
		listed(keyA, buyer1, 300, 11, 4),
	}
	want := ReconcileEvents(events)
	require.Len(t, want, 2)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([]entity.ListingEvent(nil), events...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, ReconcileEvents(shuffled))
	}

	// duplicated input reconciles to the same set
	assert.Equal(t, want, ReconcileEvents(append(append([]entity.ListingEvent(nil), events...), events...)))
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	events := []entity.ListingEvent{listed(keyA, seller1, 1, 9, 0), listed(keyB, seller1, 1, 2, 0)}
	_ = ReconcileEvents(events)
	assert.Equal(t, uint64(9), events[0].BlockNumber)
}

func TestSorted(t *testing.T) {
	active := ReconcileEvents([]entity.ListingEvent{
		listed(keyA, seller1, 1, 5, 0),
		listed(keyB, seller2, 1, 5, 7),
	})
	listings := Sorted(active)
	require.Len(t, listings, 2)
	assert.Equal(t, keyB, listings[0].Key)
	assert.Equal(t, keyA, listings[1].Key)
}

func TestApply(t *testing.T) {
	t.Run("listed creates an active record", func(t *testing.T) {
		l := Apply(nil, listed(keyA, seller1, 100, 5, 2))
		require.NotNil(t, l)
		assert.True(t, l.Active)
		assert.Equal(t, entity.OrderKey{BlockNumber: 5, LogIndex: 2}, l.LastApplied)
	})
	t.Run("cancel without record", func(t *testing.T) {
		assert.Nil(t, Apply(nil, canceled(keyA, seller1, 5, 0)))
		assert.Nil(t, Apply(nil, bought(keyA, buyer1, 1, 5, 0)))
	})
	t.Run("bought records the buyer", func(t *testing.T) {
		l := Apply(Apply(nil, listed(keyA, seller1, 100, 5, 0)), bought(keyA, buyer1, 100, 7, 0))
		require.NotNil(t, l)
		assert.False(t, l.Active)
		require.NotNil(t, l.Buyer)
		assert.Equal(t, buyer1, *l.Buyer)
		_, ok := l.ActiveListing()
		assert.False(t, ok)
	})
	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		ev := listed(keyA, seller1, 100, 5, 0)
		once := Apply(nil, ev)
		twice := Apply(once, ev)
		assert.Same(t, once, twice)
	})
	t.Run("stale event is rejected", func(t *testing.T) {
		current := Apply(nil, listed(keyA, seller1, 200, 8, 0))
		assert.Same(t, current, Apply(current, canceled(keyA, seller1, 6, 0)))
	})
	t.Run("does not mutate current", func(t *testing.T) {
		current := Apply(nil, listed(keyA, seller1, 100, 5, 0))
		next := Apply(current, canceled(keyA, seller1, 6, 0))
		assert.True(t, current.Active)
		assert.False(t, next.Active)
	})
	t.Run("relist after cancel", func(t *testing.T) {
		l := Replay([]entity.ListingEvent{
			listed(keyA, seller1, 100, 5, 0),
			canceled(keyA, seller1, 6, 0),
			listed(keyA, seller2, 150, 9, 0),
		})
		active, ok := l.ActiveListing()
		require.True(t, ok)
		assert.Equal(t, seller2, active.Seller)
		assert.Equal(t, uint64(150), active.Price.Uint64())
	})
}

// Apply folded over any sequence agrees with Reconcile.
func TestApplyMatchesReconcile(t *testing.T) {
	events := []entity.ListingEvent{
		listed(keyA, seller1, 100, 5, 0),
		listed(keyB, seller2, 50, 6, 0),
		bought(keyA, buyer1, 100, 7, 0),
		listed(keyA, buyer1, 0, 8, 0),
		canceled(keyB, seller2, 9, 0),
		listed(keyB, seller2, 60, 9, 1),
	}
	want := ReconcileEvents(events)

	byKey := make(map[entity.ListingKey][]entity.ListingEvent)
	for _, ev := range events {
		byKey[ev.Key] = append(byKey[ev.Key], ev)
	}
	got := make(map[entity.ListingKey]entity.ActiveListing)
	for key, evs := range byKey {
		if active, ok := Replay(evs).ActiveListing(); ok {
			got[key] = active
		}
	}
	assert.Equal(t, want, got)
}
