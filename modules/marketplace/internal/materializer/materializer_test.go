package materializer

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway/mocks"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/listing"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/memory"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	nft    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller = common.HexToAddress("0x0000000000000000000000000000000000000051")
	buyer  = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

func key(token uint64) entity.ListingKey {
	return entity.NewListingKey(nft, uint256.NewInt(token))
}

func ev(kind entity.EventKind, token uint64, price uint64, block uint64, logIndex uint) entity.ListingEvent {
	account := seller
	if kind == entity.EventKindBought {
		account = buyer
	}
	return entity.ListingEvent{
		Kind:        kind,
		Key:         key(token),
		Account:     account,
		Price:       *uint256.NewInt(price),
		BlockNumber: block,
		LogIndex:    logIndex,
		TxHash:      common.BigToHash(new(uint256.Int).SetUint64(block*1000 + uint64(logIndex)).ToBig()),
	}
}

func activeSet(t *testing.T, repo *memory.Repository) map[entity.ListingKey]entity.ActiveListing {
	t.Helper()
	listings, err := repo.GetActiveListings(context.Background())
	require.NoError(t, err)
	set := make(map[entity.ListingKey]entity.ActiveListing, len(listings))
	for _, l := range listings {
		set[l.Key] = l
	}
	return set
}

func TestApplyEventIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	m := New(repo)

	listed := ev(entity.EventKindListed, 1, 100, 5, 0)
	applied, err := m.ApplyEvent(ctx, listed)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = m.ApplyEvent(ctx, listed)
	require.NoError(t, err)
	assert.False(t, applied)

	events, err := repo.GetEventsByKey(ctx, key(1))
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestApplyEventRejectsStale(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	m := New(repo)

	_, err := m.ApplyEvent(ctx, ev(entity.EventKindListed, 1, 200, 8, 0))
	require.NoError(t, err)

	applied, err := m.ApplyEvent(ctx, ev(entity.EventKindCanceled, 1, 0, 6, 0))
	require.NoError(t, err)
	assert.False(t, applied)

	l, err := repo.GetListing(ctx, key(1))
	require.NoError(t, err)
	assert.True(t, l.Active)
	assert.Equal(t, uint64(200), l.Price.Uint64())
}

func TestApplyEventWithoutListing(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	m := New(repo)

	applied, err := m.ApplyEvent(ctx, ev(entity.EventKindBought, 1, 10, 3, 0))
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = repo.GetListing(ctx, key(1))
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestApplyEventsMatchesReconcile(t *testing.T) {
	events := []entity.ListingEvent{
		ev(entity.EventKindListed, 1, 100, 5, 0),
		ev(entity.EventKindListed, 2, 50, 6, 0),
		ev(entity.EventKindBought, 1, 100, 7, 0),
		ev(entity.EventKindListed, 3, 100, 5, 1),
		ev(entity.EventKindListed, 3, 200, 8, 0),
		ev(entity.EventKindCanceled, 3, 0, 10, 0),
		ev(entity.EventKindListed, 4, 0, 11, 0),
		ev(entity.EventKindListed, 5, 70, 12, 0),
		ev(entity.EventKindCanceled, 5, 0, 13, 0),
		ev(entity.EventKindListed, 5, 80, 14, 0),
	}

	repo := memory.New()
	m := New(repo, WithConcurrency(3))
	// reversed input, each listing is still applied in canonical order
	reversed := make([]entity.ListingEvent, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		reversed = append(reversed, events[i])
	}
	applied, err := m.ApplyEvents(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, len(events), applied)

	assert.Equal(t, listing.ReconcileEvents(events), activeSet(t, repo))
}

func TestApplyEventsConcurrentDeliveries(t *testing.T) {
	events := []entity.ListingEvent{
		ev(entity.EventKindListed, 1, 100, 5, 0),
		ev(entity.EventKindListed, 2, 50, 6, 0),
		ev(entity.EventKindBought, 1, 100, 7, 0),
		ev(entity.EventKindListed, 1, 120, 9, 2),
		ev(entity.EventKindCanceled, 2, 0, 9, 3),
	}
	repo := memory.New()
	m := New(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.ApplyEvents(context.Background(), events)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, listing.ReconcileEvents(events), activeSet(t, repo))
}

func TestApplyEventRetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMarketplaceDataGateway(t)
	m := New(store)

	// another writer stores the first listing between our read and our write
	concurrent := listing.Apply(nil, ev(entity.EventKindListed, 1, 100, 5, 0))
	relisted := ev(entity.EventKindListed, 1, 120, 9, 0)

	store.EXPECT().CreateEvent(mock.Anything, relisted).Return(nil)
	store.EXPECT().GetListing(mock.Anything, relisted.Key).Return(nil, errors.WithStack(errs.NotFound)).Once()
	store.EXPECT().SaveListing(mock.Anything, mock.Anything, (*entity.OrderKey)(nil)).Return(errors.WithStack(errs.Conflict)).Once()
	store.EXPECT().GetListing(mock.Anything, relisted.Key).Return(concurrent, nil).Once()
	store.EXPECT().SaveListing(mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.Active && l.Price.Uint64() == 120 && l.LastApplied == relisted.OrderKey()
	}), &entity.OrderKey{BlockNumber: 5}).Return(nil).Once()

	applied, err := m.ApplyEvent(ctx, relisted)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestApplyEventGivesUpAfterConflicts(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMarketplaceDataGateway(t)
	m := New(store)

	listed := ev(entity.EventKindListed, 1, 100, 5, 0)
	store.EXPECT().CreateEvent(mock.Anything, listed).Return(nil)
	store.EXPECT().GetListing(mock.Anything, listed.Key).Return(nil, errors.WithStack(errs.NotFound)).Times(maxAttempts)
	store.EXPECT().SaveListing(mock.Anything, mock.Anything, (*entity.OrderKey)(nil)).Return(errors.WithStack(errs.Conflict)).Times(maxAttempts)

	_, err := m.ApplyEvent(ctx, listed)
	assert.ErrorIs(t, err, errs.Conflict)
}

func TestRebuild(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	m := New(repo)

	_, err := m.ApplyEvents(ctx, []entity.ListingEvent{
		ev(entity.EventKindListed, 1, 100, 5, 0),
		ev(entity.EventKindCanceled, 1, 0, 9, 0),
		ev(entity.EventKindListed, 2, 100, 9, 1),
	})
	require.NoError(t, err)

	// drop history after block 8, as a reorg revert would
	require.NoError(t, repo.DeleteEventsSinceHeight(ctx, 8))
	require.NoError(t, m.Rebuild(ctx, []entity.ListingKey{key(1), key(2)}))

	l, err := repo.GetListing(ctx, key(1))
	require.NoError(t, err)
	assert.True(t, l.Active)
	assert.Equal(t, entity.OrderKey{BlockNumber: 5}, l.LastApplied)

	_, err = repo.GetListing(ctx, key(2))
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	m := New(repo)

	tx, err := repo.BeginMarketplaceTx(ctx)
	require.NoError(t, err)
	_, err = m.WithTx(tx).ApplyEvents(ctx, []entity.ListingEvent{ev(entity.EventKindListed, 1, 100, 5, 0)})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	assert.Empty(t, activeSet(t, repo))
}
