package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/go-redis/redis/v8"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nft     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller  = common.HexToAddress("0x0000000000000000000000000000000000000051")
	seller2 = common.HexToAddress("0x0000000000000000000000000000000000000052")
	keyA    = entity.NewListingKey(nft, uint256.NewInt(1))
	keyB    = entity.NewListingKey(nft, uint256.NewInt(2))
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRepository(client, "test")
}

func newListing(key entity.ListingKey, price uint64, block uint64) *entity.Listing {
	return &entity.Listing{
		Key:           key,
		Seller:        seller,
		Price:         *uint256.NewInt(price),
		Active:        true,
		ListedAtBlock: block,
		LastApplied:   entity.OrderKey{BlockNumber: block},
		TxHash:        common.HexToHash("0x01"),
		Timestamp:     time.Unix(1700000000, 0).UTC(),
	}
}

func TestSaveListingCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.SaveListing(ctx, newListing(keyA, 10, 5), nil))
	assert.ErrorIs(t, repo.SaveListing(ctx, newListing(keyA, 20, 6), nil), errs.Conflict)

	expected := entity.OrderKey{BlockNumber: 5}
	require.NoError(t, repo.SaveListing(ctx, newListing(keyA, 20, 6), &expected))
	assert.ErrorIs(t, repo.SaveListing(ctx, newListing(keyA, 30, 7), &expected), errs.Conflict)

	current := entity.OrderKey{BlockNumber: 6}
	assert.ErrorIs(t, repo.SaveListing(ctx, newListing(keyA, 30, 6), &current), errs.Conflict)

	got, err := repo.GetListing(ctx, keyA)
	require.NoError(t, err)
	assert.Equal(t, newListing(keyA, 20, 6), got)

	_, err = repo.GetListing(ctx, keyB)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestActiveListingIndexes(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.PutListing(ctx, newListing(keyA, 10, 5)))
	require.NoError(t, repo.PutListing(ctx, newListing(keyB, 10, 9)))
	free := newListing(entity.NewListingKey(nft, uint256.NewInt(3)), 0, 7)
	require.NoError(t, repo.PutListing(ctx, free))

	active, err := repo.GetActiveListings(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, keyB, active[0].Key)
	assert.Equal(t, keyA, active[1].Key)

	// bought
	bought := newListing(keyA, 10, 5)
	bought.Active = false
	bought.Buyer = &seller2
	bought.LastApplied = entity.OrderKey{BlockNumber: 11}
	expected := entity.OrderKey{BlockNumber: 5}
	require.NoError(t, repo.SaveListing(ctx, bought, &expected))

	// relisted by another seller
	relisted := newListing(keyB, 15, 12)
	relisted.Seller = seller2
	require.NoError(t, repo.PutListing(ctx, relisted))

	bySeller, err := repo.GetActiveListingsBySeller(ctx, seller)
	require.NoError(t, err)
	assert.Empty(t, bySeller)

	bySeller, err = repo.GetActiveListingsBySeller(ctx, seller2)
	require.NoError(t, err)
	require.Len(t, bySeller, 1)
	assert.Equal(t, uint64(15), bySeller[0].Price.Uint64())

	got, err := repo.GetListing(ctx, keyA)
	require.NoError(t, err)
	require.NotNil(t, got.Buyer)
	assert.Equal(t, seller2, *got.Buyer)

	require.NoError(t, repo.DeleteListing(ctx, keyB))
	require.NoError(t, repo.DeleteListing(ctx, keyB))
	active, err = repo.GetActiveListings(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestListingSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.GetListingSnapshot(ctx)
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, repo.PutListing(ctx, newListing(keyA, 10, 5)))
	require.NoError(t, repo.PutListing(ctx, newListing(keyB, 20, 9)))
	sold := newListing(entity.NewListingKey(nft, uint256.NewInt(3)), 30, 7)
	sold.Active = false
	require.NoError(t, repo.PutListing(ctx, sold))
	require.NoError(t, repo.CreateIndexedBlock(ctx, entity.IndexedBlock{Height: 8, Hash: common.HexToHash("0x08")}))
	require.NoError(t, repo.CreateIndexedBlock(ctx, entity.IndexedBlock{Height: 12, Hash: common.HexToHash("0x0c")}))

	snapshot, err := repo.GetListingSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), snapshot.AsOfBlock)
	assert.False(t, snapshot.Incomplete)
	assert.Empty(t, snapshot.FailedRanges)
	require.Len(t, snapshot.Listings, 2)
	assert.Equal(t, keyB, snapshot.Listings[0].Key)
	assert.Equal(t, uint64(20), snapshot.Listings[0].Price.Uint64())
	assert.Equal(t, keyA, snapshot.Listings[1].Key)

	require.NoError(t, repo.CreateSkippedRange(ctx, types.BlockRange{From: 10, To: 10}))
	snapshot, err = repo.GetListingSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.Incomplete)
	assert.Equal(t, []types.BlockRange{{From: 10, To: 10}}, snapshot.FailedRanges)
}

func TestSkippedRanges(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.CreateSkippedRange(ctx, types.BlockRange{From: 30, To: 31}))
	require.NoError(t, repo.CreateSkippedRange(ctx, types.BlockRange{From: 10, To: 10}))
	require.NoError(t, repo.CreateSkippedRange(ctx, types.BlockRange{From: 30, To: 30}))

	ranges, err := repo.GetSkippedRanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.BlockRange{{From: 10, To: 10}, {From: 30, To: 30}}, ranges)

	require.NoError(t, repo.DeleteSkippedRangesSinceHeight(ctx, 11))
	ranges, err = repo.GetSkippedRanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.BlockRange{{From: 10, To: 10}}, ranges)

	_, err = decodeSkippedRange("10")
	assert.Error(t, err)
}

func TestPendingRebuilds(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.AddPendingRebuilds(ctx, nil))
	keys, err := repo.GetPendingRebuilds(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, repo.AddPendingRebuilds(ctx, []entity.ListingKey{keyA, keyB}))

	// queued keys survive a rolled back transaction
	tx, err := repo.BeginMarketplaceTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	keys, err = repo.GetPendingRebuilds(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.ListingKey{keyA, keyB}, keys)

	require.NoError(t, repo.RemovePendingRebuilds(ctx, []entity.ListingKey{keyA}))
	keys, err = repo.GetPendingRebuilds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.ListingKey{keyB}, keys)
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	events := []entity.ListingEvent{
		{Kind: entity.EventKindListed, Key: keyA, Account: seller, Price: *uint256.NewInt(10), BlockNumber: 5, LogIndex: 1, TxHash: common.HexToHash("0x05")},
		{Kind: entity.EventKindListed, Key: keyB, Account: seller, Price: *uint256.NewInt(10), BlockNumber: 6, LogIndex: 0, TxHash: common.HexToHash("0x06")},
		{Kind: entity.EventKindCanceled, Key: keyA, Account: seller, BlockNumber: 8, LogIndex: 2, TxHash: common.HexToHash("0x08")},
	}
	for i := len(events) - 1; i >= 0; i-- {
		require.NoError(t, repo.CreateEvent(ctx, events[i]))
	}
	// duplicate delivery
	require.NoError(t, repo.CreateEvent(ctx, events[0]))

	byKey, err := repo.GetEventsByKey(ctx, keyA)
	require.NoError(t, err)
	require.Len(t, byKey, 2)
	assert.Equal(t, events[0].OrderKey(), byKey[0].OrderKey())
	assert.Equal(t, entity.EventKindCanceled, byKey[1].Kind)

	inRange, err := repo.GetEventsByBlockRange(ctx, 6, 8)
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	keys, err := repo.GetKeysWithEventsSinceHeight(ctx, 6)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.ListingKey{keyA, keyB}, keys)

	require.NoError(t, repo.DeleteEventsInBlockRange(ctx, 6, 6))
	require.NoError(t, repo.DeleteEventsSinceHeight(ctx, 8))

	remaining, err := repo.GetEventsByBlockRange(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, events[0].TxHash, remaining[0].TxHash)

	byKey, err = repo.GetEventsByKey(ctx, keyB)
	require.NoError(t, err)
	assert.Empty(t, byKey)
}

func TestIndexedBlocks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.GetLatestIndexedBlock(ctx)
	assert.ErrorIs(t, err, errs.NotFound)
	_, err = repo.GetListingSnapshot(ctx)
	assert.ErrorIs(t, err, errs.NotFound)

	for _, h := range []uint64{10, 11, 13} {
		require.NoError(t, repo.CreateIndexedBlock(ctx, entity.IndexedBlock{Height: h, Hash: common.BigToHash(uint256.NewInt(h).ToBig())}))
	}
	require.NoError(t, repo.CreateIndexedBlock(ctx, entity.IndexedBlock{Height: 13, Hash: common.HexToHash("0xff")}))

	latest, err := repo.GetLatestIndexedBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(13), latest.Height)
	assert.Equal(t, common.HexToHash("0xff"), latest.Hash)

	below, err := repo.GetIndexedBlockAtOrBelow(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), below.Height)

	_, err = repo.GetIndexedBlockAtOrBelow(ctx, 9)
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, repo.DeleteIndexedBlocksSinceHeight(ctx, 11))
	latest, err = repo.GetLatestIndexedBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), latest.Height)

	require.NoError(t, repo.PutListing(ctx, newListing(keyA, 10, 5)))
	snapshot, err := repo.GetListingSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), snapshot.AsOfBlock)
	assert.Len(t, snapshot.Listings, 1)
}

func TestIndexerState(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.GetLatestIndexerState(ctx)
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, repo.CreateIndexerState(ctx, entity.IndexerState{ClientVersion: "v0", DBVersion: 1, ChainID: 1}))
	require.NoError(t, repo.CreateIndexerState(ctx, entity.IndexerState{ClientVersion: "v1", DBVersion: 1, EventVersion: 1, ChainID: 1, ContractAddress: nft}))

	state, err := repo.GetLatestIndexerState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", state.ClientVersion)
	assert.Equal(t, nft, state.ContractAddress)
	assert.False(t, state.CreatedAt.IsZero())
}
