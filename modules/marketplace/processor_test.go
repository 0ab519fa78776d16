package marketplace

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway/mocks"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/materializer"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/memory"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	marketplaceAddress = common.HexToAddress("0x000000000000000000000000000000000000c0de")
	nft                = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller             = common.HexToAddress("0x0000000000000000000000000000000000000051")
	buyer              = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

func newTestProcessor(repo *memory.Repository) *Processor {
	return NewProcessor(repo, materializer.New(repo), gazecommon.NetworkLocal, marketplaceAddress, 10, nil)
}

func listingEvent(kind entity.EventKind, token, price, block uint64, logIndex uint) entity.ListingEvent {
	account := seller
	if kind == entity.EventKindBought {
		account = buyer
	}
	return entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(nft, uint256.NewInt(token)),
		Account:     account,
		Price:       *uint256.NewInt(price),
		BlockNumber: block,
		LogIndex:    logIndex,
		BlockHash:   common.BigToHash(uint256.NewInt(block).ToBig()),
		TxHash:      common.BigToHash(uint256.NewInt(block*1000 + uint64(logIndex)).ToBig()),
	}
}

func blockTime(height uint64) time.Time {
	return time.Unix(int64(1_700_000_000+height*12), 0).UTC()
}

func newBatch(from, to uint64, events ...entity.ListingEvent) *types.LogBatch {
	batch := &types.LogBatch{
		Range: types.BlockRange{From: from, To: to},
		Header: types.BlockHeader{
			Hash:       common.BigToHash(uint256.NewInt(to).ToBig()),
			Height:     int64(to),
			ParentHash: common.BigToHash(uint256.NewInt(to - 1).ToBig()),
		},
		PrevHash:   common.BigToHash(uint256.NewInt(from - 1).ToBig()),
		Logs:       make([]ethtypes.Log, 0, len(events)),
		BlockTimes: make(map[uint64]time.Time),
	}
	for _, ev := range events {
		batch.Logs = append(batch.Logs, contract.EncodeListingEvent(marketplaceAddress, ev))
		batch.BlockTimes[ev.BlockNumber] = blockTime(ev.BlockNumber)
	}
	return batch
}

func activeKeys(t *testing.T, repo *memory.Repository) []entity.ListingKey {
	t.Helper()
	listings, err := repo.GetActiveListings(context.Background())
	require.NoError(t, err)
	keys := make([]entity.ListingKey, 0, len(listings))
	for _, l := range listings {
		keys = append(keys, l.Key)
	}
	return keys
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	err := p.Process(ctx, []*types.LogBatch{
		newBatch(10, 15,
			listingEvent(entity.EventKindListed, 1, 100, 10, 0),
			listingEvent(entity.EventKindListed, 2, 200, 11, 0),
		),
		newBatch(16, 20,
			listingEvent(entity.EventKindBought, 1, 100, 18, 3),
		),
	})
	require.NoError(t, err)

	assert.Equal(t, []entity.ListingKey{entity.NewListingKey(nft, uint256.NewInt(2))}, activeKeys(t, repo))

	l, err := repo.GetListing(ctx, entity.NewListingKey(nft, uint256.NewInt(2)))
	require.NoError(t, err)
	assert.Equal(t, blockTime(11), l.Timestamp)

	bought, err := repo.GetListing(ctx, entity.NewListingKey(nft, uint256.NewInt(1)))
	require.NoError(t, err)
	assert.False(t, bought.Active)
	require.NotNil(t, bought.Buyer)
	assert.Equal(t, buyer, *bought.Buyer)

	current, err := p.CurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20), current.Height)
	assert.Equal(t, common.BigToHash(uint256.NewInt(20).ToBig()), current.Hash)

	indexed, err := p.GetIndexedBlock(ctx, 17)
	require.NoError(t, err)
	assert.Equal(t, int64(15), indexed.Height)
}

func TestProcessReplacesOrphanedEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	// delivered live from a block that was later reorged away
	orphan := listingEvent(entity.EventKindListed, 3, 300, 12, 0)
	orphan.TxHash = common.HexToHash("0xdead")
	_, err := materializer.New(repo).ApplyEvent(ctx, orphan)
	require.NoError(t, err)
	require.Len(t, activeKeys(t, repo), 1)

	err = p.Process(ctx, []*types.LogBatch{
		newBatch(10, 15, listingEvent(entity.EventKindListed, 1, 100, 13, 1)),
	})
	require.NoError(t, err)

	assert.Equal(t, []entity.ListingKey{entity.NewListingKey(nft, uint256.NewInt(1))}, activeKeys(t, repo))

	_, err = repo.GetListing(ctx, orphan.Key)
	assert.ErrorIs(t, err, errs.NotFound)

	events, err := repo.GetEventsByBlockRange(ctx, 10, 15)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(13), events[0].BlockNumber)
}

func TestProcessSkipsLiveDeliveredEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	listed := listingEvent(entity.EventKindListed, 1, 100, 12, 0)
	_, err := materializer.New(repo).ApplyEvent(ctx, listed)
	require.NoError(t, err)

	err = p.Process(ctx, []*types.LogBatch{newBatch(10, 15, listed)})
	require.NoError(t, err)

	events, err := repo.GetEventsByKey(ctx, listed.Key)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, []entity.ListingKey{listed.Key}, activeKeys(t, repo))
}

func TestProcessRecordsSkippedRanges(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	batch := newBatch(12, 15)
	batch.SkippedRanges = []types.BlockRange{{From: 13, To: 13}}
	require.NoError(t, p.Process(ctx, []*types.LogBatch{
		newBatch(10, 11, listingEvent(entity.EventKindListed, 1, 100, 11, 0)),
		batch,
		newBatch(16, 20, listingEvent(entity.EventKindListed, 2, 200, 17, 0)),
	}))

	snapshot, err := repo.GetListingSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), snapshot.AsOfBlock)
	assert.True(t, snapshot.Incomplete)
	assert.Equal(t, []types.BlockRange{{From: 13, To: 13}}, snapshot.FailedRanges)
	assert.Len(t, snapshot.Listings, 2)

	// reverting past the skipped block forgets it
	require.NoError(t, p.RevertData(ctx, 12))
	snapshot, err = repo.GetListingSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), snapshot.AsOfBlock)
	assert.False(t, snapshot.Incomplete)
	assert.Empty(t, snapshot.FailedRanges)
}

func TestProcessKeepsEventsOfSkippedBlocks(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	live := listingEvent(entity.EventKindListed, 1, 100, 12, 0)
	orphan := listingEvent(entity.EventKindListed, 3, 300, 14, 0)
	orphan.TxHash = common.HexToHash("0xdead")
	for _, ev := range []entity.ListingEvent{live, orphan} {
		_, err := materializer.New(repo).ApplyEvent(ctx, ev)
		require.NoError(t, err)
	}

	// block 12 was skipped, so its live event can't be told apart from an orphan
	batch := newBatch(10, 15, listingEvent(entity.EventKindListed, 2, 200, 13, 0))
	batch.SkippedRanges = []types.BlockRange{{From: 12, To: 12}}
	require.NoError(t, p.Process(ctx, []*types.LogBatch{batch}))

	assert.ElementsMatch(t, []entity.ListingKey{live.Key, entity.NewListingKey(nft, uint256.NewInt(2))}, activeKeys(t, repo))
	events, err := repo.GetEventsByBlockRange(ctx, 10, 15)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint64(12), events[0].BlockNumber)
	assert.Equal(t, uint64(13), events[1].BlockNumber)
}

func TestExcludeRanges(t *testing.T) {
	tc := []struct {
		name     string
		skipped  []types.BlockRange
		expected []types.BlockRange
	}{
		{name: "none", expected: []types.BlockRange{{From: 10, To: 20}}},
		{name: "middle", skipped: []types.BlockRange{{From: 15, To: 15}}, expected: []types.BlockRange{{From: 10, To: 14}, {From: 16, To: 20}}},
		{name: "edges", skipped: []types.BlockRange{{From: 20, To: 20}, {From: 10, To: 11}}, expected: []types.BlockRange{{From: 12, To: 19}}},
		{name: "whole", skipped: []types.BlockRange{{From: 5, To: 25}}, expected: nil},
		{name: "outside", skipped: []types.BlockRange{{From: 1, To: 2}, {From: 30, To: 31}}, expected: []types.BlockRange{{From: 10, To: 20}}},
	}
	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, excludeRanges(types.BlockRange{From: 10, To: 20}, tt.skipped))
		})
	}
}

func TestRevertData(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	require.NoError(t, p.Process(ctx, []*types.LogBatch{
		newBatch(10, 15, listingEvent(entity.EventKindListed, 1, 100, 10, 0)),
		newBatch(16, 20,
			listingEvent(entity.EventKindCanceled, 1, 0, 18, 0),
			listingEvent(entity.EventKindListed, 2, 200, 19, 0),
		),
	}))
	require.Equal(t, []entity.ListingKey{entity.NewListingKey(nft, uint256.NewInt(2))}, activeKeys(t, repo))

	require.NoError(t, p.RevertData(ctx, 16))

	assert.Equal(t, []entity.ListingKey{entity.NewListingKey(nft, uint256.NewInt(1))}, activeKeys(t, repo))
	_, err := repo.GetListing(ctx, entity.NewListingKey(nft, uint256.NewInt(2)))
	assert.ErrorIs(t, err, errs.NotFound)

	current, err := p.CurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), current.Height)

	// reindexing the reverted range gives the same result
	require.NoError(t, p.Process(ctx, []*types.LogBatch{
		newBatch(16, 20,
			listingEvent(entity.EventKindCanceled, 1, 0, 18, 0),
			listingEvent(entity.EventKindListed, 2, 200, 19, 0),
		),
	}))
	assert.Equal(t, []entity.ListingKey{entity.NewListingKey(nft, uint256.NewInt(2))}, activeKeys(t, repo))
}

func TestRevertDataFromGenesis(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)

	require.NoError(t, p.Process(ctx, []*types.LogBatch{
		newBatch(10, 15, listingEvent(entity.EventKindListed, 1, 100, 10, 0)),
	}))
	require.NoError(t, p.RevertData(ctx, -1))

	assert.Empty(t, activeKeys(t, repo))
	current, err := p.CurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlockHeader{Height: 9}, current)
}

func TestRevertDataRollsBackOnRebuildFailure(t *testing.T) {
	ctx := context.Background()
	key := entity.NewListingKey(nft, uint256.NewInt(1))
	dg := mocks.NewMarketplaceDataGateway(t)
	tx := mocks.NewMarketplaceDataGatewayWithTx(t)

	dg.EXPECT().BeginMarketplaceTx(mock.Anything).Return(tx, nil)
	tx.EXPECT().GetKeysWithEventsSinceHeight(mock.Anything, uint64(16)).Return([]entity.ListingKey{key}, nil)
	tx.EXPECT().AddPendingRebuilds(mock.Anything, []entity.ListingKey{key}).Return(nil)
	tx.EXPECT().DeleteEventsSinceHeight(mock.Anything, uint64(16)).Return(nil)
	tx.EXPECT().DeleteIndexedBlocksSinceHeight(mock.Anything, uint64(16)).Return(nil)
	tx.EXPECT().DeleteSkippedRangesSinceHeight(mock.Anything, uint64(16)).Return(nil)
	tx.EXPECT().GetEventsByKey(mock.Anything, key).Return(nil, errs.InternalError)
	tx.EXPECT().Rollback(mock.Anything).Return(nil)

	p := NewProcessor(dg, materializer.New(dg), gazecommon.NetworkLocal, marketplaceAddress, 10, nil)
	err := p.RevertData(ctx, 16)
	assert.ErrorIs(t, err, errs.InternalError)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertNotCalled(t, "RemovePendingRebuilds", mock.Anything, mock.Anything)
}

func TestProcessRollsBackOnCommitFailure(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewMarketplaceDataGateway(t)
	tx := mocks.NewMarketplaceDataGatewayWithTx(t)

	dg.EXPECT().BeginMarketplaceTx(mock.Anything).Return(tx, nil)
	tx.EXPECT().GetEventsByBlockRange(mock.Anything, uint64(10), uint64(15)).Return([]entity.ListingEvent{}, nil)
	tx.EXPECT().CreateIndexedBlock(mock.Anything, mock.Anything).Return(nil)
	tx.EXPECT().Commit(mock.Anything).Return(errs.InternalError)
	tx.EXPECT().Rollback(mock.Anything).Return(nil)

	p := NewProcessor(dg, materializer.New(dg), gazecommon.NetworkLocal, marketplaceAddress, 10, nil)
	err := p.Process(ctx, []*types.LogBatch{newBatch(10, 15)})
	assert.ErrorIs(t, err, errs.InternalError)
}

func TestVerifyStatesResumesRebuilds(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	p := newTestProcessor(repo)
	require.NoError(t, p.Process(ctx, []*types.LogBatch{
		newBatch(10, 15,
			listingEvent(entity.EventKindListed, 1, 100, 10, 0),
			listingEvent(entity.EventKindListed, 2, 200, 12, 0),
		),
	}))

	// a revert of block 12 that stopped after deleting its events
	reverted := entity.NewListingKey(nft, uint256.NewInt(2))
	require.NoError(t, repo.AddPendingRebuilds(ctx, []entity.ListingKey{reverted}))
	require.NoError(t, repo.DeleteEventsSinceHeight(ctx, 12))
	require.Len(t, activeKeys(t, repo), 2)

	require.NoError(t, p.VerifyStates(ctx))

	assert.Equal(t, []entity.ListingKey{entity.NewListingKey(nft, uint256.NewInt(1))}, activeKeys(t, repo))
	pending, err := repo.GetPendingRebuilds(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCurrentBlockBeforeStart(t *testing.T) {
	p := newTestProcessor(memory.New())

	current, err := p.CurrentBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), current.Height)
	assert.Equal(t, common.Hash{}, current.Hash)
}

func TestGetIndexedBlockNotFound(t *testing.T) {
	ctx := context.Background()
	p := newTestProcessor(memory.New())

	_, err := p.GetIndexedBlock(ctx, -1)
	assert.ErrorIs(t, err, errs.NotFound)

	_, err = p.GetIndexedBlock(ctx, 100)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestVerifyStates(t *testing.T) {
	ctx := context.Background()

	t.Run("first run", func(t *testing.T) {
		repo := memory.New()
		require.NoError(t, newTestProcessor(repo).VerifyStates(ctx))

		state, err := repo.GetLatestIndexerState(ctx)
		require.NoError(t, err)
		assert.Equal(t, ClientVersion, state.ClientVersion)
		assert.Equal(t, uint64(31337), state.ChainID)
		assert.Equal(t, marketplaceAddress, state.ContractAddress)
	})

	t.Run("client upgrade", func(t *testing.T) {
		repo := memory.New()
		require.NoError(t, repo.CreateIndexerState(ctx, entity.IndexerState{
			ClientVersion:   "v0.0.1",
			DBVersion:       DBVersion,
			EventVersion:    EventVersion,
			ChainID:         31337,
			ContractAddress: marketplaceAddress,
		}))
		require.NoError(t, newTestProcessor(repo).VerifyStates(ctx))

		state, err := repo.GetLatestIndexerState(ctx)
		require.NoError(t, err)
		assert.Equal(t, ClientVersion, state.ClientVersion)
	})

	mismatches := []struct {
		name  string
		state entity.IndexerState
	}{
		{
			name:  "db version",
			state: entity.IndexerState{ClientVersion: ClientVersion, DBVersion: DBVersion + 1, EventVersion: EventVersion, ChainID: 31337, ContractAddress: marketplaceAddress},
		},
		{
			name:  "event version",
			state: entity.IndexerState{ClientVersion: ClientVersion, DBVersion: DBVersion, EventVersion: EventVersion + 1, ChainID: 31337, ContractAddress: marketplaceAddress},
		},
		{
			name:  "chain",
			state: entity.IndexerState{ClientVersion: ClientVersion, DBVersion: DBVersion, EventVersion: EventVersion, ChainID: 1, ContractAddress: marketplaceAddress},
		},
		{
			name:  "contract",
			state: entity.IndexerState{ClientVersion: ClientVersion, DBVersion: DBVersion, EventVersion: EventVersion, ChainID: 31337, ContractAddress: nft},
		},
	}
	for _, tc := range mismatches {
		t.Run(tc.name, func(t *testing.T) {
			repo := memory.New()
			require.NoError(t, repo.CreateIndexerState(ctx, tc.state))
			err := newTestProcessor(repo).VerifyStates(ctx)
			assert.ErrorIs(t, err, errs.ConflictSetting)
		})
	}
}

func TestShutdownRunsCleanups(t *testing.T) {
	repo := memory.New()
	var called int
	p := NewProcessor(repo, materializer.New(repo), gazecommon.NetworkLocal, marketplaceAddress, 0, nil,
		func(context.Context) error { called++; return nil },
		func(context.Context) error { called++; return nil },
	)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, 2, called)
}
