package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/eventsource"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/memory"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nft    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller = common.HexToAddress("0x0000000000000000000000000000000000000051")
)

func listedEvent(token, price, block uint64) entity.ListingEvent {
	return entity.ListingEvent{
		Kind:        entity.EventKindListed,
		Key:         entity.NewListingKey(nft, uint256.NewInt(token)),
		Account:     seller,
		Price:       *uint256.NewInt(price),
		BlockNumber: block,
	}
}

func TestMaterialized(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	src := NewMaterialized(repo)

	_, err := src.GetActiveListings(ctx)
	assert.ErrorIs(t, err, errs.NotInitialized)

	require.NoError(t, repo.PutListing(ctx, &entity.Listing{
		Key:    entity.NewListingKey(nft, uint256.NewInt(1)),
		Price:  *uint256.NewInt(5),
		Active: true,
	}))
	require.NoError(t, repo.CreateIndexedBlock(ctx, entity.IndexedBlock{Height: 42}))

	snapshot, err := src.GetActiveListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, NameMaterialized, snapshot.Source)
	assert.Equal(t, uint64(42), snapshot.AsOfBlock)
	assert.Len(t, snapshot.Listings, 1)
	assert.False(t, snapshot.Incomplete)

	require.NoError(t, repo.CreateSkippedRange(ctx, types.BlockRange{From: 40, To: 40}))
	snapshot, err = src.GetActiveListings(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.Incomplete)
	assert.Equal(t, []types.BlockRange{{From: 40, To: 40}}, snapshot.FailedRanges)
}

type fakeEvents struct {
	mu     sync.Mutex
	events eventsource.Events
	err    error
	ranges [][2]uint64
}

func (f *fakeEvents) FetchAll(ctx context.Context, from, to, maxChunkSize uint64) (eventsource.Events, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ranges = append(f.ranges, [2]uint64{from, to})
	return f.events, f.err
}

type fakeHead uint64

func (h fakeHead) LatestConfirmedBlock(ctx context.Context) (uint64, bool, error) {
	return uint64(h), true, nil
}

func TestLogScan(t *testing.T) {
	ctx := context.Background()
	events := &fakeEvents{events: eventsource.Events{
		Listed: []entity.ListingEvent{listedEvent(1, 100, 5), listedEvent(2, 50, 6)},
		Bought: []entity.ListingEvent{{Kind: entity.EventKindBought, Key: entity.NewListingKey(nft, uint256.NewInt(1)), BlockNumber: 7}},
	}}
	src := NewLogScan(events, fakeHead(1000), LogScanConfig{StartBlock: 10, ScanBlocks: 100, ChunkSize: 10})

	_, err := src.GetActiveListings(ctx)
	assert.ErrorIs(t, err, errs.NotInitialized)

	_, err = src.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{901, 1000}, events.ranges[0])

	snapshot, err := src.GetActiveListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), snapshot.AsOfBlock)
	require.Len(t, snapshot.Listings, 1)
	assert.Equal(t, uint64(2), snapshot.Listings[0].Key.TokenID.Uint64())
}

func TestLogScanWindowFromStartBlock(t *testing.T) {
	events := &fakeEvents{}
	src := NewLogScan(events, fakeHead(50), LogScanConfig{StartBlock: 10, ScanBlocks: 100})
	_, err := src.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{10, 50}, events.ranges[0])

	src = NewLogScan(events, fakeHead(5), LogScanConfig{StartBlock: 10})
	_, err = src.Refresh(context.Background())
	assert.ErrorIs(t, err, errs.NotInitialized)
}

func TestLogScanPartial(t *testing.T) {
	failed := []types.BlockRange{{From: 40, To: 40}}
	events := &fakeEvents{
		events: eventsource.Events{Listed: []entity.ListingEvent{listedEvent(1, 100, 5)}},
		err:    &eventsource.PartialFetchError{FailedRanges: failed, Err: errs.RangeTooLarge},
	}
	src := NewLogScan(events, fakeHead(100), LogScanConfig{})

	snapshot, err := src.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, snapshot.Incomplete)
	assert.Equal(t, failed, snapshot.FailedRanges)
	assert.Len(t, snapshot.Listings, 1)
}

func TestLogScanFailure(t *testing.T) {
	events := &fakeEvents{err: errors.Mark(errors.New("down"), errs.Transient)}
	src := NewLogScan(events, fakeHead(100), LogScanConfig{})

	_, err := src.Refresh(context.Background())
	assert.True(t, errors.Is(err, errs.Transient))
	_, err = src.GetActiveListings(context.Background())
	assert.ErrorIs(t, err, errs.NotInitialized)
}

func TestLogScanRunStopsOnCancel(t *testing.T) {
	events := &fakeEvents{}
	src := NewLogScan(events, fakeHead(100), LogScanConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, time.Millisecond) }()

	require.Eventually(t, func() bool {
		_, err := src.GetActiveListings(context.Background())
		return err == nil
	}, 2*time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func newSubgraphServer(t *testing.T, handler func(req graphQLRequest) any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(handler(req)))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSubgraph(t *testing.T) {
	records := []map[string]any{
		{"id": "a-1", "nftContract": nft.Hex(), "tokenId": "1", "price": "1000000000000000000", "seller": seller.Hex(), "timestamp": "1700000000", "blockNumber": "12"},
		{"id": "a-2", "nftContract": nft.Hex(), "tokenId": "2", "price": "0", "seller": seller.Hex(), "timestamp": "1700000001", "blockNumber": "13"},
		{"id": "a-3", "nftContract": nft.Hex(), "tokenId": "3", "price": "7", "seller": seller.Hex(), "timestamp": "1700000002", "blockNumber": "14"},
	}
	server := newSubgraphServer(t, func(req graphQLRequest) any {
		first := int(req.Variables["first"].(float64))
		skip := int(req.Variables["skip"].(float64))
		end := min(skip+first, len(records))
		page := records[min(skip, len(records)):end]
		return map[string]any{
			"data": map[string]any{
				"listings": page,
				"_meta":    map[string]any{"block": map[string]any{"number": 99}},
			},
		}
	})

	src, err := NewSubgraph(server.URL, time.Second)
	require.NoError(t, err)
	src.pageSize = 2

	snapshot, err := src.GetActiveListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, NameSubgraph, snapshot.Source)
	assert.Equal(t, uint64(99), snapshot.AsOfBlock)
	require.Len(t, snapshot.Listings, 2)
	assert.Equal(t, "1000000000000000000", snapshot.Listings[0].Price.Dec())
	assert.Equal(t, uint64(12), snapshot.Listings[0].ListedAtBlock)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), snapshot.Listings[0].Timestamp)
	assert.Equal(t, uint64(3), snapshot.Listings[1].Key.TokenID.Uint64())
}

func TestSubgraphErrors(t *testing.T) {
	t.Run("graphql error", func(t *testing.T) {
		server := newSubgraphServer(t, func(graphQLRequest) any {
			return map[string]any{"errors": []map[string]any{{"message": "indexing_error"}}}
		})
		src, err := NewSubgraph(server.URL, time.Second)
		require.NoError(t, err)
		_, err = src.GetActiveListings(context.Background())
		assert.ErrorContains(t, err, "indexing_error")
	})
	t.Run("not indexed", func(t *testing.T) {
		server := newSubgraphServer(t, func(graphQLRequest) any {
			return map[string]any{"data": map[string]any{"listings": []any{}}}
		})
		src, err := NewSubgraph(server.URL, time.Second)
		require.NoError(t, err)
		_, err = src.GetActiveListings(context.Background())
		assert.ErrorIs(t, err, errs.NotInitialized)
	})
	t.Run("unreachable", func(t *testing.T) {
		src, err := NewSubgraph("http://127.0.0.1:1", time.Second)
		require.NoError(t, err)
		_, err = src.GetActiveListings(context.Background())
		assert.True(t, errors.Is(err, errs.Transient))
	})
}
