package eventsource

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/listing"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	market = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	nft    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller = common.HexToAddress("0x0000000000000000000000000000000000000051")
	buyer  = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

// fakeFetcher serves logs by topic0. Kinds in failing return a partial error.
type fakeFetcher struct {
	logs    []ethtypes.Log
	failing map[common.Hash]types.BlockRange
	broken  error
}

func (f *fakeFetcher) FetchLogs(ctx context.Context, query ethereum.FilterQuery, from, to, maxChunkSize uint64) ([]ethtypes.Log, error) {
	if f.broken != nil {
		return nil, f.broken
	}
	topics := make(map[common.Hash]bool)
	for _, topic := range query.Topics[0] {
		topics[topic] = true
	}
	var out []ethtypes.Log
	for _, log := range f.logs {
		if topics[log.Topics[0]] && log.BlockNumber >= from && log.BlockNumber <= to {
			out = append(out, log)
		}
	}
	for topic, failed := range f.failing {
		if topics[topic] {
			return out, &datasources.PartialFetchError{
				Logs:         out,
				FailedRanges: []types.BlockRange{failed},
				Err:          errors.Mark(errors.New("boom"), errs.Transient),
			}
		}
	}
	return out, nil
}

func event(kind entity.EventKind, token uint64, account common.Address, price uint64, block uint64, logIndex uint) entity.ListingEvent {
	return entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(nft, uint256.NewInt(token)),
		Account:     account,
		Price:       *uint256.NewInt(price),
		BlockNumber: block,
		LogIndex:    logIndex,
	}
}

func scenarioLogs() []ethtypes.Log {
	events := []entity.ListingEvent{
		event(entity.EventKindListed, 1, seller, 100, 5, 0),
		event(entity.EventKindListed, 2, seller, 50, 6, 0),
		event(entity.EventKindBought, 1, buyer, 100, 7, 0),
		event(entity.EventKindCanceled, 3, seller, 0, 8, 0),
	}
	logs := make([]ethtypes.Log, 0, len(events))
	for _, ev := range events {
		logs = append(logs, contract.EncodeListingEvent(market, ev))
	}
	return logs
}

func TestFetchEvents(t *testing.T) {
	source := New(&fakeFetcher{logs: scenarioLogs()}, market)

	listed, err := source.FetchEvents(context.Background(), entity.EventKindListed, 0, 100, 10)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, ev := range listed {
		assert.Equal(t, entity.EventKindListed, ev.Kind)
	}

	_, err = source.FetchEvents(context.Background(), entity.EventKind(0), 0, 100, 10)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestFetchAllReconciles(t *testing.T) {
	source := New(&fakeFetcher{logs: scenarioLogs()}, market)

	events, err := source.FetchAll(context.Background(), 0, 100, 10)
	require.NoError(t, err)
	assert.Len(t, events.Listed, 2)
	assert.Len(t, events.Bought, 1)
	assert.Len(t, events.Canceled, 1)

	active := listing.Reconcile(events.Listed, events.Canceled, events.Bought)
	require.Len(t, active, 1)
	assert.Contains(t, active, entity.NewListingKey(nft, uint256.NewInt(2)))
}

func TestFetchAllPartial(t *testing.T) {
	fetcher := &fakeFetcher{
		logs: scenarioLogs(),
		failing: map[common.Hash]types.BlockRange{
			contract.Topic(entity.EventKindBought):   {From: 7, To: 100},
			contract.Topic(entity.EventKindCanceled): {From: 50, To: 100},
		},
	}
	source := New(fetcher, market)

	events, err := source.FetchAll(context.Background(), 0, 100, 10)
	require.Error(t, err)
	partial, ok := AsPartialFetchError(err)
	require.True(t, ok)
	assert.Equal(t, []types.BlockRange{{From: 7, To: 100}}, partial.FailedRanges)
	assert.True(t, errors.Is(err, errs.Transient))
	assert.Len(t, events.Listed, 2)
	assert.Len(t, partial.Events, len(events.All()))
}

func TestFetchAllFailure(t *testing.T) {
	source := New(&fakeFetcher{broken: errors.Wrap(errs.InvalidArgument, "bad range")}, market)
	_, err := source.FetchAll(context.Background(), 0, 100, 10)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, ok := AsPartialFetchError(err)
	assert.False(t, ok)
}

func TestDecodeLogsSkipsBadLogs(t *testing.T) {
	logs := scenarioLogs()
	malformed := logs[0]
	malformed.Topics = malformed.Topics[:2]
	removed := logs[1]
	removed.Removed = true

	events := DecodeLogs(context.Background(), []ethtypes.Log{logs[3], malformed, removed, logs[2]})
	require.Len(t, events, 2)
	assert.Equal(t, entity.EventKindBought, events[0].Kind)
	assert.Equal(t, entity.EventKindCanceled, events[1].Kind)
}
