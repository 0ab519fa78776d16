package watcher

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

var (
	market = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	nft    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller = common.HexToAddress("0x0000000000000000000000000000000000000051")
)

type fakeSub struct {
	errc chan error
	once sync.Once
}

func newFakeSub() *fakeSub {
	return &fakeSub{errc: make(chan error, 1)}
}

func (s *fakeSub) Unsubscribe() {
	s.once.Do(func() { close(s.errc) })
}

func (s *fakeSub) Err() <-chan error {
	return s.errc
}

type fakeSubscriber struct {
	mu    sync.Mutex
	err   error
	ch    chan<- ethtypes.Log
	subs  []*fakeSub
	calls atomic.Int32
}

func (f *fakeSubscriber) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- ethtypes.Log) (ethereum.Subscription, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = ch
	sub := newFakeSub()
	f.subs = append(f.subs, sub)
	return sub, nil
}

func (f *fakeSubscriber) push(logs ...ethtypes.Log) {
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	for _, log := range logs {
		ch <- log
	}
}

type fakePoller struct {
	mu     sync.Mutex
	heads  []uint64
	logs   []ethtypes.Log
	ranges [][2]uint64
	reject uint64 // block the node refuses to serve, 0 for none
}

func (p *fakePoller) LatestConfirmedBlock(ctx context.Context) (uint64, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	head := p.heads[0]
	if len(p.heads) > 1 {
		p.heads = p.heads[1:]
	}
	return head, true, nil
}

func (p *fakePoller) FetchLogs(ctx context.Context, query ethereum.FilterQuery, from, to, maxChunkSize uint64) ([]ethtypes.Log, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ranges = append(p.ranges, [2]uint64{from, to})
	var out []ethtypes.Log
	for _, log := range p.logs {
		if log.BlockNumber >= from && log.BlockNumber <= to && log.BlockNumber != p.reject {
			out = append(out, log)
		}
	}
	if p.reject != 0 && p.reject >= from && p.reject <= to {
		return out, &datasources.PartialFetchError{
			Logs:         out,
			FailedRanges: []types.BlockRange{{From: p.reject, To: p.reject}},
			Err:          errors.Wrap(errs.RangeTooLarge, "1 blocks rejected by node"),
		}
	}
	return out, nil
}

func logOf(kind entity.EventKind, token uint64, block uint64) ethtypes.Log {
	price := uint64(0)
	if kind != entity.EventKindCanceled {
		price = 100
	}
	return contract.EncodeListingEvent(market, entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(nft, uint256.NewInt(token)),
		Account:     seller,
		Price:       *uint256.NewInt(price),
		BlockNumber: block,
	})
}

type collector struct {
	mu     sync.Mutex
	events []entity.ListingEvent
	notify chan struct{}
}

func newCollector() *collector {
	return &collector{notify: make(chan struct{}, 64)}
}

func (c *collector) onEvent(ctx context.Context, ev entity.ListingEvent) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
	c.notify <- struct{}{}
}

func (c *collector) wait(t *testing.T, n int) []entity.ListingEvent {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-c.notify:
		case <-time.After(waitTimeout):
			t.Fatalf("timed out waiting for event %d", i+1)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.ListingEvent(nil), c.events...)
}

func waitDone(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case <-sub.Done():
	case <-time.After(waitTimeout):
		t.Fatal("subscription did not stop")
	}
}

func TestSubscribeDeliversInOrder(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{})
	c := newCollector()

	sub, err := w.Subscribe(context.Background(), c.onEvent)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	removed := logOf(entity.EventKindListed, 2, 11)
	removed.Removed = true
	malformed := logOf(entity.EventKindListed, 3, 11)
	malformed.Topics = malformed.Topics[:1]

	subscriber.push(
		logOf(entity.EventKindListed, 1, 10),
		removed,
		malformed,
		logOf(entity.EventKindCanceled, 1, 12),
		logOf(entity.EventKindBought, 4, 13),
	)

	events := c.wait(t, 3)
	require.Len(t, events, 3)
	assert.Equal(t, entity.EventKindListed, events[0].Kind)
	assert.Equal(t, entity.EventKindCanceled, events[1].Kind)
	assert.Equal(t, entity.EventKindBought, events[2].Kind)
}

func TestUnsubscribeInsideCallback(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{})

	var (
		sub   *Subscription
		calls atomic.Int32
	)
	sub, err := w.Subscribe(context.Background(), func(ctx context.Context, ev entity.ListingEvent) {
		calls.Add(1)
		sub.Unsubscribe()
		sub.Unsubscribe()
	})
	require.NoError(t, err)

	subscriber.push(logOf(entity.EventKindListed, 1, 10), logOf(entity.EventKindListed, 2, 11))
	waitDone(t, sub)

	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, sub.Err())
}

func TestUnsubscribeIdempotent(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{})
	c := newCollector()

	sub, err := w.Subscribe(context.Background(), c.onEvent)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub.Unsubscribe()
		}()
	}
	wg.Wait()
	waitDone(t, sub)
	sub.Unsubscribe()

	assert.NoError(t, sub.Err())
	assert.NotEqual(t, sub.ID().String(), "")
}

func TestResubscribeAfterDrop(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{MaxBackoff: 20 * time.Millisecond})
	c := newCollector()

	sub, err := w.Subscribe(context.Background(), c.onEvent)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	subscriber.mu.Lock()
	subscriber.subs[0].errc <- errors.New("connection reset")
	subscriber.mu.Unlock()

	require.Eventually(t, func() bool { return subscriber.calls.Load() >= 2 }, waitTimeout, 5*time.Millisecond)
	subscriber.push(logOf(entity.EventKindListed, 1, 10))
	assert.Len(t, c.wait(t, 1), 1)
}

func TestPollingFallback(t *testing.T) {
	subscriber := &fakeSubscriber{err: rpc.ErrNotificationsUnsupported}
	poller := &fakePoller{
		heads: []uint64{10, 12, 12, 15},
		logs: []ethtypes.Log{
			logOf(entity.EventKindListed, 1, 9), // before the watcher started
			logOf(entity.EventKindListed, 2, 11),
			logOf(entity.EventKindCanceled, 2, 14),
		},
	}
	w := New(subscriber, poller, market, Config{PollInterval: 5 * time.Millisecond})
	c := newCollector()

	sub, err := w.Subscribe(context.Background(), c.onEvent)
	require.NoError(t, err)

	events := c.wait(t, 2)
	sub.Unsubscribe()
	waitDone(t, sub)

	require.Len(t, events, 2)
	assert.Equal(t, uint64(11), events[0].BlockNumber)
	assert.Equal(t, entity.EventKindCanceled, events[1].Kind)

	poller.mu.Lock()
	defer poller.mu.Unlock()
	assert.Equal(t, [2]uint64{11, 12}, poller.ranges[0])
	assert.Equal(t, [2]uint64{13, 15}, poller.ranges[1])
}

func TestPollingSkipsRejectedBlock(t *testing.T) {
	subscriber := &fakeSubscriber{err: rpc.ErrNotificationsUnsupported}
	poller := &fakePoller{
		heads: []uint64{10, 15, 18},
		logs: []ethtypes.Log{
			logOf(entity.EventKindListed, 1, 12),
			logOf(entity.EventKindListed, 2, 13),
			logOf(entity.EventKindListed, 3, 17),
		},
		reject: 12,
	}
	w := New(subscriber, poller, market, Config{PollInterval: 5 * time.Millisecond})
	c := newCollector()

	sub, err := w.Subscribe(context.Background(), c.onEvent)
	require.NoError(t, err)

	events := c.wait(t, 2)
	sub.Unsubscribe()
	waitDone(t, sub)

	require.Len(t, events, 2)
	assert.Equal(t, uint64(13), events[0].BlockNumber)
	assert.Equal(t, uint64(17), events[1].BlockNumber)

	poller.mu.Lock()
	defer poller.mu.Unlock()
	assert.Equal(t, [2]uint64{11, 15}, poller.ranges[0])
	assert.Equal(t, [2]uint64{16, 18}, poller.ranges[1])
}

func TestUnsubscribeWaitsForStartedDelivery(t *testing.T) {
	s := newSubscription(func() {})

	// a delivery that passed its check but hasn't called back yet
	s.deliverMu.Lock()
	returned := make(chan struct{})
	go func() {
		s.Unsubscribe()
		close(returned)
	}()

	select {
	case <-returned:
		t.Fatal("Unsubscribe returned during a delivery")
	case <-time.After(50 * time.Millisecond):
	}
	s.deliverMu.Unlock()

	select {
	case <-returned:
	case <-time.After(waitTimeout):
		t.Fatal("Unsubscribe did not return")
	}
	assert.False(t, s.deliver(func() { t.Error("callback started after Unsubscribe") }))
}

func TestNoCallbackAfterUnsubscribe(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{})

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	sub, err := w.Subscribe(context.Background(), func(ctx context.Context, ev entity.ListingEvent) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
	})
	require.NoError(t, err)

	subscriber.push(logOf(entity.EventKindListed, 1, 10))
	select {
	case <-entered:
	case <-time.After(waitTimeout):
		t.Fatal("callback not called")
	}

	// returns while the first callback is still running
	sub.Unsubscribe()
	subscriber.push(logOf(entity.EventKindListed, 2, 11), logOf(entity.EventKindListed, 3, 12))
	close(release)
	waitDone(t, sub)

	assert.Equal(t, int32(1), calls.Load())
}

func TestSubscribeError(t *testing.T) {
	subscriber := &fakeSubscriber{err: errors.New("dial failed")}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{})

	_, err := w.Subscribe(context.Background(), func(context.Context, entity.ListingEvent) {})
	assert.Error(t, err)
}

func TestContextCancelStopsDelivery(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber, &fakePoller{heads: []uint64{0}}, market, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := w.Subscribe(ctx, func(context.Context, entity.ListingEvent) {})
	require.NoError(t, err)

	cancel()
	waitDone(t, sub)
	assert.NoError(t, sub.Err())
}
