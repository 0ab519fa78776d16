package watcher

import (
	"context"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/eventsource"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

const (
	DefaultPollInterval = 12 * time.Second
	DefaultChunkSize    = 100
	DefaultMaxBackoff   = 30 * time.Second
	logBufferSize       = 256
)

// LogSubscriber opens push subscriptions for logs. *ethclient.Client implements it.
type LogSubscriber interface {
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- ethtypes.Log) (ethereum.Subscription, error)
}

// Poller reads confirmed logs. *datasources.EVMLogs implements it.
type Poller interface {
	FetchLogs(ctx context.Context, query ethereum.FilterQuery, from, to, maxChunkSize uint64) ([]ethtypes.Log, error)
	LatestConfirmedBlock(ctx context.Context) (uint64, bool, error)
}

var _ Poller = (*datasources.EVMLogs)(nil)

type Config struct {
	// PollInterval is used when the node can't push notifications.
	PollInterval time.Duration
	ChunkSize    uint64

	// MaxBackoff caps the delay between resubscription attempts.
	MaxBackoff time.Duration
}

// Watcher delivers marketplace events as they are emitted.
type Watcher struct {
	subscriber LogSubscriber
	poller     Poller
	address    common.Address
	config     Config
}

func New(subscriber LogSubscriber, poller Poller, address common.Address, config Config) *Watcher {
	config.PollInterval = utils.Default(config.PollInterval, DefaultPollInterval)
	config.ChunkSize = utils.Default(config.ChunkSize, DefaultChunkSize)
	config.MaxBackoff = utils.Default(config.MaxBackoff, DefaultMaxBackoff)
	return &Watcher{
		subscriber: subscriber,
		poller:     poller,
		address:    address,
		config:     config,
	}
}

// Subscribe starts delivering Listed, Canceled and Bought events to onEvent, in the order
// the node emits them. Delivery is at least once: onEvent must tolerate duplicates.
// Logs removed by a reorg and malformed logs are not delivered.
//
// When the node doesn't support push notifications, confirmed blocks are polled instead.
// onEvent is called from a single goroutine. Delivery stops on Unsubscribe or when ctx is done.
func (w *Watcher) Subscribe(ctx context.Context, onEvent func(context.Context, entity.ListingEvent)) (*Subscription, error) {
	query := contract.FilterQuery(w.address)
	logs := make(chan ethtypes.Log, logBufferSize)

	runCtx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)
	runCtx = logger.WithContext(runCtx, slogx.Stringer("subscription_id", sub.ID()))

	first, err := w.subscriber.SubscribeFilterLogs(ctx, query, logs)
	switch {
	case err == nil:
		logger.InfoContext(runCtx, "Watching marketplace events", slogx.String("mode", "subscription"))
		go func() {
			sub.finish(w.stream(runCtx, sub, query, first, logs, onEvent))
		}()
	case errors.Is(err, rpc.ErrNotificationsUnsupported):
		next, err := w.startBlock(ctx)
		if err != nil {
			cancel()
			return nil, errors.WithStack(err)
		}
		logger.InfoContext(runCtx, "Node doesn't support subscriptions, polling marketplace events",
			slogx.String("mode", "polling"),
			slogx.Uint64("from_block", next),
			slogx.Duration("interval", w.config.PollInterval),
		)
		go func() {
			sub.finish(w.poll(runCtx, sub, query, next, onEvent))
		}()
	default:
		cancel()
		return nil, errors.Wrap(err, "failed to subscribe to marketplace logs")
	}
	return sub, nil
}

func (w *Watcher) stream(ctx context.Context, sub *Subscription, query ethereum.FilterQuery, first ethereum.Subscription, logs chan ethtypes.Log, onEvent func(context.Context, entity.ListingEvent)) error {
	resub := event.ResubscribeErr(w.config.MaxBackoff, func(subCtx context.Context, lastErr error) (event.Subscription, error) {
		if first != nil {
			s := first
			first = nil
			return s, nil
		}
		logger.WarnContext(ctx, "Log subscription dropped, resubscribing", slogx.Error(lastErr))
		return w.subscriber.SubscribeFilterLogs(subCtx, query, logs)
	})
	defer resub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-resub.Err():
			if ok && err != nil {
				return errors.Wrap(err, "log subscription failed")
			}
			return nil
		case log := <-logs:
			if !w.deliverLogs(ctx, sub, []ethtypes.Log{log}, onEvent) {
				return nil
			}
		}
	}
}

func (w *Watcher) startBlock(ctx context.Context) (uint64, error) {
	latest, ok, err := w.poller.LatestConfirmedBlock(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block")
	}
	if !ok {
		return 0, nil
	}
	return latest + 1, nil
}

func (w *Watcher) poll(ctx context.Context, sub *Subscription, query ethereum.FilterQuery, next uint64, onEvent func(context.Context, entity.ListingEvent)) error {
	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		latest, ok, err := w.poller.LatestConfirmedBlock(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			logger.WarnContext(ctx, "Failed to get latest block, retrying next poll", slogx.Error(err))
		case ok && latest >= next:
			logs, err := w.poller.FetchLogs(ctx, query, next, latest, w.config.ChunkSize)
			if partial, ok := datasources.AsPartialFetchError(err); ok && !errors.Is(err, errs.Transient) {
				// a block the node refuses to serve would otherwise stall polling forever
				logger.WarnContext(ctx, "Node rejected single blocks, skipping their logs",
					slogx.Any("skipped", partial.FailedRanges),
				)
				logs, err = partial.Logs, nil
			}
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// the whole range is retried, so logs before the failure are delivered again
				logger.WarnContext(ctx, "Failed to poll marketplace logs, retrying next poll",
					slogx.Error(err),
					slogx.Uint64("from", next),
					slogx.Uint64("to", latest),
				)
				break
			}
			if !w.deliverLogs(ctx, sub, logs, onEvent) {
				return nil
			}
			next = latest + 1
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// deliverLogs returns false once the subscription is closed.
func (w *Watcher) deliverLogs(ctx context.Context, sub *Subscription, logs []ethtypes.Log, onEvent func(context.Context, entity.ListingEvent)) bool {
	for _, ev := range eventsource.DecodeLogs(ctx, logs) {
		ev := ev
		if !sub.deliver(func() { onEvent(ctx, ev) }) {
			return false
		}
	}
	return true
}
