package indexer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

const (
	maxReorgLookBack = 1000

	// DefaultPollingInterval is the default polling interval for the indexer polling worker
	DefaultPollingInterval = 12 * time.Second
)

// Indexer generic indexer for fetching and processing data
type Indexer[T Input] struct {
	Processor       Processor[T]
	Datasource      datasources.Datasource[T]
	PollingInterval time.Duration
	currentBlock    types.BlockHeader

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// New create new generic indexer
func New[T Input](processor Processor[T], datasource datasources.Datasource[T], pollingInterval time.Duration) *Indexer[T] {
	if pollingInterval <= 0 {
		pollingInterval = DefaultPollingInterval
	}
	return &Indexer[T]{
		Processor:       processor,
		Datasource:      datasource,
		PollingInterval: pollingInterval,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (i *Indexer[T]) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer[T]) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

func (i *Indexer[T]) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		close(i.quit)
		select {
		case <-i.done:
		case <-time.After(180 * time.Second):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

func (i *Indexer[T]) Run(ctx context.Context) (err error) {
	defer close(i.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("processor", i.Processor.Name()),
		slog.String("datasource", i.Datasource.Name()),
	)

	if err := i.Processor.VerifyStates(ctx); err != nil {
		return errors.Wrap(err, "failed to verify states")
	}

	i.currentBlock, err = i.Processor.CurrentBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "can't init state, failed to get indexer current block")
	}

	ticker := time.NewTicker(i.PollingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-i.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping indexer")
			if err := i.Processor.Shutdown(ctx); err != nil {
				logger.ErrorContext(ctx, "Failed to shutdown processor", err)
				return errors.Wrap(err, "processor shutdown failed")
			}
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := i.process(ctx); err != nil {
				if !errors.Is(err, errs.Transient) {
					logger.ErrorContext(ctx, "Indexer failed while processing", err)
					return errors.Wrap(err, "process failed")
				}
				logger.WarnContext(ctx, "Transient failure while processing, retrying on next polling interval", slogx.Error(err))
			}
			logger.DebugContext(ctx, "Waiting for next polling interval")
		}
	}
}

func (i *Indexer[T]) process(ctx context.Context) (err error) {
	from, to := i.currentBlock.Height+1, int64(-1)

	logger.DebugContext(ctx, "Start fetching input data", slog.Int64("from", from))
	ch := make(chan []T)
	subscription, err := i.Datasource.FetchAsync(ctx, from, to, ch)
	if err != nil {
		return errors.Wrap(err, "failed to fetch input data")
	}
	defer subscription.Unsubscribe()

	for {
		select {
		case <-i.quit:
			return nil
		case inputs := <-ch:
			if len(inputs) == 0 {
				continue
			}

			first := inputs[0]
			startAt := time.Now()
			ctx := logger.WithContext(ctx,
				slogx.Int64("from", first.FromHeight()),
				slogx.Int64("to", inputs[len(inputs)-1].BlockHeader().Height),
			)

			// validate reorg from first input, nothing to compare before the first indexed block
			if i.currentBlock.Hash != (common.Hash{}) && first.PrevBlockHash() != i.currentBlock.Hash {
				logger.WarnContext(ctx, "Detected chain reorganization. Searching for fork point...",
					slogx.String("event", "reorg_detected"),
					slogx.Stringer("current_hash", i.currentBlock.Hash),
					slogx.Stringer("expected_hash", first.PrevBlockHash()),
				)
				return errors.WithStack(i.revertToForkPoint(ctx))
			}

			// validate is input is continuous and no reorg
			for n := 1; n < len(inputs); n++ {
				header := inputs[n].BlockHeader()
				prevHeader := inputs[n-1].BlockHeader()
				if inputs[n].FromHeight() != prevHeader.Height+1 {
					return errors.Wrapf(errs.InternalError, "input is not continuous, input[%d] height: %d, input[%d] from height: %d", n-1, prevHeader.Height, n, inputs[n].FromHeight())
				}
				if inputs[n].PrevBlockHash() != prevHeader.Hash {
					logger.WarnContext(ctx, "Chain Reorganization occurred in the middle of batch fetching inputs, need to try to fetch again",
						slogx.Int64("height", header.Height),
					)
					return nil
				}
			}

			ctx = logger.WithContext(ctx, slog.Int("total_inputs", len(inputs)))

			logger.DebugContext(ctx, "Processing inputs")
			if err := i.Processor.Process(ctx, inputs); err != nil {
				return errors.WithStack(err)
			}

			i.currentBlock = inputs[len(inputs)-1].BlockHeader()

			logger.InfoContext(ctx, "Processed inputs successfully",
				slogx.String("event", "processed_inputs"),
				slogx.Int64("current_block", i.currentBlock.Height),
				slogx.Duration("duration", time.Since(startAt)),
			)
		case <-subscription.Done():
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "context done")
			}
			select {
			case err := <-subscription.Err():
				if err != nil {
					return errors.Wrap(err, "got error while fetch async")
				}
			default:
			}
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case err := <-subscription.Err():
			if err != nil {
				return errors.Wrap(err, "got error while fetch async")
			}
		}
	}
}

// revertToForkPoint walks back the indexed blocks until one matches the chain,
// then reverts everything indexed after it.
func (i *Indexer[T]) revertToForkPoint(ctx context.Context) error {
	var (
		start        = time.Now()
		targetHeight = i.currentBlock.Height - 1
		forkPoint    = types.BlockHeader{Height: -1}
	)
	for n := 0; n < maxReorgLookBack && targetHeight >= 0; n++ {
		indexedHeader, err := i.Processor.GetIndexedBlock(ctx, targetHeight)
		if err != nil {
			if errors.Is(err, errs.NotFound) {
				return errors.WithStack(i.revertAll(ctx))
			}
			return errors.Wrapf(err, "failed to get indexed block, height: %d", targetHeight)
		}

		remoteHeader, err := i.Datasource.GetBlockHeader(ctx, indexedHeader.Height)
		if err != nil {
			return errors.Wrapf(err, "failed to get remote block header, height: %d", indexedHeader.Height)
		}

		if indexedHeader.Hash == remoteHeader.Hash {
			forkPoint = remoteHeader
			break
		}
		targetHeight = indexedHeader.Height - 1
	}

	if forkPoint.Height < 0 {
		return errors.Wrap(errs.SomethingWentWrong, "reorg look back limit reached")
	}

	logger.InfoContext(ctx, "Found reorg fork point, starting to revert data...",
		slogx.String("event", "reorg_forkpoint"),
		slogx.Int64("since", forkPoint.Height+1),
		slogx.Int64("total_blocks", i.currentBlock.Height-forkPoint.Height),
		slogx.Duration("search_duration", time.Since(start)),
	)

	start = time.Now()
	if err := i.Processor.RevertData(ctx, forkPoint.Height+1); err != nil {
		return errors.Wrap(err, "failed to revert data")
	}

	// next round fetches again from the fork point
	i.currentBlock = forkPoint
	logger.InfoContext(ctx, "Fixing chain reorganization completed",
		slogx.Int64("current_block", i.currentBlock.Height),
		slogx.Duration("duration", time.Since(start)),
	)
	return nil
}

// revertAll handles a fork older than every indexed block.
func (i *Indexer[T]) revertAll(ctx context.Context) error {
	logger.WarnContext(ctx, "Fork point is older than the first indexed block, reverting all data",
		slogx.String("event", "reorg_revert_all"),
	)
	if err := i.Processor.RevertData(ctx, 0); err != nil {
		return errors.Wrap(err, "failed to revert data")
	}
	current, err := i.Processor.CurrentBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get indexer current block")
	}
	i.currentBlock = current
	return nil
}
