package datasources

import (
	"context"
	"math/big"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/subscription"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultChunkSize   = 100
	DefaultConcurrency = 4
)

// LogClient is the part of the node JSON-RPC API used to read logs. *ethclient.Client implements it.
type LogClient interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethtypes.Log, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Make sure to implement the Datasource interface
var _ Datasource[*types.LogBatch] = (*EVMLogs)(nil)

type EVMLogsConfig struct {
	// Query selects the logs streamed by Fetch and FetchAsync. Block range fields are ignored.
	Query ethereum.FilterQuery

	// ChunkSize is the number of blocks per batch. Default is 100.
	ChunkSize uint64

	// MaxBlockRange is the node's eth_getLogs range limit, 0 if unknown.
	// No call asks for more blocks than this.
	MaxBlockRange uint64

	// Confirmations is the number of blocks behind the chain head to stay at.
	Confirmations uint64

	// Concurrency is the number of batches fetched in parallel. Default is 4.
	Concurrency int
}

// EVMLogs reads contract logs from an EVM node with eth_getLogs.
type EVMLogs struct {
	client LogClient
	config EVMLogsConfig
}

func NewEVMLogs(client LogClient, config EVMLogsConfig) *EVMLogs {
	config.ChunkSize = utils.Default(config.ChunkSize, DefaultChunkSize)
	config.Concurrency = utils.Default(config.Concurrency, DefaultConcurrency)
	return &EVMLogs{
		client: client,
		config: config,
	}
}

func (d *EVMLogs) Name() string {
	return "evm_logs"
}

// FetchLogs returns every log matching query in [from, to], in ascending block order.
//
// The range is split into chunks of at most maxChunkSize blocks, or the configured
// MaxBlockRange if it is smaller. A chunk rejected by the node
// for being too large is split in half and retried until it is a single block. A single block
// that is still rejected is skipped and reported. Any other failure stops the fetch.
// In both cases the logs fetched so far are returned together with a *PartialFetchError.
func (d *EVMLogs) FetchLogs(ctx context.Context, query ethereum.FilterQuery, from, to, maxChunkSize uint64) ([]ethtypes.Log, error) {
	if from > to {
		return nil, errors.Wrapf(errs.InvalidArgument, "from block %d is greater than to block %d", from, to)
	}
	if maxChunkSize < 1 {
		return nil, errors.Wrap(errs.InvalidArgument, "max chunk size must be at least 1")
	}
	if limit := d.config.MaxBlockRange; limit > 0 && maxChunkSize > limit {
		maxChunkSize = limit
	}

	f := &logFetch{
		source: d,
		query:  query,
		logs:   make([]ethtypes.Log, 0),
	}
	if err := f.fetch(ctx, from, to, maxChunkSize); err != nil {
		if !errors.Is(err, errs.Transient) {
			return nil, errors.WithStack(err)
		}
		f.failed = append(f.failed, types.BlockRange{From: f.stoppedAt, To: to})
		return f.logs, &PartialFetchError{
			Logs:         f.logs,
			FailedRanges: f.failed,
			Err:          err,
		}
	}
	if len(f.failed) > 0 {
		return f.logs, &PartialFetchError{
			Logs:         f.logs,
			FailedRanges: f.failed,
			Err:          errors.Wrapf(errs.RangeTooLarge, "%d blocks rejected by node", len(f.failed)),
		}
	}
	return f.logs, nil
}

// logFetch is the state of one FetchLogs call.
type logFetch struct {
	source    *EVMLogs
	query     ethereum.FilterQuery
	logs      []ethtypes.Log
	failed    []types.BlockRange
	stoppedAt uint64
}

func (f *logFetch) fetch(ctx context.Context, from, to, chunkSize uint64) error {
	for start := from; ; {
		end := to
		if to-start >= chunkSize {
			end = start + chunkSize - 1
		}
		r := types.BlockRange{From: start, To: end}

		logs, err := f.source.filterLogs(ctx, f.query, r)
		switch {
		case err == nil:
			f.logs = append(f.logs, logs...)
		case errors.Is(err, errs.RangeTooLarge) && r.Size() > 1:
			logger.DebugContext(ctx, "Block range rejected by node, splitting",
				slogx.Stringer("range", r),
				slogx.Uint64("chunk_size", r.Size()/2),
			)
			if err := f.fetch(ctx, r.From, r.To, r.Size()/2); err != nil {
				return err
			}
		case errors.Is(err, errs.RangeTooLarge):
			logger.WarnContext(ctx, "Single block rejected by node, skipping",
				slogx.Uint64("block", r.From),
				slogx.Error(err),
			)
			f.failed = append(f.failed, r)
		default:
			f.stoppedAt = r.From
			return err
		}

		if end == to {
			return nil
		}
		start = end + 1
	}
}

func (d *EVMLogs) filterLogs(ctx context.Context, query ethereum.FilterQuery, r types.BlockRange) ([]ethtypes.Log, error) {
	if d.config.MaxBlockRange > 0 && r.Size() > d.config.MaxBlockRange {
		return nil, errors.Wrapf(errs.RangeTooLarge, "range %s exceeds node limit of %d blocks", r, d.config.MaxBlockRange)
	}
	query.BlockHash = nil
	query.FromBlock = new(big.Int).SetUint64(r.From)
	query.ToBlock = new(big.Int).SetUint64(r.To)

	logs, err := d.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, classifyRPCError(ctx, err, r)
	}
	return logs, nil
}

func (d *EVMLogs) Fetch(ctx context.Context, from, to int64) ([]*types.LogBatch, error) {
	ch := make(chan []*types.LogBatch)
	subscription, err := d.FetchAsync(ctx, from, to, ch)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer subscription.Unsubscribe()

	batches := make([]*types.LogBatch, 0)
	for {
		select {
		case b := <-ch:
			batches = append(batches, b...)
		case <-subscription.Done():
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "context done")
			}
			// errors are queued before the subscription finishes
			select {
			case err := <-subscription.Err():
				if err != nil {
					return nil, errors.Wrap(err, "got error while fetch async")
				}
			default:
			}
			return batches, nil
		case err := <-subscription.Err():
			if err != nil {
				return nil, errors.Wrap(err, "got error while fetch async")
			}
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "context done")
		}
	}
}

type batchResult struct {
	batch *types.LogBatch
	err   error
}

// FetchAsync streams one LogBatch per chunk of [from, to] in ascending order.
// A negative to means up to the latest confirmed block.
// Blocks the node refuses to serve even alone are left out of their batch and listed in
// LogBatch.SkippedRanges. Any other failure stops the stream at that chunk.
func (d *EVMLogs) FetchAsync(ctx context.Context, from, to int64, ch chan<- []*types.LogBatch) (*subscription.ClientSubscription[[]*types.LogBatch], error) {
	start, end, skip, err := d.prepareRange(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare fetch range")
	}

	subscription := subscription.NewSubscription(ch)
	if skip {
		if err := subscription.UnsubscribeWithContext(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to unsubscribe")
		}
		return subscription.Client(), nil
	}

	out := make(chan batchResult)
	stream := cstream.NewStream(ctx, d.config.Concurrency, out)

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	// Fan-out batches in order until the first failure
	go func() {
		defer func() {
			subscription.Finish()
			// release stream workers blocked on out
			for range out {
			}
		}()
		for {
			select {
			case result, ok := <-out:
				if !ok {
					return
				}
				if result.err != nil {
					if err := subscription.SendError(ctx, result.err); err != nil {
						logger.ErrorContext(ctx, "Failed to send error", err)
					}
					return
				}
				if err := subscription.Send(ctx, []*types.LogBatch{result.batch}); err != nil {
					logger.ErrorContext(ctx, "Failed while dispatch log batch", err,
						slogx.Stringer("range", result.batch.Range),
					)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		defer stream.Close()
		done := subscription.Done()
		for _, r := range splitRange(start, end, d.config.ChunkSize) {
			r := r
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			default:
				stream.Go(func() batchResult {
					batch, err := d.fetchBatch(ctx, r)
					if err != nil {
						return batchResult{err: errors.Wrapf(err, "failed to fetch logs in %s", r)}
					}
					return batchResult{batch: batch}
				})
			}
		}
	}()

	return subscription.Client(), nil
}

func (d *EVMLogs) fetchBatch(ctx context.Context, r types.BlockRange) (*types.LogBatch, error) {
	logs, err := d.FetchLogs(ctx, d.config.Query, r.From, r.To, r.Size())
	var skipped []types.BlockRange
	if err != nil {
		partial, ok := AsPartialFetchError(err)
		if !ok || errors.Is(err, errs.Transient) {
			return nil, errors.WithStack(err)
		}
		logger.WarnContext(ctx, "Node rejected single blocks, continuing without their logs",
			slogx.Stringer("range", r),
			slogx.Any("skipped", partial.FailedRanges),
		)
		logs, skipped = partial.Logs, partial.FailedRanges
	}

	header, err := d.GetBlockHeader(ctx, int64(r.To))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	batch := &types.LogBatch{
		Range:         r,
		Header:        header,
		Logs:          logs,
		SkippedRanges: skipped,
		BlockTimes:    make(map[uint64]time.Time),
	}
	if r.From == r.To {
		batch.PrevHash = header.ParentHash
	} else if r.From > 0 {
		prev, err := d.GetBlockHeader(ctx, int64(r.From)-1)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		batch.PrevHash = prev.Hash
	}

	// resolve timestamps of blocks with logs
	heights := lo.Uniq(lo.Map(logs, func(l ethtypes.Log, _ int) uint64 { return l.BlockNumber }))
	times := make([]time.Time, len(heights))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.Concurrency)
	for i, height := range heights {
		i, height := i, height
		if height == r.To {
			times[i] = header.Timestamp
			continue
		}
		g.Go(func() error {
			h, err := d.GetBlockHeader(gctx, int64(height))
			if err != nil {
				return errors.WithStack(err)
			}
			times[i] = h.Timestamp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to resolve block timestamps")
	}
	for i, height := range heights {
		batch.BlockTimes[height] = times[i]
	}
	return batch, nil
}

// GetBlockHeader returns errs.NotFound if the node doesn't have the block.
func (d *EVMLogs) GetBlockHeader(ctx context.Context, height int64) (types.BlockHeader, error) {
	header, err := d.client.HeaderByNumber(ctx, big.NewInt(height))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return types.BlockHeader{}, errors.Wrapf(errs.NotFound, "block %d not found", height)
		}
		return types.BlockHeader{}, errors.Wrapf(err, "failed to get block header %d", height)
	}
	return types.ParseHeader(header), nil
}

// LatestConfirmedBlock returns the chain head minus the configured confirmations.
func (d *EVMLogs) LatestConfirmedBlock(ctx context.Context) (uint64, bool, error) {
	latest, err := d.client.BlockNumber(ctx)
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to get latest block number")
	}
	if latest < d.config.Confirmations {
		return 0, false, nil
	}
	return latest - d.config.Confirmations, true, nil
}

func (d *EVMLogs) prepareRange(ctx context.Context, fromHeight, toHeight int64) (start, end uint64, skip bool, err error) {
	latest, ok, err := d.LatestConfirmedBlock(ctx)
	if err != nil {
		return 0, 0, false, errors.WithStack(err)
	}
	if !ok {
		return 0, 0, true, nil
	}

	start = uint64(max(fromHeight, 0))
	end = latest
	if toHeight >= 0 && uint64(toHeight) < latest {
		end = uint64(toHeight)
	}
	if start > end {
		return 0, 0, true, nil
	}
	return start, end, false, nil
}

func splitRange(from, to, size uint64) []types.BlockRange {
	ranges := make([]types.BlockRange, 0, (to-from)/size+1)
	for start := from; ; {
		end := to
		if to-start >= size {
			end = start + size - 1
		}
		ranges = append(ranges, types.BlockRange{From: start, To: end})
		if end == to {
			return ranges
		}
		start = end + 1
	}
}
