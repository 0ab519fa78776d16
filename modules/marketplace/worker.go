package marketplace

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/core/indexer"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/materializer"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/watcher"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

var _ indexer.IndexerWorker = (*worker)(nil)

type headerReader interface {
	GetBlockHeader(ctx context.Context, height int64) (types.BlockHeader, error)
}

// worker runs the confirmed-block indexer and, when enabled, applies events as they are emitted.
type worker struct {
	indexer      *indexer.Indexer[*types.LogBatch]
	watcher      *watcher.Watcher
	materializer *materializer.Materializer
	headers      headerReader
}

func (w *worker) Run(ctx context.Context) error {
	if w.watcher != nil {
		sub, err := w.watcher.Subscribe(ctx, w.applyLiveEvent)
		if err != nil {
			return errors.Wrap(err, "failed to start live watcher")
		}
		defer sub.Unsubscribe()
		go func() {
			<-sub.Done()
			if err := sub.Err(); err != nil {
				logger.ErrorContext(ctx, "Live watcher stopped, listings follow confirmed blocks only", err)
			}
		}()
	}
	return errors.WithStack(w.indexer.Run(ctx))
}

func (w *worker) Shutdown() error {
	return errors.WithStack(w.indexer.Shutdown())
}

func (w *worker) applyLiveEvent(ctx context.Context, ev entity.ListingEvent) {
	if header, err := w.headers.GetBlockHeader(ctx, int64(ev.BlockNumber)); err == nil {
		ev.Timestamp = header.Timestamp
	} else {
		logger.WarnContext(ctx, "Failed to get block time of live event", slogx.Error(err), slogx.Uint64("block", ev.BlockNumber))
	}

	applied, err := w.materializer.ApplyEvent(ctx, ev)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to apply live event, it will be applied when its block is confirmed", err,
			slogx.Stringer("key", ev.Key),
			slogx.Stringer("kind", ev.Kind),
			slogx.Uint64("block", ev.BlockNumber),
		)
		return
	}
	logger.DebugContext(ctx, "Live event",
		slogx.Stringer("key", ev.Key),
		slogx.Stringer("kind", ev.Kind),
		slogx.Uint64("block", ev.BlockNumber),
		slogx.Bool("applied", applied),
	)
}
