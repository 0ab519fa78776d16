package source

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/eventsource"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/listing"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

const NameLogScan = "logscan"

var _ ListingSource = (*LogScan)(nil)

type EventFetcher interface {
	FetchAll(ctx context.Context, from, to, maxChunkSize uint64) (eventsource.Events, error)
}

type HeadReader interface {
	LatestConfirmedBlock(ctx context.Context) (uint64, bool, error)
}

type LogScanConfig struct {
	// StartBlock is the lowest block ever scanned.
	StartBlock uint64

	// ScanBlocks limits each scan to the latest ScanBlocks blocks, 0 scans from StartBlock.
	ScanBlocks uint64
	ChunkSize  uint64
}

// LogScan answers from the latest scan of the chain's event logs.
// Listings older than the scan window are not seen.
type LogScan struct {
	events EventFetcher
	head   HeadReader
	config LogScanConfig

	mu   sync.RWMutex
	last *entity.ListingSnapshot
}

func NewLogScan(events EventFetcher, head HeadReader, config LogScanConfig) *LogScan {
	return &LogScan{
		events: events,
		head:   head,
		config: config,
	}
}

func (s *LogScan) Name() string {
	return NameLogScan
}

func (s *LogScan) GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, errors.Wrap(errs.NotInitialized, "no scan has completed yet")
	}
	snapshot := *s.last
	return &snapshot, nil
}

// Refresh scans the window ending at the latest confirmed block and keeps the result.
// A partial scan is kept with Incomplete set and returned without error.
func (s *LogScan) Refresh(ctx context.Context) (*entity.ListingSnapshot, error) {
	latest, ok, err := s.head.LatestConfirmedBlock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest block")
	}
	if !ok || latest < s.config.StartBlock {
		return nil, errors.Wrap(errs.NotInitialized, "chain has not reached the start block")
	}

	from := s.config.StartBlock
	if s.config.ScanBlocks > 0 && latest-s.config.StartBlock >= s.config.ScanBlocks {
		from = latest - s.config.ScanBlocks + 1
	}
	snapshot, err := Scan(ctx, s.events, from, latest, s.config.ChunkSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	s.last = snapshot
	s.mu.Unlock()
	return snapshot, nil
}

// Run refreshes every interval until ctx is done.
func (s *LogScan) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		snapshot, err := s.Refresh(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			logger.WarnContext(ctx, "Listing scan failed, retrying next interval", slogx.Error(err))
		case snapshot.Incomplete:
			logger.WarnContext(ctx, "Listing scan is incomplete",
				slogx.Uint64("as_of_block", snapshot.AsOfBlock),
				slogx.Any("failed_ranges", snapshot.FailedRanges),
			)
		default:
			logger.DebugContext(ctx, "Listing scan completed",
				slogx.Uint64("as_of_block", snapshot.AsOfBlock),
				slogx.Int("listings", len(snapshot.Listings)),
			)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Scan fetches the events in [from, to] and reconciles them into a snapshot.
func Scan(ctx context.Context, events EventFetcher, from, to, chunkSize uint64) (*entity.ListingSnapshot, error) {
	fetched, err := events.FetchAll(ctx, from, to, chunkSize)
	snapshot := &entity.ListingSnapshot{
		Source:    NameLogScan,
		AsOfBlock: to,
	}
	if err != nil {
		partial, ok := eventsource.AsPartialFetchError(err)
		if !ok {
			return nil, errors.Wrap(err, "failed to fetch marketplace events")
		}
		snapshot.Incomplete = true
		snapshot.FailedRanges = partial.FailedRanges
	}
	snapshot.Listings = listing.Sorted(listing.Reconcile(fetched.Listed, fetched.Canceled, fetched.Bought))
	return snapshot, nil
}
