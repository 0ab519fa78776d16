package marketplace

import (
	"cmp"
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/eventsource"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/materializer"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gaze-network/marketplace-indexer/pkg/reportingclient"
	"github.com/samber/lo"
)

// Process applies the batches in one transaction and records their last blocks as indexed.
func (p *Processor) Process(ctx context.Context, inputs []*types.LogBatch) error {
	tx, err := p.dg.BeginMarketplaceTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to rollback transaction", err)
		}
	}()

	m := p.materializer.WithTx(tx)
	eventCount := 0
	for _, batch := range inputs {
		n, err := p.processBatch(ctx, tx, m, batch)
		if err != nil {
			return errors.Wrapf(err, "failed to process blocks %s", batch.Range)
		}
		eventCount += n
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	if p.reportingClient != nil && len(inputs) > 0 {
		last := inputs[len(inputs)-1].Header
		if err := p.reportingClient.SubmitBlockReport(ctx, reportingclient.SubmitBlockReportPayload{
			Type:            common.ModuleMarketplace.String(),
			ClientVersion:   ClientVersion,
			DBVersion:       DBVersion,
			EventVersion:    EventVersion,
			Network:         p.network,
			ContractAddress: p.contract.Hex(),
			BlockHeight:     uint64(last.Height),
			BlockHash:       last.Hash,
			EventCount:      eventCount,
		}); err != nil {
			logger.WarnContext(ctx, "Failed to submit block report", slogx.Error(err))
		}
	}
	return nil
}

// processBatch returns the number of events in batch.
func (p *Processor) processBatch(ctx context.Context, tx datagateway.MarketplaceDataGatewayWithTx, m *materializer.Materializer, batch *types.LogBatch) (int, error) {
	events := eventsource.DecodeLogs(ctx, batch.Logs)
	for i := range events {
		if t, ok := batch.BlockTimes[events[i].BlockNumber]; ok {
			events[i].Timestamp = t
		}
	}

	orphans, err := findOrphans(ctx, tx, batch.Range, batch.SkippedRanges, events)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	if len(orphans) == 0 {
		applied, err := m.ApplyEvents(ctx, events)
		if err != nil {
			return 0, errors.Wrap(err, "failed to apply events")
		}
		logger.DebugContext(ctx, "Applied marketplace events",
			slogx.Stringer("range", batch.Range),
			slogx.Int("events", len(events)),
			slogx.Int("applied", applied),
		)
	} else {
		// Stored events the confirmed chain doesn't have were delivered live from blocks
		// that were reorged away. Replace the range and rebuild every listing involved.
		logger.WarnContext(ctx, "Found events of reorged blocks, rebuilding affected listings",
			slogx.String("event", "orphaned_events"),
			slogx.Stringer("range", batch.Range),
			slogx.Int("orphans", len(orphans)),
		)
		keys := lo.Uniq(append(eventKeys(orphans), eventKeys(events)...))
		if err := tx.AddPendingRebuilds(ctx, keys); err != nil {
			return 0, errors.Wrap(err, "failed to queue rebuilds")
		}
		for _, r := range excludeRanges(batch.Range, batch.SkippedRanges) {
			if err := tx.DeleteEventsInBlockRange(ctx, r.From, r.To); err != nil {
				return 0, errors.Wrap(err, "failed to delete orphaned events")
			}
		}
		for _, ev := range events {
			if err := tx.CreateEvent(ctx, ev); err != nil {
				return 0, errors.Wrap(err, "failed to record event")
			}
		}
		if err := m.Rebuild(ctx, keys); err != nil {
			return 0, errors.Wrap(err, "failed to rebuild listings")
		}
		if err := tx.RemovePendingRebuilds(ctx, keys); err != nil {
			return 0, errors.Wrap(err, "failed to remove pending rebuilds")
		}
	}

	for _, skipped := range batch.SkippedRanges {
		logger.WarnContext(ctx, "Recording blocks indexed without their logs",
			slogx.String("event", "skipped_range"),
			slogx.Stringer("range", skipped),
		)
		if err := tx.CreateSkippedRange(ctx, skipped); err != nil {
			return 0, errors.Wrap(err, "failed to record skipped range")
		}
	}

	if err := tx.CreateIndexedBlock(ctx, entity.IndexedBlock{
		Height:   uint64(batch.Header.Height),
		Hash:     batch.Header.Hash,
		PrevHash: batch.Header.ParentHash,
	}); err != nil {
		return 0, errors.Wrap(err, "failed to record indexed block")
	}
	return len(events), nil
}

type eventID struct {
	txHash   ethcommon.Hash
	logIndex uint
}

// findOrphans returns the stored events of r that are not part of events. Stored events
// inside skipped ranges are kept since the node returned nothing to compare them with.
func findOrphans(ctx context.Context, dg datagateway.EventDataGateway, r types.BlockRange, skipped []types.BlockRange, events []entity.ListingEvent) ([]entity.ListingEvent, error) {
	stored, err := dg.GetEventsByBlockRange(ctx, r.From, r.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stored events")
	}
	if len(stored) == 0 {
		return nil, nil
	}
	ids := make(map[eventID]struct{}, len(events))
	for _, ev := range events {
		ids[eventID{ev.TxHash, ev.LogIndex}] = struct{}{}
	}
	return lo.Filter(stored, func(ev entity.ListingEvent, _ int) bool {
		if _, ok := ids[eventID{ev.TxHash, ev.LogIndex}]; ok {
			return false
		}
		return !lo.SomeBy(skipped, func(br types.BlockRange) bool {
			return ev.BlockNumber >= br.From && ev.BlockNumber <= br.To
		})
	}), nil
}

func eventKeys(events []entity.ListingEvent) []entity.ListingKey {
	return lo.Map(events, func(ev entity.ListingEvent, _ int) entity.ListingKey { return ev.Key })
}

// excludeRanges returns the parts of r not covered by any of skipped.
func excludeRanges(r types.BlockRange, skipped []types.BlockRange) []types.BlockRange {
	skipped = slices.Clone(skipped)
	slices.SortFunc(skipped, func(a, b types.BlockRange) int { return cmp.Compare(a.From, b.From) })

	var result []types.BlockRange
	next := r.From
	for _, s := range skipped {
		if s.To < next || s.From > r.To {
			continue
		}
		if s.From > next {
			result = append(result, types.BlockRange{From: next, To: s.From - 1})
		}
		if s.To >= r.To {
			return result
		}
		next = s.To + 1
	}
	return append(result, types.BlockRange{From: next, To: r.To})
}
