package eventsource

import (
	"context"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"golang.org/x/sync/errgroup"
)

// LogFetcher fetches logs over a block range in chunks. *datasources.EVMLogs implements it.
type LogFetcher interface {
	FetchLogs(ctx context.Context, query ethereum.FilterQuery, from, to, maxChunkSize uint64) ([]ethtypes.Log, error)
}

var _ LogFetcher = (*datasources.EVMLogs)(nil)

// PartialFetchError is returned when some block ranges could not be read.
// Events holds every event decoded from the ranges that were read.
type PartialFetchError struct {
	Events       []entity.ListingEvent
	FailedRanges []types.BlockRange
	Err          error
}

func (e *PartialFetchError) Error() string {
	return fmt.Sprintf("partial event fetch, failed ranges %v: %v", e.FailedRanges, e.Err)
}

func (e *PartialFetchError) Unwrap() error {
	return e.Err
}

func AsPartialFetchError(err error) (*PartialFetchError, bool) {
	var partial *PartialFetchError
	if errors.As(err, &partial) {
		return partial, true
	}
	return nil, false
}

// Source reads marketplace events of one contract.
type Source struct {
	fetcher LogFetcher
	address common.Address
}

func New(fetcher LogFetcher, address common.Address) *Source {
	return &Source{
		fetcher: fetcher,
		address: address,
	}
}

// FetchEvents returns the events of one kind emitted in [from, to], in canonical order.
// When some ranges fail, the events that were read are returned with a *PartialFetchError.
func (s *Source) FetchEvents(ctx context.Context, kind entity.EventKind, from, to, maxChunkSize uint64) ([]entity.ListingEvent, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid event kind %d", kind)
	}

	logs, err := s.fetcher.FetchLogs(ctx, contract.FilterQuery(s.address, kind), from, to, maxChunkSize)
	if err != nil {
		partial, ok := datasources.AsPartialFetchError(err)
		if !ok {
			return nil, errors.Wrapf(err, "failed to fetch %s events", kind)
		}
		events := DecodeLogs(ctx, partial.Logs)
		return events, &PartialFetchError{
			Events:       events,
			FailedRanges: partial.FailedRanges,
			Err:          errors.Wrapf(err, "failed to fetch %s events", kind),
		}
	}
	return DecodeLogs(ctx, logs), nil
}

// Events groups fetched events by kind.
type Events struct {
	Listed   []entity.ListingEvent
	Canceled []entity.ListingEvent
	Bought   []entity.ListingEvent
}

// All returns every event in canonical order.
func (e Events) All() []entity.ListingEvent {
	all := make([]entity.ListingEvent, 0, len(e.Listed)+len(e.Canceled)+len(e.Bought))
	all = append(all, e.Listed...)
	all = append(all, e.Canceled...)
	all = append(all, e.Bought...)
	entity.SortEvents(all)
	return all
}

// FetchAll fetches the three event kinds concurrently. If any kind is partial, the events
// that were read are returned with a *PartialFetchError merging every failed range.
func (s *Source) FetchAll(ctx context.Context, from, to, maxChunkSize uint64) (Events, error) {
	var (
		result  Events
		mu      sync.Mutex
		failed  []types.BlockRange
		causes  []error
		targets = map[entity.EventKind]*[]entity.ListingEvent{
			entity.EventKindListed:   &result.Listed,
			entity.EventKindCanceled: &result.Canceled,
			entity.EventKindBought:   &result.Bought,
		}
	)

	eg, ectx := errgroup.WithContext(ctx)
	for kind, target := range targets {
		kind, target := kind, target
		eg.Go(func() error {
			events, err := s.FetchEvents(ectx, kind, from, to, maxChunkSize)
			if err != nil {
				partial, ok := AsPartialFetchError(err)
				if !ok {
					return errors.WithStack(err)
				}
				mu.Lock()
				failed = append(failed, partial.FailedRanges...)
				causes = append(causes, partial.Err)
				mu.Unlock()
			}
			*target = events
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Events{}, errors.WithStack(err)
	}

	if len(failed) > 0 {
		return result, &PartialFetchError{
			Events:       result.All(),
			FailedRanges: types.MergeRanges(failed),
			Err:          errors.Join(causes...),
		}
	}
	return result, nil
}

// DecodeLogs decodes marketplace logs in canonical order. Removed and malformed logs are skipped.
func DecodeLogs(ctx context.Context, logs []ethtypes.Log) []entity.ListingEvent {
	events := make([]entity.ListingEvent, 0, len(logs))
	for _, log := range logs {
		if log.Removed {
			continue
		}
		ev, err := contract.DecodeListingEvent(log)
		if err != nil {
			logger.WarnContext(ctx, "Skipping malformed marketplace log",
				slogx.Error(err),
				slogx.Uint64("block", log.BlockNumber),
				slogx.Uint64("log_index", uint64(log.Index)),
				slogx.Stringer("tx_hash", log.TxHash),
			)
			continue
		}
		events = append(events, ev)
	}
	entity.SortEvents(events)
	return events
}
