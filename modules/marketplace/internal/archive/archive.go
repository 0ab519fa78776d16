// Package archive moves event history between the datagateway and parquet files in object storage.
package archive

import (
	"context"
	"fmt"
	"path"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gaze-network/marketplace-indexer/pkg/parquetutils"
	"github.com/samber/lo"
)

type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
}

// Key returns the object key of the archive of blocks [from, to].
func Key(prefix string, chainID, from, to uint64) string {
	return path.Join(prefix, fmt.Sprint(chainID), fmt.Sprintf("%d-%d.parquet", from, to))
}

type Exporter struct {
	events  datagateway.EventDataGateway
	store   ObjectStore
	prefix  string
	chainID uint64
}

func NewExporter(events datagateway.EventDataGateway, store ObjectStore, prefix string, chainID uint64) *Exporter {
	return &Exporter{
		events:  events,
		store:   store,
		prefix:  prefix,
		chainID: chainID,
	}
}

// Export uploads the stored events of blocks [from, to] and returns the object key and event count.
func (e *Exporter) Export(ctx context.Context, from, to uint64) (string, int, error) {
	if from > to {
		return "", 0, errors.Wrapf(errs.InvalidArgument, "from %d is after to %d", from, to)
	}
	events, err := e.events.GetEventsByBlockRange(ctx, from, to)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to get events")
	}

	data, err := parquetutils.WriteAll(lo.Map(events, func(ev entity.ListingEvent, _ int) eventRecord { return toRecord(ev) }))
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to encode archive")
	}

	key := Key(e.prefix, e.chainID, from, to)
	if err := e.store.Upload(ctx, key, data); err != nil {
		return "", 0, errors.Wrapf(err, "failed to upload archive %q", key)
	}
	logger.InfoContext(ctx, "Exported marketplace events",
		slogx.String("key", key),
		slogx.Int("events", len(events)),
		slogx.Int("bytes", len(data)),
	)
	return key, len(events), nil
}

type Loader struct {
	store ObjectStore
}

func NewLoader(store ObjectStore) *Loader {
	return &Loader{store: store}
}

// Load downloads an archive and returns its events in canonical order.
func (l *Loader) Load(ctx context.Context, key string) ([]entity.ListingEvent, error) {
	data, err := l.store.Download(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download archive %q", key)
	}
	records, err := parquetutils.ReadAll[eventRecord](parquetutils.NewBufferFile(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode archive %q", key)
	}

	events := make([]entity.ListingEvent, 0, len(records))
	for i, r := range records {
		ev, err := fromRecord(r)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid record %d of archive %q", i, key)
		}
		events = append(events, ev)
	}
	entity.SortEvents(events)
	return events, nil
}
