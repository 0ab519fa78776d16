package redis

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/go-redis/redis/v8"
)

// Events are stored once in a hash keyed by event id and indexed by block number and by listing key.

func (r *Repository) eventsKey() string {
	return r.key("events")
}

func (r *Repository) eventsByBlockKey() string {
	return r.key("events", "by_block")
}

func (r *Repository) eventsByListingKey(key entity.ListingKey) string {
	return r.key("events", "by_listing", key.String())
}

func (r *Repository) CreateEvent(ctx context.Context, event entity.ListingEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return errors.WithStack(err)
	}
	id := eventID(event)
	created, err := r.client.HSetNX(ctx, r.eventsKey(), id, encoded).Result()
	if err != nil {
		return errors.Wrap(err, "failed to write event")
	}
	if !created {
		return nil
	}
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, r.eventsByBlockKey(), &redis.Z{Score: float64(event.BlockNumber), Member: id})
		pipe.SAdd(ctx, r.eventsByListingKey(event.Key), id)
		return nil
	})
	return errors.Wrap(err, "failed to index event")
}

func (r *Repository) GetEventsByKey(ctx context.Context, key entity.ListingKey) ([]entity.ListingEvent, error) {
	ids, err := r.client.SMembers(ctx, r.eventsByListingKey(key)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read listing events")
	}
	return r.getEvents(ctx, ids)
}

func (r *Repository) GetEventsByBlockRange(ctx context.Context, from, to uint64) ([]entity.ListingEvent, error) {
	ids, err := r.eventIDsInRange(ctx, strconv.FormatUint(from, 10), strconv.FormatUint(to, 10))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return r.getEvents(ctx, ids)
}

func (r *Repository) GetKeysWithEventsSinceHeight(ctx context.Context, from uint64) ([]entity.ListingKey, error) {
	ids, err := r.eventIDsInRange(ctx, strconv.FormatUint(from, 10), "+inf")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	events, err := r.getEvents(ctx, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	seen := make(map[entity.ListingKey]struct{}, len(events))
	keys := make([]entity.ListingKey, 0, len(events))
	for _, ev := range events {
		if _, ok := seen[ev.Key]; ok {
			continue
		}
		seen[ev.Key] = struct{}{}
		keys = append(keys, ev.Key)
	}
	return keys, nil
}

func (r *Repository) DeleteEventsInBlockRange(ctx context.Context, from, to uint64) error {
	return r.deleteEvents(ctx, strconv.FormatUint(from, 10), strconv.FormatUint(to, 10))
}

func (r *Repository) DeleteEventsSinceHeight(ctx context.Context, from uint64) error {
	return r.deleteEvents(ctx, strconv.FormatUint(from, 10), "+inf")
}

func (r *Repository) deleteEvents(ctx context.Context, minScore, maxScore string) error {
	ids, err := r.eventIDsInRange(ctx, minScore, maxScore)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(ids) == 0 {
		return nil
	}
	events, err := r.getEvents(ctx, ids)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, ev := range events {
			id := eventID(ev)
			pipe.SRem(ctx, r.eventsByListingKey(ev.Key), id)
			pipe.ZRem(ctx, r.eventsByBlockKey(), id)
			pipe.HDel(ctx, r.eventsKey(), id)
		}
		return nil
	})
	return errors.Wrap(err, "failed to delete events")
}

func (r *Repository) eventIDsInRange(ctx context.Context, minScore, maxScore string) ([]string, error) {
	ids, err := r.client.ZRangeByScore(ctx, r.eventsByBlockKey(), &redis.ZRangeBy{Min: minScore, Max: maxScore}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read event index")
	}
	return ids, nil
}

// getEvents returns the events with the given ids in canonical order.
func (r *Repository) getEvents(ctx context.Context, ids []string) ([]entity.ListingEvent, error) {
	if len(ids) == 0 {
		return []entity.ListingEvent{}, nil
	}
	values, err := r.client.HMGet(ctx, r.eventsKey(), ids...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read events")
	}
	events := make([]entity.ListingEvent, 0, len(values))
	for i, value := range values {
		s, ok := value.(string)
		if !ok {
			return nil, errors.Errorf("event %s is indexed but missing", ids[i])
		}
		ev, err := decodeEvent(s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode event %s", ids[i])
		}
		events = append(events, ev)
	}
	entity.SortEvents(events)
	return events, nil
}
