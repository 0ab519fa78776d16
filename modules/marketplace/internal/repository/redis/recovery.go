package redis

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"
)

func (r *Repository) skippedKey() string {
	return r.key("skipped")
}

func (r *Repository) pendingRebuildsKey() string {
	return r.key("rebuild_pending")
}

func encodeSkippedRange(br types.BlockRange) string {
	return strconv.FormatUint(br.From, 10) + "-" + strconv.FormatUint(br.To, 10)
}

func decodeSkippedRange(s string) (types.BlockRange, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return types.BlockRange{}, errors.Errorf("invalid skipped range %q", s)
	}
	var (
		br  types.BlockRange
		err error
	)
	if br.From, err = strconv.ParseUint(from, 10, 64); err != nil {
		return types.BlockRange{}, errors.Wrapf(err, "invalid skipped range %q", s)
	}
	if br.To, err = strconv.ParseUint(to, 10, 64); err != nil {
		return types.BlockRange{}, errors.Wrapf(err, "invalid skipped range %q", s)
	}
	return br, nil
}

func decodeSkippedRanges(members []string) ([]types.BlockRange, error) {
	ranges := make([]types.BlockRange, 0, len(members))
	for _, member := range members {
		br, err := decodeSkippedRange(member)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		ranges = append(ranges, br)
	}
	return ranges, nil
}

// CreateSkippedRange replaces any range recorded with the same start.
func (r *Repository) CreateSkippedRange(ctx context.Context, br types.BlockRange) error {
	from := strconv.FormatUint(br.From, 10)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, r.skippedKey(), from, from)
		pipe.ZAdd(ctx, r.skippedKey(), &redis.Z{Score: float64(br.From), Member: encodeSkippedRange(br)})
		return nil
	})
	return errors.Wrap(err, "failed to write skipped range")
}

func (r *Repository) GetSkippedRanges(ctx context.Context) ([]types.BlockRange, error) {
	members, err := r.client.ZRange(ctx, r.skippedKey(), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skipped ranges")
	}
	return decodeSkippedRanges(members)
}

func (r *Repository) DeleteSkippedRangesSinceHeight(ctx context.Context, from uint64) error {
	err := r.client.ZRemRangeByScore(ctx, r.skippedKey(), strconv.FormatUint(from, 10), "+inf").Err()
	return errors.Wrap(err, "failed to delete skipped ranges")
}

func listingKeyMembers(keys []entity.ListingKey) []interface{} {
	return lo.Map(keys, func(key entity.ListingKey, _ int) interface{} { return key.String() })
}

func (r *Repository) AddPendingRebuilds(ctx context.Context, keys []entity.ListingKey) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.SAdd(ctx, r.pendingRebuildsKey(), listingKeyMembers(keys)...).Err()
	return errors.Wrap(err, "failed to queue rebuilds")
}

func (r *Repository) GetPendingRebuilds(ctx context.Context) ([]entity.ListingKey, error) {
	members, err := r.client.SMembers(ctx, r.pendingRebuildsKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pending rebuilds")
	}
	keys := make([]entity.ListingKey, 0, len(members))
	for _, member := range members {
		key, err := entity.ParseListingKey(member)
		if err != nil {
			return nil, errors.Wrap(err, "invalid pending rebuild member")
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *Repository) RemovePendingRebuilds(ctx context.Context, keys []entity.ListingKey) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.SRem(ctx, r.pendingRebuildsKey(), listingKeyMembers(keys)...).Err()
	return errors.Wrap(err, "failed to remove pending rebuilds")
}
