package redis

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/listing"
	"github.com/go-redis/redis/v8"
)

func (r *Repository) listingKey(key entity.ListingKey) string {
	return r.key("listing", key.String())
}

func (r *Repository) activeKey() string {
	return r.key("active")
}

func (r *Repository) sellerKey(seller common.Address) string {
	return r.key("seller", addressString(seller))
}

type hashReader interface {
	HGetAll(ctx context.Context, key string) *redis.StringStringMapCmd
}

func (r *Repository) readListing(ctx context.Context, c hashReader, key entity.ListingKey) (*entity.Listing, error) {
	fields, err := c.HGetAll(ctx, r.listingKey(key)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read listing")
	}
	if len(fields) == 0 {
		return nil, errors.WithStack(errs.NotFound)
	}
	l, err := decodeListing(key, fields)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode listing %s", key)
	}
	return l, nil
}

// writeListing queues the writes replacing prev by l, keeping the active and seller indexes in sync.
func (r *Repository) writeListing(ctx context.Context, pipe redis.Pipeliner, l, prev *entity.Listing) {
	member := l.Key.String()
	if prev != nil && prev.Seller != l.Seller {
		pipe.SRem(ctx, r.sellerKey(prev.Seller), member)
	}
	pipe.HSet(ctx, r.listingKey(l.Key), encodeListing(l))
	if _, ok := l.ActiveListing(); ok {
		pipe.ZAdd(ctx, r.activeKey(), &redis.Z{Score: float64(l.ListedAtBlock), Member: member})
		pipe.SAdd(ctx, r.sellerKey(l.Seller), member)
	} else {
		pipe.ZRem(ctx, r.activeKey(), member)
		pipe.SRem(ctx, r.sellerKey(l.Seller), member)
	}
}

func (r *Repository) GetListing(ctx context.Context, key entity.ListingKey) (*entity.Listing, error) {
	return r.readListing(ctx, r.client, key)
}

func (r *Repository) SaveListing(ctx context.Context, l *entity.Listing, expected *entity.OrderKey) error {
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := r.readListing(ctx, tx, l.Key)
		if err != nil && !errors.Is(err, errs.NotFound) {
			return errors.WithStack(err)
		}
		switch {
		case expected == nil && stored != nil:
			return errors.Wrapf(errs.Conflict, "listing %s already exists", l.Key)
		case expected != nil && (stored == nil || stored.LastApplied != *expected):
			return errors.Wrapf(errs.Conflict, "listing %s was modified", l.Key)
		case stored != nil && !stored.LastApplied.Less(l.LastApplied):
			return errors.Wrapf(errs.Conflict, "listing %s is already at %v", l.Key, stored.LastApplied)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			r.writeListing(ctx, pipe, l, stored)
			return nil
		})
		return errors.WithStack(err)
	}, r.listingKey(l.Key))
	if errors.Is(err, redis.TxFailedErr) {
		return errors.Wrapf(errs.Conflict, "listing %s was modified concurrently", l.Key)
	}
	return errors.WithStack(err)
}

func (r *Repository) PutListing(ctx context.Context, l *entity.Listing) error {
	prev, err := r.readListing(ctx, r.client, l.Key)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return errors.WithStack(err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.writeListing(ctx, pipe, l, prev)
		return nil
	})
	return errors.Wrap(err, "failed to write listing")
}

func (r *Repository) DeleteListing(ctx context.Context, key entity.ListingKey) error {
	prev, err := r.readListing(ctx, r.client, key)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil
		}
		return errors.WithStack(err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.listingKey(key))
		pipe.ZRem(ctx, r.activeKey(), key.String())
		pipe.SRem(ctx, r.sellerKey(prev.Seller), key.String())
		return nil
	})
	return errors.Wrap(err, "failed to delete listing")
}

func (r *Repository) GetActiveListings(ctx context.Context) ([]entity.ActiveListing, error) {
	members, err := r.client.ZRange(ctx, r.activeKey(), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read active listings")
	}
	return r.activeListings(ctx, members)
}

func (r *Repository) GetActiveListingsBySeller(ctx context.Context, seller common.Address) ([]entity.ActiveListing, error) {
	members, err := r.client.SMembers(ctx, r.sellerKey(seller)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read seller listings")
	}
	return r.activeListings(ctx, members)
}

func (r *Repository) activeListings(ctx context.Context, members []string) ([]entity.ActiveListing, error) {
	keys := make([]entity.ListingKey, 0, len(members))
	for _, member := range members {
		key, err := entity.ParseListingKey(member)
		if err != nil {
			return nil, errors.Wrap(err, "invalid listing index member")
		}
		keys = append(keys, key)
	}

	cmds := make([]*redis.StringStringMapCmd, len(keys))
	if _, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.HGetAll(ctx, r.listingKey(key))
		}
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to read listings")
	}

	listings := make([]entity.ActiveListing, 0, len(keys))
	for i, key := range keys {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		l, err := decodeListing(key, fields)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode listing %s", key)
		}
		if active, ok := l.ActiveListing(); ok {
			listings = append(listings, active)
		}
	}
	listing.SortByRecency(listings)
	return listings, nil
}

// snapshotScript reads the latest indexed block, the skipped ranges and the active listings atomically.
// Listing hashes are addressed by ARGV[1] followed by the active set member.
var snapshotScript = redis.NewScript(`
local block = redis.call('ZREVRANGE', KEYS[1], 0, 0)
local skipped = redis.call('ZRANGE', KEYS[2], 0, -1)
local members = redis.call('ZRANGE', KEYS[3], 0, -1)
local listings = {}
for i, member in ipairs(members) do
	listings[i] = redis.call('HGETALL', ARGV[1] .. member)
end
return {block, skipped, members, listings}
`)

func (r *Repository) GetListingSnapshot(ctx context.Context) (*entity.ListingSnapshot, error) {
	result, err := snapshotScript.Run(ctx, r.client,
		[]string{r.blocksKey(), r.skippedKey(), r.activeKey()},
		r.key("listing", ""),
	).Slice()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot")
	}
	if len(result) != 4 {
		return nil, errors.Errorf("unexpected snapshot reply length %d", len(result))
	}
	blocks, err := stringSlice(result[0])
	if err != nil {
		return nil, errors.Wrap(err, "invalid block reply")
	}
	if len(blocks) == 0 {
		return nil, errors.Wrap(errs.NotFound, "no indexed block")
	}
	block, err := decodeIndexedBlock(blocks[0])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	skippedMembers, err := stringSlice(result[1])
	if err != nil {
		return nil, errors.Wrap(err, "invalid skipped range reply")
	}
	skipped, err := decodeSkippedRanges(skippedMembers)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	members, err := stringSlice(result[2])
	if err != nil {
		return nil, errors.Wrap(err, "invalid active set reply")
	}
	hashes, ok := result[3].([]interface{})
	if !ok || len(hashes) != len(members) {
		return nil, errors.New("invalid listing reply")
	}

	listings := make([]entity.ActiveListing, 0, len(members))
	for i, member := range members {
		flat, err := stringSlice(hashes[i])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid listing reply for %s", member)
		}
		if len(flat) == 0 {
			continue
		}
		key, err := entity.ParseListingKey(member)
		if err != nil {
			return nil, errors.Wrap(err, "invalid listing index member")
		}
		fields := make(map[string]string, len(flat)/2)
		for j := 0; j+1 < len(flat); j += 2 {
			fields[flat[j]] = flat[j+1]
		}
		l, err := decodeListing(key, fields)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode listing %s", key)
		}
		if active, ok := l.ActiveListing(); ok {
			listings = append(listings, active)
		}
	}
	listing.SortByRecency(listings)

	return &entity.ListingSnapshot{
		Listings:     listings,
		AsOfBlock:    block.Height,
		Incomplete:   len(skipped) > 0,
		FailedRanges: skipped,
	}, nil
}

func stringSlice(v interface{}) ([]string, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("expected array reply, got %T", v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Errorf("expected string reply, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
