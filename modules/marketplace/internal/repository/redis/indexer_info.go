package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/go-redis/redis/v8"
)

func (r *Repository) blocksKey() string {
	return r.key("blocks")
}

func (r *Repository) indexerStatesKey() string {
	return r.key("indexer_states")
}

func (r *Repository) GetLatestIndexedBlock(ctx context.Context) (entity.IndexedBlock, error) {
	return r.getIndexedBlock(ctx, "+inf")
}

func (r *Repository) GetIndexedBlockAtOrBelow(ctx context.Context, height uint64) (entity.IndexedBlock, error) {
	return r.getIndexedBlock(ctx, strconv.FormatUint(height, 10))
}

func (r *Repository) getIndexedBlock(ctx context.Context, maxScore string) (entity.IndexedBlock, error) {
	members, err := r.client.ZRevRangeByScore(ctx, r.blocksKey(), &redis.ZRangeBy{
		Min:   "-inf",
		Max:   maxScore,
		Count: 1,
	}).Result()
	if err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "failed to read indexed blocks")
	}
	if len(members) == 0 {
		return entity.IndexedBlock{}, errors.WithStack(errs.NotFound)
	}
	return decodeIndexedBlock(members[0])
}

func decodeIndexedBlock(s string) (entity.IndexedBlock, error) {
	var record blockRecord
	if err := json.Unmarshal([]byte(s), &record); err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "failed to decode indexed block")
	}
	return entity.IndexedBlock{
		Height:   record.Height,
		Hash:     common.HexToHash(record.Hash),
		PrevHash: common.HexToHash(record.PrevHash),
	}, nil
}

// CreateIndexedBlock replaces any block already recorded at the same height.
func (r *Repository) CreateIndexedBlock(ctx context.Context, block entity.IndexedBlock) error {
	encoded, err := json.Marshal(blockRecord{
		Height:   block.Height,
		Hash:     block.Hash.Hex(),
		PrevHash: block.PrevHash.Hex(),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	height := strconv.FormatUint(block.Height, 10)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, r.blocksKey(), height, height)
		pipe.ZAdd(ctx, r.blocksKey(), &redis.Z{Score: float64(block.Height), Member: string(encoded)})
		return nil
	})
	return errors.Wrap(err, "failed to write indexed block")
}

func (r *Repository) DeleteIndexedBlocksSinceHeight(ctx context.Context, from uint64) error {
	err := r.client.ZRemRangeByScore(ctx, r.blocksKey(), strconv.FormatUint(from, 10), "+inf").Err()
	return errors.Wrap(err, "failed to delete indexed blocks")
}

func (r *Repository) GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error) {
	value, err := r.client.LIndex(ctx, r.indexerStatesKey(), -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.IndexerState{}, errors.WithStack(errs.NotFound)
		}
		return entity.IndexerState{}, errors.Wrap(err, "failed to read indexer state")
	}
	var record indexerStateRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return entity.IndexerState{}, errors.Wrap(err, "failed to decode indexer state")
	}
	return entity.IndexerState{
		ClientVersion:   record.ClientVersion,
		DBVersion:       record.DBVersion,
		EventVersion:    record.EventVersion,
		ChainID:         record.ChainID,
		ContractAddress: common.HexToAddress(record.ContractAddress),
		CreatedAt:       record.CreatedAt,
	}, nil
}

func (r *Repository) CreateIndexerState(ctx context.Context, state entity.IndexerState) error {
	createdAt := state.CreatedAt
	if createdAt.IsZero() {
		createdAt = timeNow().UTC()
	}
	encoded, err := json.Marshal(indexerStateRecord{
		ClientVersion:   state.ClientVersion,
		DBVersion:       state.DBVersion,
		EventVersion:    state.EventVersion,
		ChainID:         state.ChainID,
		ContractAddress: addressString(state.ContractAddress),
		CreatedAt:       createdAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	err = r.client.RPush(ctx, r.indexerStatesKey(), string(encoded)).Err()
	return errors.Wrap(err, "failed to write indexer state")
}
