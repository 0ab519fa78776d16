package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// LogBatch holds every matching log of a contiguous block range.
// Logs are in canonical order (block number, log index).
type LogBatch struct {
	Range BlockRange

	// Header is the header of the last block of Range.
	Header BlockHeader

	// PrevHash is the hash of the block before Range.From.
	PrevHash common.Hash

	Logs []ethtypes.Log

	// SkippedRanges are blocks of Range the node refused to return logs for.
	// Logs has no entries from them.
	SkippedRanges []BlockRange

	// BlockTimes maps each block number that has logs to its timestamp.
	BlockTimes map[uint64]time.Time
}

func (b *LogBatch) BlockHeader() BlockHeader {
	return b.Header
}

func (b *LogBatch) FromHeight() int64 {
	return int64(b.Range.From)
}

func (b *LogBatch) PrevBlockHash() common.Hash {
	return b.PrevHash
}
