package types

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type BlockHeader struct {
	Hash       common.Hash
	Height     int64
	ParentHash common.Hash
	Timestamp  time.Time
}

// ParseHeader converts a go-ethereum header.
func ParseHeader(src *ethtypes.Header) BlockHeader {
	return BlockHeader{
		Hash:       src.Hash(),
		Height:     src.Number.Int64(),
		ParentHash: src.ParentHash,
		Timestamp:  time.Unix(int64(src.Time), 0).UTC(),
	}
}

// BlockRange is an inclusive range of block heights.
type BlockRange struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

func (r BlockRange) Size() uint64 {
	return r.To - r.From + 1
}

func (r BlockRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.From, r.To)
}

// MergeRanges returns the union of ranges as sorted, non-overlapping, non-adjacent ranges.
func MergeRanges(ranges []BlockRange) []BlockRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b BlockRange) int {
		return cmp.Compare(a.From, b.From)
	})

	merged := []BlockRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.From <= last.To+1 {
			last.To = max(last.To, r.To)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
