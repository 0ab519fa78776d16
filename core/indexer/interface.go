package indexer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/core/types"
)

type IndexerWorker interface {
	Shutdown() error
	Run(ctx context.Context) error
}

// Input is a unit of indexed data covering a contiguous block range.
type Input interface {
	// BlockHeader is the header of the last block covered by the input.
	BlockHeader() types.BlockHeader

	// FromHeight is the first block covered by the input.
	FromHeight() int64

	// PrevBlockHash is the hash of the block before FromHeight.
	PrevBlockHash() common.Hash
}

type Processor[T Input] interface {
	Name() string

	// Process processes the input data and indexes it.
	Process(ctx context.Context, inputs []T) error

	// CurrentBlock returns the latest indexed block header.
	// A zero hash means nothing is indexed yet and the next input starts at Height+1.
	CurrentBlock(ctx context.Context) (types.BlockHeader, error)

	// GetIndexedBlock returns the latest indexed block header at or below the given height.
	GetIndexedBlock(ctx context.Context, height int64) (types.BlockHeader, error)

	// RevertData reverts indexed data since the given block height for re-indexing.
	RevertData(ctx context.Context, from int64) error

	// VerifyStates verifies the stored states are compatible with the current configuration.
	VerifyStates(ctx context.Context) error

	// Shutdown gracefully stops the processor.
	Shutdown(ctx context.Context) error
}
