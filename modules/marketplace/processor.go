package marketplace

import (
	"context"

	"github.com/cockroachdb/errors"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/indexer"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/materializer"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gaze-network/marketplace-indexer/pkg/reportingclient"
)

var _ indexer.Processor[*types.LogBatch] = (*Processor)(nil)

type Processor struct {
	dg              datagateway.MarketplaceDataGateway
	materializer    *materializer.Materializer
	network         common.Network
	contract        ethcommon.Address
	startBlock      uint64
	reportingClient *reportingclient.ReportingClient // nil if reporting is disabled
	cleanupFuncs    []func(context.Context) error
}

func NewProcessor(dg datagateway.MarketplaceDataGateway, m *materializer.Materializer, network common.Network, contract ethcommon.Address, startBlock uint64, reportingClient *reportingclient.ReportingClient, cleanupFuncs ...func(context.Context) error) *Processor {
	return &Processor{
		dg:              dg,
		materializer:    m,
		network:         network,
		contract:        contract,
		startBlock:      startBlock,
		reportingClient: reportingClient,
		cleanupFuncs:    cleanupFuncs,
	}
}

func (p *Processor) Name() string {
	return "Marketplace"
}

// VerifyStates checks the stored indexer state against the configuration and finishes
// listing rebuilds left queued by an interrupted revert.
func (p *Processor) VerifyStates(ctx context.Context) error {
	if err := p.verifyIndexerState(ctx); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(p.resumeRebuilds(ctx))
}

func (p *Processor) verifyIndexerState(ctx context.Context) error {
	chainID := p.network.ChainID()
	if chainID == nil {
		return errors.Wrapf(errs.Unsupported, "unsupported network %q", p.network)
	}
	current := entity.IndexerState{
		ClientVersion:   ClientVersion,
		DBVersion:       DBVersion,
		EventVersion:    EventVersion,
		ChainID:         chainID.Uint64(),
		ContractAddress: p.contract,
	}

	state, err := p.dg.GetLatestIndexerState(ctx)
	if err != nil {
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "failed to get latest indexer state")
		}
		if err := p.dg.CreateIndexerState(ctx, current); err != nil {
			return errors.Wrap(err, "failed to set indexer state")
		}
		return nil
	}

	if state.DBVersion != DBVersion {
		return errors.Wrapf(errs.ConflictSetting, "db version mismatch: current version is %d. Please upgrade to version %d", state.DBVersion, DBVersion)
	}
	if state.EventVersion != EventVersion {
		return errors.Wrapf(errs.ConflictSetting, "event version mismatch: current version is %d, expected %d. Please reset the database and reindex", state.EventVersion, EventVersion)
	}
	if state.ChainID != current.ChainID {
		return errors.Wrapf(errs.ConflictSetting, "chain id mismatch: latest indexed chain is %d, configured network %s is %d. If you want to change the network, please reset the database", state.ChainID, p.network, current.ChainID)
	}
	if state.ContractAddress != p.contract {
		return errors.Wrapf(errs.ConflictSetting, "contract mismatch: latest indexed contract is %s, configured contract is %s", state.ContractAddress, p.contract)
	}
	if state.ClientVersion != ClientVersion {
		logger.InfoContext(ctx, "Client version changed",
			slogx.String("from", state.ClientVersion),
			slogx.String("to", ClientVersion),
		)
		if err := p.dg.CreateIndexerState(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update indexer state")
		}
	}
	return nil
}

func (p *Processor) resumeRebuilds(ctx context.Context) error {
	keys, err := p.dg.GetPendingRebuilds(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get pending rebuilds")
	}
	if len(keys) == 0 {
		return nil
	}
	logger.WarnContext(ctx, "Resuming interrupted listing rebuilds", slogx.Int("listings", len(keys)))
	if err := p.materializer.Rebuild(ctx, keys); err != nil {
		return errors.Wrap(err, "failed to rebuild listings")
	}
	if err := p.dg.RemovePendingRebuilds(ctx, keys); err != nil {
		return errors.Wrap(err, "failed to remove pending rebuilds")
	}
	return nil
}

// CurrentBlock returns the block before StartBlock with a zero hash if nothing is indexed yet.
func (p *Processor) CurrentBlock(ctx context.Context) (types.BlockHeader, error) {
	block, err := p.dg.GetLatestIndexedBlock(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return types.BlockHeader{Height: int64(p.startBlock) - 1}, nil
		}
		return types.BlockHeader{}, errors.Wrap(err, "failed to get latest indexed block")
	}
	return blockHeaderFromIndexedBlock(block), nil
}

func (p *Processor) GetIndexedBlock(ctx context.Context, height int64) (types.BlockHeader, error) {
	if height < 0 {
		return types.BlockHeader{}, errors.WithStack(errs.NotFound)
	}
	block, err := p.dg.GetIndexedBlockAtOrBelow(ctx, uint64(height))
	if err != nil {
		return types.BlockHeader{}, errors.Wrap(err, "failed to get indexed block")
	}
	return blockHeaderFromIndexedBlock(block), nil
}

// RevertData deletes everything indexed at or above from and rebuilds the listings it touched
// from the remaining history.
func (p *Processor) RevertData(ctx context.Context, from int64) error {
	since := uint64(max(from, 0))

	tx, err := p.dg.BeginMarketplaceTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to rollback transaction", err)
		}
	}()

	keys, err := tx.GetKeysWithEventsSinceHeight(ctx, since)
	if err != nil {
		return errors.Wrap(err, "failed to get reverted listing keys")
	}
	// queued before the events go away, so a crash before the rebuild finishes can't lose the keys
	if err := tx.AddPendingRebuilds(ctx, keys); err != nil {
		return errors.Wrap(err, "failed to queue rebuilds")
	}
	if err := tx.DeleteEventsSinceHeight(ctx, since); err != nil {
		return errors.Wrap(err, "failed to delete events")
	}
	if err := tx.DeleteIndexedBlocksSinceHeight(ctx, since); err != nil {
		return errors.Wrap(err, "failed to delete indexed blocks")
	}
	if err := tx.DeleteSkippedRangesSinceHeight(ctx, since); err != nil {
		return errors.Wrap(err, "failed to delete skipped ranges")
	}
	if err := p.materializer.WithTx(tx).Rebuild(ctx, keys); err != nil {
		return errors.Wrap(err, "failed to rebuild listings")
	}
	if err := tx.RemovePendingRebuilds(ctx, keys); err != nil {
		return errors.Wrap(err, "failed to remove pending rebuilds")
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	logger.InfoContext(ctx, "Reverted marketplace data",
		slogx.Uint64("since", since),
		slogx.Int("rebuilt_listings", len(keys)),
	)
	return nil
}

func (p *Processor) Shutdown(ctx context.Context) error {
	var errList []error
	for _, cleanup := range p.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.WithStack(errors.Join(errList...))
}

func blockHeaderFromIndexedBlock(block entity.IndexedBlock) types.BlockHeader {
	return types.BlockHeader{
		Height:     int64(block.Height),
		Hash:       block.Hash,
		ParentHash: block.PrevHash,
	}
}
