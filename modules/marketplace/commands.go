package marketplace

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/archive"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/eventsource"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/materializer"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/source"
	"github.com/samber/lo"
)

type ScanListing struct {
	NftAddress       string `json:"nftAddress"`
	TokenID          string `json:"tokenId"`
	Seller           string `json:"seller"`
	Price            string `json:"price"`
	ListedAtBlock    uint64 `json:"listedAtBlock"`
	ListedAtLogIndex uint   `json:"listedAtLogIndex"`
	TxHash           string `json:"txHash"`
}

type ScanResult struct {
	AsOfBlock    uint64             `json:"asOfBlock"`
	Incomplete   bool               `json:"incomplete"`
	FailedRanges []types.BlockRange `json:"failedRanges,omitempty"`
	Total        int                `json:"total"`
	Listings     []ScanListing      `json:"listings"`
}

// Scan fetches the marketplace events of blocks [from, to] and returns the listings active at to.
// A partial fetch is returned with Incomplete set and no error.
func Scan(ctx context.Context, client datasources.LogClient, conf config.Config, from, to, chunkSize uint64) (*ScanResult, error) {
	contractAddress, err := parseContractAddress(conf.Modules.Marketplace.ContractAddress)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if from > to {
		return nil, errors.Wrapf(errs.InvalidArgument, "from %d is after to %d", from, to)
	}
	datasource := newDatasource(client, contractAddress, conf)
	snapshot, err := source.Scan(ctx, eventsource.New(datasource, contractAddress), from, to, chunkSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &ScanResult{
		AsOfBlock:    snapshot.AsOfBlock,
		Incomplete:   snapshot.Incomplete,
		FailedRanges: snapshot.FailedRanges,
		Total:        len(snapshot.Listings),
		Listings: lo.Map(snapshot.Listings, func(l entity.ActiveListing, _ int) ScanListing {
			return ScanListing{
				NftAddress:       strings.ToLower(l.Key.NftAddress.Hex()),
				TokenID:          l.Key.TokenID.Dec(),
				Seller:           strings.ToLower(l.Seller.Hex()),
				Price:            l.Price.Dec(),
				ListedAtBlock:    l.ListedAtBlock,
				ListedAtLogIndex: l.ListedAtLogIndex,
				TxHash:           l.TxHash.Hex(),
			}
		}),
	}, nil
}

// Export uploads the stored events of blocks [from, to] to the archive bucket and returns the object key.
func Export(ctx context.Context, conf config.Config, from, to uint64) (string, int, error) {
	chainID := conf.Network.ChainID()
	if chainID == nil {
		return "", 0, errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network)
	}
	mconf := conf.Modules.Marketplace
	store, err := archive.NewS3Store(ctx, mconf.Archive)
	if err != nil {
		return "", 0, errors.WithStack(err)
	}
	dg, cleanupFuncs, err := newDataGateway(ctx, mconf)
	if err != nil {
		return "", 0, errors.WithStack(err)
	}
	defer runCleanups(ctx, cleanupFuncs)

	key, count, err := archive.NewExporter(dg, store, mconf.Archive.Prefix, chainID.Uint64()).Export(ctx, from, to)
	return key, count, errors.WithStack(err)
}

// Import applies the events of an archive to the configured store and returns how many changed a listing.
// Events already stored are skipped, so importing twice is harmless.
func Import(ctx context.Context, conf config.Config, key string) (int, int, error) {
	mconf := conf.Modules.Marketplace
	store, err := archive.NewS3Store(ctx, mconf.Archive)
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}
	events, err := archive.NewLoader(store).Load(ctx, key)
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}

	dg, cleanupFuncs, err := newDataGateway(ctx, mconf)
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}
	defer runCleanups(ctx, cleanupFuncs)

	applied, err := materializer.New(dg).ApplyEvents(ctx, events)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to apply archived events")
	}
	return len(events), applied, nil
}

func runCleanups(ctx context.Context, cleanupFuncs []func(context.Context) error) {
	for _, cleanup := range cleanupFuncs {
		_ = cleanup(ctx)
	}
}
