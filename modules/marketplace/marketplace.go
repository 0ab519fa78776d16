package marketplace

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/indexer"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/api/httphandler"
	marketplaceconfig "github.com/gaze-network/marketplace-indexer/modules/marketplace/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/eventsource"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/materializer"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/source"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/usecase"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/watcher"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gaze-network/marketplace-indexer/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (indexer.IndexerWorker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	client := do.MustInvoke[*ethclient.Client](injector)
	reportingClient := do.MustInvoke[*reportingclient.ReportingClient](injector)
	mconf := conf.Modules.Marketplace

	contractAddress, err := parseContractAddress(mconf.ContractAddress)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dg, cleanupFuncs, err := newDataGateway(ctx, mconf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	datasource := newDatasource(client, contractAddress, conf)
	m := materializer.New(dg)

	processor := NewProcessor(dg, m, conf.Network, contractAddress, mconf.StartBlock, reportingClient, cleanupFuncs...)
	if err := processor.VerifyStates(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	if reportingClient != nil && !conf.APIOnly {
		if err := reportingClient.SubmitNodeReport(ctx, gazecommon.ModuleMarketplace.String(), conf.Network); err != nil {
			logger.WarnContext(ctx, "Failed to submit node report", slogx.Error(err))
		}
	}

	listingSource, err := newListingSource(ctx, mconf, dg, datasource, contractAddress, conf.EVMNode)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Serving active listings", slogx.String("source", listingSource.Name()))

	// Mount API
	apiHandlers := lo.Uniq(mconf.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			marketplaceUsecase := usecase.New(listingSource, dg, contract.NewCaller(contractAddress, client))
			marketplaceHTTPHandler := httphandler.New(conf.Network, marketplaceUsecase)
			if err := marketplaceHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount Marketplace API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	w := &worker{
		indexer:      indexer.New[*types.LogBatch](processor, datasource, mconf.Datasource.PollingInterval),
		materializer: m,
		headers:      datasource,
	}
	if mconf.LiveWatcher {
		w.watcher = watcher.New(client, datasource, contractAddress, watcher.Config{
			PollInterval: mconf.Datasource.PollingInterval,
			ChunkSize:    mconf.Datasource.ChunkSize,
		})
	}
	return w, nil
}

func parseContractAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(errs.InvalidArgument, "invalid marketplace contract address %q", s)
	}
	return common.HexToAddress(s), nil
}

func newDatasource(client datasources.LogClient, contractAddress common.Address, conf config.Config) *datasources.EVMLogs {
	mconf := conf.Modules.Marketplace
	return datasources.NewEVMLogs(client, datasources.EVMLogsConfig{
		Query:         contract.FilterQuery(contractAddress),
		ChunkSize:     mconf.Datasource.ChunkSize,
		MaxBlockRange: conf.EVMNode.MaxBlockRange,
		Confirmations: mconf.Datasource.Confirmations,
		Concurrency:   mconf.Datasource.Concurrency,
	})
}

func newListingSource(ctx context.Context, mconf marketplaceconfig.Config, dg datagateway.MarketplaceDataGateway, datasource *datasources.EVMLogs, contractAddress common.Address, node config.EVMNodeClient) (source.ListingSource, error) {
	switch strings.ToLower(mconf.ListingSource) {
	case marketplaceconfig.ListingSourceMaterialized, "":
		return source.NewMaterialized(dg), nil
	case marketplaceconfig.ListingSourceLogScan:
		scan := source.NewLogScan(eventsource.New(datasource, contractAddress), datasource, source.LogScanConfig{
			StartBlock: mconf.StartBlock,
			ScanBlocks: mconf.ScanBlocks,
			ChunkSize:  mconf.Datasource.ChunkSize,
		})
		// lives as long as the process, API-only instances included
		go func() {
			if err := scan.Run(ctx, mconf.Datasource.PollingInterval); err != nil {
				logger.ErrorContext(ctx, "Listing scan stopped", err)
			}
		}()
		return scan, nil
	case marketplaceconfig.ListingSourceSubgraph:
		subgraph, err := source.NewSubgraph(mconf.SubgraphURL, node.RequestTimeout)
		if err != nil {
			return nil, errors.Wrap(err, "invalid subgraph configuration")
		}
		return subgraph, nil
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q listing source is not supported", mconf.ListingSource)
	}
}
