package cmd

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

// dialEVMNode connects to the websocket endpoint when one is configured, so the live watcher
// can subscribe, and checks the node is on the configured network.
func dialEVMNode(ctx context.Context, conf config.Config) (*ethclient.Client, error) {
	endpoint := conf.EVMNode.WSURL
	if endpoint == "" {
		endpoint = conf.EVMNode.RPCURL
	}
	if endpoint == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "evm_node.rpc_url is required")
	}

	start := time.Now()
	logger.InfoContext(ctx, "Connecting to EVM node...")
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "can't connect to EVM node")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "can't get chain id from EVM node")
	}
	if expected := conf.Network.ChainID(); expected == nil || expected.Cmp(chainID) != 0 {
		client.Close()
		return nil, errors.Wrapf(errs.ConflictSetting, "EVM node is on chain %s, %q network expects %v", chainID, conf.Network, expected)
	}
	logger.InfoContext(ctx, "Connected to EVM node",
		slogx.Stringer("chain_id", chainID),
		slogx.Duration("latency", time.Since(start)),
	)
	return client, nil
}
