package cmd

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace"
	"github.com/spf13/cobra"
)

type scanCmdOptions struct {
	From      uint64
	To        uint64
	ChunkSize uint64
}

func NewScanCommand() *cobra.Command {
	opts := &scanCmdOptions{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan marketplace events once and print the active listings as JSON",
		Long: `Fetches every Listed, Canceled and Bought event of the block range and prints the listings
active at its last block. Exits with an error after printing when some ranges couldn't be fetched.`,
		Example: `gaze-marketplace scan --from 5000000 --to 5100000 --chunk-size 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scanHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.From, "from", 0, "First block to scan. Default is the configured start block")
	flags.Uint64Var(&opts.To, "to", 0, "Last block to scan. Default is the latest confirmed block")
	flags.Uint64Var(&opts.ChunkSize, "chunk-size", datasources.DefaultChunkSize, "Maximum blocks per eth_getLogs request")

	return cmd
}

func scanHandler(opts *scanCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Load()
	if opts.ChunkSize == 0 {
		return errors.Wrap(errs.InvalidArgument, "--chunk-size must be positive")
	}

	client, err := dialEVMNode(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}
	defer client.Close()

	from := opts.From
	if !cmd.Flags().Changed("from") {
		from = conf.Modules.Marketplace.StartBlock
	}
	to := opts.To
	if !cmd.Flags().Changed("to") {
		latest, err := client.BlockNumber(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get latest block")
		}
		confirmations := conf.Modules.Marketplace.Datasource.Confirmations
		if latest < confirmations {
			return errors.Wrap(errs.NotFound, "no confirmed block yet")
		}
		to = latest - confirmations
	}

	result, err := marketplace.Scan(ctx, client, conf, from, to, opts.ChunkSize)
	if err != nil {
		return errors.WithStack(err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return errors.Wrap(err, "failed to write result")
	}
	if result.Incomplete {
		return errors.Errorf("incomplete scan, failed ranges %v", result.FailedRanges)
	}
	return nil
}
