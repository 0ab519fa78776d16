package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace"
	"github.com/spf13/cobra"
)

type exportCmdOptions struct {
	From   uint64
	To     uint64
	Bucket string
}

func NewExportCommand() *cobra.Command {
	opts := &exportCmdOptions{}

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export indexed marketplace events of a block range to the archive bucket",
		Example: `gaze-marketplace export --from 5000000 --to 5099999`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.From, "from", 0, "First block to export")
	flags.Uint64Var(&opts.To, "to", 0, "Last block to export")
	_ = cmd.MarkFlagRequired("to")

	flags.StringVar(&opts.Bucket, "bucket", "", "Archive bucket. Overrides the configured bucket")

	return cmd
}

func exportHandler(opts *exportCmdOptions, cmd *cobra.Command, _ []string) error {
	if opts.From > opts.To {
		return errors.Wrapf(errs.InvalidArgument, "--from %d is after --to %d", opts.From, opts.To)
	}
	conf := config.Load()
	if opts.Bucket != "" {
		conf.Modules.Marketplace.Archive.Bucket = opts.Bucket
	}
	key, count, err := marketplace.Export(cmd.Context(), conf, opts.From, opts.To)
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d events to %s\n", count, key)
	return nil
}
