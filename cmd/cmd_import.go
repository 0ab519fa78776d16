package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace"
	"github.com/spf13/cobra"
)

type importCmdOptions struct {
	Bucket string
}

func NewImportCommand() *cobra.Command {
	opts := &importCmdOptions{}

	cmd := &cobra.Command{
		Use:     "import <key>",
		Short:   "Apply an exported archive to the configured database",
		Args:    cobra.ExactArgs(1),
		Example: `gaze-marketplace import marketplace/1/5000000-5099999.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return importHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Bucket, "bucket", "", "Archive bucket. Overrides the configured bucket")

	return cmd
}

func importHandler(opts *importCmdOptions, cmd *cobra.Command, args []string) error {
	conf := config.Load()
	if opts.Bucket != "" {
		conf.Modules.Marketplace.Archive.Bucket = opts.Bucket
	}
	total, applied, err := marketplace.Import(cmd.Context(), conf, args[0])
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d events, %d changed a listing\n", total, applied)
	return nil
}
