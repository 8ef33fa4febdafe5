package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yyocio-drip/hpack/internal/client/cli/ui"
	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Encode a header list and print the resulting dynamic table contents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer recoverer.Recover("inspect")

			fields, err := loadFields(args)
			if err != nil {
				return fmt.Errorf("parsing header lines: %w", err)
			}

			enc := hpack.NewEncoder(encoderTableSize())

			dest := make([]byte, 64*1024)
			if _, _, err := enc.BeginEncode(dest, fields, false); err != nil {
				return fmt.Errorf("encoding header block: %w", err)
			}

			ui.RenderDynamicTable(enc.DynamicTable()).Print()

			return nil
		},
	}

	return cmd
}
