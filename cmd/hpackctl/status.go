package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yyocio-drip/hpack/internal/client/cli/ui"
	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <code>",
		Short: "Encode an HTTP status code via the :status pseudo-header fast path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer recoverer.Recover("status")

			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid status code %q: %w", args[0], err)
			}

			dest := make([]byte, 16)
			n, ok, err := hpack.EncodeStatusPseudoHeader(dest, code)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("scratch buffer too small for status %d", code)
			}

			logger.Info("encoded :status pseudo-header", zap.Int("status", code), zap.Int("bytes", n))

			path := "without-indexing literal against the :status name index"
			if _, known := hpack.StatusCodeFastPathIndex(code); known {
				path = "indexed field, static table fast path"
			}
			fmt.Print(ui.RenderList([]string{
				fmt.Sprintf("representation: %s", path),
				fmt.Sprintf("bytes: % x", dest[:n]),
			}))
			return nil
		},
	}
	return cmd
}
