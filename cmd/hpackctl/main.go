// Command hpackctl is a small inspection tool for the HPACK encoder: it
// turns a file of "Name: Value" header lines into the compressed octet
// stream RFC 7541 describes, and can show the dynamic table state that
// results from encoding a sequence of header blocks.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spf13/cobra"

	clicfg "github.com/yyocio-drip/hpack/internal/client/cli"
	"github.com/yyocio-drip/hpack/internal/shared/recovery"
)

var (
	configPath string
	verbose    bool
	tableSize  uint32

	logger    *zap.Logger
	recoverer *recovery.Recoverer
	cfg       clicfg.Config
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hpackctl",
		Short:         "Inspect and exercise the HPACK header-compression encoder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = clicfg.NewLogger(verbose)
			if err != nil {
				return err
			}

			metrics := clicfg.NewMetrics(logger)
			recoverer = recovery.NewRecoverer(logger, metrics)

			cfg, err = clicfg.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config %s: %w", configPath, err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return logger.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "hpackctl.yaml", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")
	root.PersistentFlags().Uint32Var(&tableSize, "table-size", 0, "dynamic table size in RFC-cost units (0 = config default)")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newFrameCmd())
	root.AddCommand(newBatchCmd())

	return root
}
