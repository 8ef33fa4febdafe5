package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yyocio-drip/hpack/internal/client/cli"
	"github.com/yyocio-drip/hpack/internal/client/cli/ui"
	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

// newBatchCmd runs one Encoder per file, each on its own goroutine via
// recoverer.SafeGo, so a pathological header value in one file can't take
// the others down with it. Encoders are never shared across connection
// directions, so this mirrors how a real caller would fan out across
// independent streams.
func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file> [file...]",
		Short: "Encode several header-list files concurrently, one Encoder per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := encoderTableSize()

			type result struct {
				path  string
				bytes int
				err   error
			}
			results := make([]result, len(args))

			var wg sync.WaitGroup
			for i, path := range args {
				i, path := i, path
				wg.Add(1)
				recoverer.SafeGo(fmt.Sprintf("batch:%s", path), func() {
					defer wg.Done()

					fields, err := cli.LoadHeaderFile(path)
					if err != nil {
						results[i] = result{path: path, err: err}
						return
					}
					if cfg.Lowercase {
						fields = cli.FoldFieldNames(fields)
					}

					enc := hpack.NewEncoder(size)
					dest := make([]byte, 64*1024)
					_, n, err := enc.BeginEncode(dest, fields, true)
					results[i] = result{path: path, bytes: n, err: err}
				})
			}
			wg.Wait()

			table := ui.NewTable([]string{"file", "bytes", "error"}).WithTitle("batch encode")
			for _, r := range results {
				errText := ""
				if r.err != nil {
					errText = r.err.Error()
				}
				table.AddRow([]string{r.path, fmt.Sprintf("%d", r.bytes), errText})
			}
			table.Print()

			logger.Info("batch encode complete", zap.Int("files", len(args)))
			return nil
		},
	}

	return cmd
}
