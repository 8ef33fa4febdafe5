package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yyocio-drip/hpack/internal/client/cli/ui"
	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

func newEncodeCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a header list (\"Name: Value\" lines, or a YAML/JSON pair list) into an HPACK block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer recoverer.Recover("encode")

			fields, err := loadFields(args)
			if err != nil {
				return fmt.Errorf("parsing header lines: %w", err)
			}
			if len(fields) == 0 {
				return fmt.Errorf("no headers to encode")
			}

			size := encoderTableSize()
			enc := hpack.NewEncoder(size)

			if verbose {
				for _, f := range fields {
					logger.Debug("representation choice",
						zap.String("field", f.Name+": "+f.Value),
						zap.String("representation", representationLabel(enc.Lookup(f))),
					)
				}
			}

			dest := make([]byte, 64*1024)
			session, n, err := enc.BeginEncode(dest, fields, true)
			if err != nil {
				return fmt.Errorf("encoding header block: %w", err)
			}
			for !session.Done() {
				more, err := enc.Encode(session, dest)
				if err != nil {
					return fmt.Errorf("encoding continuation: %w", err)
				}
				if more == 0 {
					return fmt.Errorf("destination buffer exhausted with fields still pending")
				}
				n += more
			}

			logger.Info("encoded header block",
				zap.Int("fields", len(fields)),
				zap.Int("bytes", n),
				zap.Uint32("dynamic_table_size", size),
			)

			if outPath != "" {
				if err := os.WriteFile(outPath, dest[:n], 0o644); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			}

			table := ui.NewTable([]string{"field", "size"}).WithTitle("encoded header block")
			for _, f := range fields {
				table.AddRow([]string{f.Name + ": " + f.Value, fmt.Sprintf("%d", f.Size())})
			}
			table.Print()

			fmt.Printf("% x\n", dest[:n])
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write the raw encoded bytes to this file")

	return cmd
}

// representationLabel describes what Lookup found before the field is
// actually encoded. It reflects the dynamic table's state at the start of
// the batch, so a field that only becomes indexed because an earlier,
// identical field in the same list was just inserted still reports as a
// literal here — this is a best-effort diagnostic, not a precise trace of
// BeginEncode's field-by-field representation choices.
func representationLabel(r hpack.LookupResult) string {
	switch {
	case r.ExactIndex != 0:
		return "indexed field"
	case r.NameIndex != 0:
		return "literal, indexed name"
	default:
		return "literal, new name"
	}
}
