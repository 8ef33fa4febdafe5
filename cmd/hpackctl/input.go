package main

import (
	"os"

	"github.com/yyocio-drip/hpack/internal/client/cli"
	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

// loadFields reads a subcommand's header list: from the file named in args
// if one was given, from stdin otherwise. When the config's lowercase
// policy is on (the default), names are folded before the encoder ever
// sees them, so lookups hit the static table however the input cased them.
func loadFields(args []string) ([]hpack.HeaderField, error) {
	var fields []hpack.HeaderField
	var err error
	if len(args) == 1 {
		fields, err = cli.LoadHeaderFile(args[0])
	} else {
		fields, err = cli.ParseHeaderLines(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Lowercase {
		fields = cli.FoldFieldNames(fields)
	}
	return fields, nil
}

// encoderTableSize resolves the dynamic table size for a new encoder: the
// --table-size flag when set, the config's value otherwise.
func encoderTableSize() uint32 {
	if tableSize != 0 {
		return tableSize
	}
	return cfg.HeaderTableSize
}
