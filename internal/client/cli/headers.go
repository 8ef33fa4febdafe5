package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
	"github.com/yyocio-drip/hpack/internal/shared/constants"
)

// ParseHeaderLines reads "Name: Value" pairs, one per line, the same shape
// curl -D or a raw HTTP head would produce. Blank lines and lines starting
// with '#' are skipped so a header file can carry comments. A file asking
// to encode more than constants.MaxHeaderListFields pairs in one block is
// rejected rather than handed to the encoder.
func ParseHeaderLines(r io.Reader) ([]hpack.HeaderField, error) {
	var fields []hpack.HeaderField

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return nil, fmt.Errorf("line %d: missing ':' separator: %q", lineNo, line)
		}

		name := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty header name", lineNo)
		}
		if len(fields) >= constants.MaxHeaderListFields {
			return nil, fmt.Errorf("line %d: header list exceeds %d fields", lineNo, constants.MaxHeaderListFields)
		}
		fields = append(fields, hpack.HeaderField{Name: name, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

// FoldFieldNames lowercases every field's name in place and returns fields.
// The encoder folds literal names on the wire regardless, but folding up
// front means table lookups hit the lowercase static entries no matter how
// the input file cased its names, so "Content-Type" compresses as well as
// "content-type" instead of going out as a new-name literal every time.
func FoldFieldNames(fields []hpack.HeaderField) []hpack.HeaderField {
	for i := range fields {
		fields[i].Name = strings.ToLower(fields[i].Name)
	}
	return fields
}
