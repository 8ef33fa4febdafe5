package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
	"github.com/yyocio-drip/hpack/internal/shared/constants"
)

// headerPair is the structured shape a YAML or JSON header-list file holds
// one of, per entry.
type headerPair struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// LoadHeaderFile reads a header list from path, picking a format by
// extension: ".yaml"/".yml" unmarshals a sequence of {name, value} pairs
// with gopkg.in/yaml.v3, ".json" does the same with goccy/go-json, and
// anything else is read as plain "Name: Value" lines via ParseHeaderLines.
func LoadHeaderFile(path string) ([]hpack.HeaderField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var pairs []headerPair
		if err := yaml.Unmarshal(data, &pairs); err != nil {
			return nil, fmt.Errorf("parsing %s as YAML: %w", path, err)
		}
		return headerFieldsFromPairs(path, pairs)
	case ".json":
		var pairs []headerPair
		if err := json.Unmarshal(data, &pairs); err != nil {
			return nil, fmt.Errorf("parsing %s as JSON: %w", path, err)
		}
		return headerFieldsFromPairs(path, pairs)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ParseHeaderLines(f)
	}
}

func headerFieldsFromPairs(path string, pairs []headerPair) ([]hpack.HeaderField, error) {
	if len(pairs) > constants.MaxHeaderListFields {
		return nil, fmt.Errorf("%s: header list exceeds %d fields", path, constants.MaxHeaderListFields)
	}
	fields := make([]hpack.HeaderField, len(pairs))
	for i, p := range pairs {
		fields[i] = hpack.HeaderField{Name: p.Name, Value: p.Value}
	}
	return fields, nil
}
