// Package formats renders CLI results as JSON, YAML or TOML.
//
// Values are first encoded as JSON so every format uses the same field
// names (the json struct tags).
package formats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format is an output encoding
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var api = sonic.Config{UseInt64: true, SortMapKeys: true}.Froze()

// Supported lists every format name
func Supported() []string {
	return []string{string(JSON), string(YAML), string(TOML)}
}

// Parse validates a format name
func Parse(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case JSON, YAML, TOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: %s)", name, strings.Join(Supported(), ", "))
	}
}

// Encode renders v in the given format
func Encode(format Format, v interface{}) ([]byte, error) {
	if format == JSON {
		out, err := api.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(out, '\n'), nil
	}

	generic, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	switch format {
	case YAML:
		out, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return out, nil
	case TOML:
		// TOML documents must be tables
		table, ok := generic.(map[string]interface{})
		if !ok {
			table = map[string]interface{}{"items": generic}
		}
		out, err := toml.Marshal(table)
		if err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func toGeneric(v interface{}) (interface{}, error) {
	data, err := api.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	var generic interface{}
	if err := api.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	return dropNulls(generic), nil
}

// dropNulls removes null map values, which TOML cannot represent
func dropNulls(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if t[k] == nil {
				delete(t, k)
				continue
			}
			t[k] = dropNulls(t[k])
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = dropNulls(t[i])
		}
		return t
	default:
		return v
	}
}
