package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats supported by Marshal
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Marshal renders cfg in the given format using the same field names as config.toml
func Marshal(cfg *Config, format string) ([]byte, error) {
	fc := toFile(cfg)

	switch format {
	case FormatTOML, "":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fc); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
