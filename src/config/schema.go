// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// schema constrains configuration files. Every key is optional; defaults fill the gaps.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "decoder": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "nameMaxLength": {"type": "integer", "minimum": 2, "maximum": 65536},
        "scratchSize": {"type": "integer", "minimum": 2, "maximum": 1048576}
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": {"type": "string", "enum": ["json", "yaml", "table"]},
        "indent": {"type": "integer", "minimum": 0, "maximum": 16}
      }
    },
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": {"type": "string", "enum": ["text", "json"]},
        "silent": {"type": "boolean"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// validate checks raw configuration data against the schema before it is
// unmarshaled. YAML is first decoded into a generic document.
func validate(data []byte, format fileFormat) error {
	var doc any

	switch format {
	case fileFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	// An empty YAML document is an empty configuration.
	if doc == nil {
		doc = map[string]any{}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
