// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no path is given.
const EnvConfigFile = "X509_DECODER_CONFIG_FILE"

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Logging formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default values applied before any file is read.
const (
	DefaultNameMaxLength = 256
	DefaultScratchSize   = 2048
	DefaultIndent        = 2
)

// ErrInvalidConfig indicates a configuration file that does not satisfy the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// fileFormat represents supported configuration file formats.
type fileFormat int

const (
	// fileFormatJSON represents JSON configuration format (.json)
	fileFormatJSON fileFormat = iota
	// fileFormatYAML represents YAML configuration format (.yaml, .yml)
	fileFormatYAML
)

// Config represents the decoder configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given explicitly or
// through the X509_DECODER_CONFIG_FILE environment variable, with defaults
// applied for any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Decoder: Bounds applied while decoding certificates
	Decoder struct {
		// NameMaxLength: Buffer size for object identifier text, terminator included
		NameMaxLength int `json:"nameMaxLength" yaml:"nameMaxLength"`
		// ScratchSize: Buffer size for one rendered scalar or printed general name
		ScratchSize int `json:"scratchSize" yaml:"scratchSize"`
	} `json:"decoder" yaml:"decoder"`

	// Output: How decoded records are written
	Output struct {
		// Format: One of json, yaml or table
		Format string `json:"format" yaml:"format"`
		// Indent: Indentation width for json and yaml
		Indent int `json:"indent" yaml:"indent"`
	} `json:"output" yaml:"output"`

	// Logging: Warning and diagnostic output
	Logging struct {
		// Format: text for human-readable lines, json for one object per line
		Format string `json:"format" yaml:"format"`
		// Silent: Drop every log message
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"logging" yaml:"logging"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	c := &Config{}
	c.Decoder.NameMaxLength = DefaultNameMaxLength
	c.Decoder.ScratchSize = DefaultScratchSize
	c.Output.Format = FormatJSON
	c.Output.Indent = DefaultIndent
	c.Logging.Format = LogFormatText
	return c
}

// detectFormat determines the configuration file format based on file extension.
// Extension matching is case-insensitive; anything other than .yaml or .yml is JSON.
func detectFormat(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return fileFormatYAML
	default:
		return fileFormatJSON
	}
}

// unmarshal parses data in the given format into config.
func unmarshal(data []byte, config *Config, format fileFormat) error {
	switch format {
	case fileFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config with defaults applied
//   - An error if the file cannot be read, fails schema validation, or cannot be parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_DECODER_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults (if a file is given and valid)
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, detectFormat(path) == fileFormatYAML, config)
}

// Parse validates data against the configuration schema and merges it over
// base. YAML input is selected with isYAML; JSON otherwise. A nil base
// starts from [Default].
func Parse(data []byte, isYAML bool, base *Config) (*Config, error) {
	if base == nil {
		base = Default()
	}

	format := fileFormatJSON
	if isYAML {
		format = fileFormatYAML
	}

	if err := validate(data, format); err != nil {
		return nil, err
	}
	if err := unmarshal(data, base, format); err != nil {
		return nil, err
	}

	return base, nil
}
