// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected fileFormat
	}{
		{"config.json", fileFormatJSON},
		{"config.yaml", fileFormatYAML},
		{"config.YML", fileFormatYAML},
		{"config", fileFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFormat(tt.path))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultNameMaxLength, cfg.Decoder.NameMaxLength)
	assert.Equal(t, DefaultScratchSize, cfg.Decoder.ScratchSize)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, DefaultIndent, cfg.Output.Indent)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.False(t, cfg.Logging.Silent)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "JSON",
			file: "config.json",
			content: `{
				"decoder": {"nameMaxLength": 80},
				"output": {"format": "table"},
				"logging": {"format": "json", "silent": true}
			}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 80, cfg.Decoder.NameMaxLength)
				assert.Equal(t, DefaultScratchSize, cfg.Decoder.ScratchSize, "unset keys keep defaults")
				assert.Equal(t, FormatTable, cfg.Output.Format)
				assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
				assert.True(t, cfg.Logging.Silent)
			},
		},
		{
			name: "YAML",
			file: "config.yaml",
			content: `decoder:
  scratchSize: 4096
output:
  format: yaml
  indent: 4
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 4096, cfg.Decoder.ScratchSize)
				assert.Equal(t, FormatYAML, cfg.Output.Format)
				assert.Equal(t, 4, cfg.Output.Indent)
				assert.Equal(t, DefaultNameMaxLength, cfg.Decoder.NameMaxLength)
			},
		},
		{
			name:    "Empty YAML",
			file:    "config.yml",
			content: "",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := Load(path)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decoder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"indent": 0}}`), 0o600))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Output.Indent)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		schemaFail bool
	}{
		{name: "Unknown Key", file: "c.json", content: `{"ai": {"model": "x"}}`, schemaFail: true},
		{name: "Unknown Output Format", file: "c.json", content: `{"output": {"format": "xml"}}`, schemaFail: true},
		{name: "Name Length Too Small", file: "c.yaml", content: "decoder:\n  nameMaxLength: 1\n", schemaFail: true},
		{name: "Wrong Type", file: "c.yaml", content: "logging:\n  silent: maybe\n", schemaFail: true},
		{name: "Malformed JSON", file: "c.json", content: `{"output":`},
		{name: "Malformed YAML", file: "c.yaml", content: "output: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.schemaFail {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParse_NilBase(t *testing.T) {
	cfg, err := Parse([]byte(`{"decoder": {"scratchSize": 64}}`), false, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Decoder.ScratchSize)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}
