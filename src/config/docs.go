// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads decoder settings from JSON or YAML files.
//
// Files are validated against an embedded JSON Schema with [gojsonschema]
// before they are merged over the defaults, so unknown keys, wrong types and
// out-of-range values are rejected with a message naming the offending field.
//
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
package config
