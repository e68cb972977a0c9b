// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 certificate decoder.
// It implements a Cobra-based CLI that loads certificates from files or stdin,
// decodes each one into a record and prints the records as JSON, YAML or a
// markdown table. The package handles file I/O, configuration loading, context
// cancellation, and integrates with the logger package for warnings.
package cli
