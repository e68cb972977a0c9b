// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExecutableName is used when the process arguments carry no program name.
const DefaultExecutableName = "x509-cert-decoder"

// GetExecutableName returns the name the decoder was invoked as, without
// directory or .exe suffix.
func GetExecutableName() string { return ExecutableName(os.Args, DefaultExecutableName) }

// ExecutableName extracts a clean program name from args[0]:
//   - "/usr/local/bin/x509-cert-decoder" gives "x509-cert-decoder"
//   - "C:\bin\x509-cert-decoder.exe" gives "x509-cert-decoder", on any OS
//
// fallback is returned when args is empty or args[0] is blank.
func ExecutableName(args []string, fallback string) string {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fallback
	}

	name := filepath.Base(args[0])

	// A path written with the other platform's separator survives filepath.Base.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" {
		return fallback
	}
	return name
}
