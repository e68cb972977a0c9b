// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// The decoder CLI uses it to print its own name in usage lines the way the
// user invoked it, on [Unix-like] systems and on Windows alike:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName() + " [flags] FILE...",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
// [Unix-like]: https://grokipedia.com/page/Unix-like
package posix
