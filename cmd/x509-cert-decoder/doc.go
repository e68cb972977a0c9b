// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-cert-decoder is a command-line tool that extracts the identity and
// location fields of X.509 certificates into structured records.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-decoder/cmd/x509-cert-decoder@latest
//
// # Usage
//
//	x509-cert-decoder [FLAGS] FILE...
//
// # Flags
//
//	    --config    Configuration file (.json, .yaml, .yml); defaults to $X509_DECODER_CONFIG_FILE
//	-f, --format    Output format: json, yaml or table
//	-o, --output    Destination file (default: stdout)
//	    --log-json  Emit warnings as JSON lines
//	-q, --quiet     Suppress warnings
//
// # Examples
//
// Decode a PEM bundle to JSON:
//
//	x509-cert-decoder chain.pem
//
// Decode a certificate fetched with OpenSSL as a markdown table:
//
//	openssl s_client -connect example.com:443 </dev/null 2>/dev/null | x509-cert-decoder -f table -
//
// The exit status is 1 when any certificate fails to decode or is unusable.
package main
