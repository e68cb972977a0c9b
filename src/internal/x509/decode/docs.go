// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509decode extracts application-usable fields from a parsed [X.509]
// certificate: subject and issuer distinguished names, validity window, serial
// number, subject alternative names, [AIA] OCSP and CA-issuer URIs, and [CRL]
// distribution point URIs.
//
// The certificate handle is a [crypto/x509.Certificate] produced by the standard
// library parser. The decoder walks the raw DER the handle exposes (RawSubject,
// RawIssuer, extension values) with [cryptobyte] so that every general-name
// variant, multi-valued RDN and binary-safe string survives intact.
//
// The decoder is read-only. It never judges trust or verifies signatures.
//
// Decode returns one of three outcomes:
//   - a fully populated *Record,
//   - a nil *Record and nil error when the certificate parses but is unusable
//     (empty subject or issuer, version zero, or a subjectAltName extension
//     that yields no names),
//   - a *CryptoError when a lower-level conversion fails.
//
// [X.509]: https://grokipedia.com/page/X.509
// [AIA]: https://datatracker.ietf.org/doc/html/rfc5280#section-4.2.2.1
// [CRL]: https://datatracker.ietf.org/doc/html/rfc5280#section-4.2.1.13
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
package x509decode
