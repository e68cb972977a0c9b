// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"errors"
	"fmt"
)

var (
	// ErrCrypto matches every *CryptoError via errors.Is.
	ErrCrypto = errors.New("x509decode: crypto operation failed")

	// ErrNilCertificate indicates that the decoder was handed a nil certificate handle.
	ErrNilCertificate = errors.New("x509decode: nil certificate")

	// ErrMissingSerial indicates that the certificate handle carries no serial number.
	ErrMissingSerial = errors.New("x509decode: certificate has no serial number")

	// ErrNoExtensionMethod indicates that no decode method is registered for an extension.
	ErrNoExtensionMethod = errors.New("x509decode: no method for internalizing extension")

	// ErrMalformedOID indicates an object identifier that cannot be rendered as text.
	ErrMalformedOID = errors.New("x509decode: malformed object identifier")

	// ErrStringConversion indicates an ASN.1 string that cannot be converted to UTF-8.
	ErrStringConversion = errors.New("x509decode: ASN.1 string conversion failed")

	// ErrBufferRead indicates that rendering a scalar into the scratch buffer failed.
	ErrBufferRead = errors.New("x509decode: scratch buffer read failed")

	// ErrMalformedName indicates a distinguished name whose DER cannot be walked.
	ErrMalformedName = errors.New("x509decode: malformed distinguished name")

	// ErrMalformedGeneralNames indicates a GeneralNames payload whose DER cannot be walked.
	ErrMalformedGeneralNames = errors.New("x509decode: malformed general names")

	// ErrUnsupportedNameType is the warning raised for a general-name tag outside the
	// known set. It is logged, never returned.
	ErrUnsupportedNameType = errors.New("x509decode: unknown general-name type")

	// ErrMalformedCertificate reports a certificate that parsed but yielded a nil record.
	// Decode itself signals this with (nil, nil); callers that need an error value use this one.
	ErrMalformedCertificate = errors.New("x509decode: certificate present but unusable")
)

// CryptoError is the fatal error kind of the decoder. Op names the step that
// failed; Err is one of the package sentinels, possibly wrapped with detail.
//
// A CryptoError always aborts the whole decode: no partial record is returned.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

// Unwrap returns the underlying cause.
func (e *CryptoError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrCrypto].
func (e *CryptoError) Is(target error) bool { return target == ErrCrypto }

func cryptoErr(op string, err error) error {
	var ce *CryptoError
	if errors.As(err, &ce) {
		return err
	}
	return &CryptoError{Op: op, Err: err}
}
