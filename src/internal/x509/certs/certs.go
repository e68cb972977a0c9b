// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is neither a certificate nor PKCS7.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrEmptyInput indicates that there was nothing to decode.
	ErrEmptyInput = errors.New("x509certs: empty input")

	// ErrReadInput indicates a failure to read certificate data from a source.
	ErrReadInput = errors.New("x509certs: failed to read input")
)

// Certificate turns PEM, DER and [PKCS7] encoded input into parsed [X.509]
// certificate handles for the decoder.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
type Certificate struct {
	certBlockType  string
	pkcs7BlockType string
	pool           gc.Pool
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType:  "CERTIFICATE",
		pkcs7BlockType: "PKCS7",
		pool:           gc.Default,
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeMultiple decodes every certificate in data, in input order.
//
// data may hold concatenated PEM blocks (CERTIFICATE or PKCS7), concatenated
// DER certificates, or a DER PKCS7 bundle.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	if c.IsPEM(data) {
		var certs []*x509.Certificate

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}

			switch block.Type {
			case c.certBlockType:
				cert, err := x509.ParseCertificate(block.Bytes)
				if err != nil {
					return nil, ErrParseCertificate
				}
				certs = append(certs, cert)
			case c.pkcs7BlockType:
				bundle, err := c.decodePKCS7(block.Bytes)
				if err != nil {
					return nil, err
				}
				certs = append(certs, bundle...)
			default:
				return nil, ErrInvalidBlockType
			}

			data = rest
		}

		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err == nil {
		return certs, nil
	}

	return c.decodePKCS7(data)
}

// decodePKCS7 parses a PKCS7 SignedData bundle using Cloudflare's library.
func (c *Certificate) decodePKCS7(data []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates, nil
}

// Load reads r to the end and decodes every certificate it holds.
//
// The input is staged in a pooled buffer that is released before Load
// returns; the parsed certificates do not reference it.
func (c *Certificate) Load(r io.Reader) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	err := gc.With(c.pool, func(buf gc.Buffer) error {
		if _, err := buf.ReadFrom(r); err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		// Parsed certificates slice into their input.
		data := bytes.Clone(buf.Bytes())
		decoded, err := c.DecodeMultiple(data)
		if err != nil {
			return err
		}

		certs = decoded
		return nil
	})

	return certs, err
}

// LoadFile decodes every certificate in the named file. The name "-" reads
// standard input.
func (c *Certificate) LoadFile(name string) ([]*x509.Certificate, error) {
	if name == "-" {
		return c.Load(os.Stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close()

	return c.Load(f)
}
