// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"crypto/x509"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-decoder/src/logger"
)

// Decoder turns parsed certificates into [Record] values.
//
// A Decoder holds configuration only; every Decode call borrows its own
// buffers from the pool, so one Decoder is safe for concurrent use.
type Decoder struct {
	log         logger.Logger
	pool        gc.Pool
	nameMaxLen  int
	scratchSize int
	methods     map[string]extensionMethod
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the destination of non-fatal warnings. The default discards them.
func WithLogger(l logger.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// WithPool sets the pool that conversion and scratch buffers are borrowed from.
func WithPool(p gc.Pool) Option {
	return func(d *Decoder) {
		if p != nil {
			d.pool = p
		}
	}
}

// WithNameMaxLength bounds the text of an attribute name, terminator included.
func WithNameMaxLength(n int) Option {
	return func(d *Decoder) {
		if n > 1 {
			d.nameMaxLen = n
		}
	}
}

// WithScratchSize bounds one rendered scalar, terminator included.
func WithScratchSize(n int) Option {
	return func(d *Decoder) {
		if n > 1 {
			d.scratchSize = n
		}
	}
}

// New creates a Decoder with default settings.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		log:         logger.Discard,
		pool:        gc.Default,
		nameMaxLen:  DefaultNameMaxLength,
		scratchSize: DefaultScratchSize,
		methods:     defaultMethods(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode extracts the fields of cert.
//
// It returns (nil, nil) when cert parses but is unusable: empty subject or
// issuer, version zero, or a subjectAltName extension that yields no names.
// A *CryptoError aborts the decode; no partial record is ever returned.
func (d *Decoder) Decode(cert *x509.Certificate) (*Record, error) {
	if cert == nil {
		return nil, cryptoErr("certificate", ErrNilCertificate)
	}

	subject, err := d.decodeName("subject", cert.RawSubject)
	if err != nil {
		return nil, err
	}
	if len(subject) == 0 {
		return nil, nil
	}

	issuer, err := d.decodeName("issuer", cert.RawIssuer)
	if err != nil {
		return nil, err
	}
	if len(issuer) == 0 {
		return nil, nil
	}

	if cert.Version == 0 {
		return nil, nil
	}

	rec := &Record{
		Subject: subject,
		Issuer:  issuer,
		Version: cert.Version,
	}

	var usable bool
	err = gc.With(d.pool, func(buf gc.Buffer) error {
		var err error
		usable, err = d.decodeBody(cert, rec, &scratch{buf: buf, limit: d.scratchSize})
		return err
	})
	if err != nil || !usable {
		return nil, err
	}

	return rec, nil
}

// decodeBody fills the scalar and extension fields of rec. usable is false
// when a subjectAltName extension exists but yields nothing.
func (d *Decoder) decodeBody(cert *x509.Certificate, rec *Record, s *scratch) (usable bool, err error) {
	if cert.SerialNumber == nil {
		return false, cryptoErr("serialNumber", ErrMissingSerial)
	}

	if rec.SerialNumber, err = s.render(func(w gc.Buffer) error { return writeSerial(w, cert.SerialNumber) }); err != nil {
		return false, cryptoErr("serialNumber", err)
	}
	if rec.NotBefore, err = s.render(func(w gc.Buffer) error { return writeTime(w, cert.NotBefore) }); err != nil {
		return false, cryptoErr("notBefore", err)
	}
	if rec.NotAfter, err = s.render(func(w gc.Buffer) error { return writeTime(w, cert.NotAfter) }); err != nil {
		return false, cryptoErr("notAfter", err)
	}

	san, present, err := d.altNames(cert, oidExtSubjectAltName, s)
	if err != nil {
		return false, err
	}
	if present && san == nil {
		return false, nil
	}
	rec.SubjectAltName = san

	if rec.IssuerAltName, _, err = d.altNames(cert, oidExtIssuerAltName, s); err != nil {
		return false, err
	}

	rec.OCSP = d.authorityInfoAccess(cert, OIDAccessOCSP)
	rec.CAIssuers = d.authorityInfoAccess(cert, OIDAccessCAIssuers)
	rec.CRLDistributionPoints = d.crlDistributionPoints(cert)

	return true, nil
}

// DecodeAll decodes certs in order. The result has one entry per
// certificate; unusable certificates yield nil entries. The first
// *CryptoError aborts the batch.
func (d *Decoder) DecodeAll(certs []*x509.Certificate) ([]*Record, error) {
	records := make([]*Record, 0, len(certs))
	for _, cert := range certs {
		rec, err := d.Decode(cert)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
