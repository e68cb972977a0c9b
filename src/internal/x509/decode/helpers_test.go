// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"crypto/x509"
	"crypto/x509/pkix"
	encoding_asn1 "encoding/asn1"
	"fmt"
	"io"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	oidCommonName   = encoding_asn1.ObjectIdentifier{2, 5, 4, 3}
	oidCountry      = encoding_asn1.ObjectIdentifier{2, 5, 4, 6}
	oidOrganization = encoding_asn1.ObjectIdentifier{2, 5, 4, 10}
	oidOrgUnit      = encoding_asn1.ObjectIdentifier{2, 5, 4, 11}
)

// atv is one AttributeTypeAndValue fixture.
type atv struct {
	oid   encoding_asn1.ObjectIdentifier
	tag   asn1.Tag
	value []byte
}

func utf8ATV(oid encoding_asn1.ObjectIdentifier, v string) atv {
	return atv{oid: oid, tag: asn1.UTF8String, value: []byte(v)}
}

func cn(v string) atv { return utf8ATV(oidCommonName, v) }

// buildName encodes an RDNSequence, one SET per rdn.
func buildName(t testing.TB, rdns ...[]atv) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, rdn := range rdns {
			b.AddASN1(asn1.SET, func(b *cryptobyte.Builder) {
				for _, a := range rdn {
					b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
						b.AddASN1ObjectIdentifier(a.oid)
						b.AddASN1(a.tag, func(b *cryptobyte.Builder) { b.AddBytes(a.value) })
					})
				}
			})
		}
	})

	der, err := b.Bytes()
	require.NoError(t, err)
	return der
}

func gnEntry(tag int, content []byte) rawGeneralName {
	compound := tag == TagOtherName || tag == TagX400Address || tag == TagDirectoryName || tag == TagEDIPartyName
	return rawGeneralName{tag: tag, compound: compound, content: content}
}

func addGeneralName(b *cryptobyte.Builder, n rawGeneralName) {
	tag := asn1.Tag(n.tag).ContextSpecific()
	if n.compound {
		tag = tag.Constructed()
	}
	b.AddASN1(tag, func(b *cryptobyte.Builder) { b.AddBytes(n.content) })
}

// buildGeneralNames encodes a GeneralNames SEQUENCE.
func buildGeneralNames(t testing.TB, names ...rawGeneralName) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, n := range names {
			addGeneralName(b, n)
		}
	})

	der, err := b.Bytes()
	require.NoError(t, err)
	return der
}

type accessDescription struct {
	method   encoding_asn1.ObjectIdentifier
	location rawGeneralName
}

func buildAIA(t testing.TB, descs ...accessDescription) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, d := range descs {
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1ObjectIdentifier(d.method)
				addGeneralName(b, d.location)
			})
		}
	})

	der, err := b.Bytes()
	require.NoError(t, err)
	return der
}

// distributionPoint is a CRL-DP fixture. A nil fullName with relative set
// encodes nameRelativeToCRLIssuer instead.
type distributionPoint struct {
	fullName  []rawGeneralName
	relative  bool
	crlIssuer []rawGeneralName
}

func buildCRLDP(t testing.TB, dps ...distributionPoint) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, dp := range dps {
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				switch {
				case dp.fullName != nil:
					b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
						b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
							for _, n := range dp.fullName {
								addGeneralName(b, n)
							}
						})
					})
				case dp.relative:
					b.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
						b.AddASN1(asn1.Tag(1).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
							b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
								b.AddASN1ObjectIdentifier(oidCommonName)
								b.AddASN1(asn1.UTF8String, func(b *cryptobyte.Builder) { b.AddBytes([]byte("crl")) })
							})
						})
					})
				}
				if dp.crlIssuer != nil {
					b.AddASN1(asn1.Tag(2).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
						for _, n := range dp.crlIssuer {
							addGeneralName(b, n)
						}
					})
				}
			})
		}
	})

	der, err := b.Bytes()
	require.NoError(t, err)
	return der
}

func ext(oid encoding_asn1.ObjectIdentifier, value []byte) pkix.Extension {
	return pkix.Extension{Id: oid, Value: value}
}

// newCert builds a certificate handle directly, bypassing the stricter
// checks of x509.ParseCertificate so malformed fixtures can be expressed.
func newCert(t testing.TB, exts ...pkix.Extension) *x509.Certificate {
	t.Helper()

	return &x509.Certificate{
		RawSubject:   buildName(t, []atv{cn("leaf.example")}),
		RawIssuer:    buildName(t, []atv{utf8ATV(oidCountry, "US")}, []atv{cn("Example CA")}),
		Version:      3,
		SerialNumber: big.NewInt(0x1234),
		NotBefore:    time.Date(2026, time.February, 6, 8, 41, 4, 0, time.UTC),
		NotAfter:     time.Date(2027, time.November, 24, 18, 0, 0, 0, time.UTC),
		Extensions:   exts,
	}
}

// recordingLogger keeps every warning for inspection.
type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Println(v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprint(v...))
}

func (l *recordingLogger) Warnf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) SetOutput(io.Writer) {}

func (l *recordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warnings...)
}
