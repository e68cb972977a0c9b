// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
)

// extensionIndex returns the index of the first extension after lastpos whose
// ID is oid, or -1. Pass -1 to search from the start.
func extensionIndex(cert *x509.Certificate, oid asn1.ObjectIdentifier, lastpos int) int {
	for i := lastpos + 1; i < len(cert.Extensions); i++ {
		if cert.Extensions[i].Id.Equal(oid) {
			return i
		}
	}
	return -1
}

// altNames collects the general names of every occurrence of a
// GeneralNames-valued extension, in extension order then encoding order.
//
// present reports whether at least one occurrence exists. names is nil when
// nothing decoded, even if the extension is present.
func (d *Decoder) altNames(cert *x509.Certificate, oid asn1.ObjectIdentifier, s *scratch) (names []GeneralName, present bool, err error) {
	for i := extensionIndex(cert, oid, -1); i >= 0; i = extensionIndex(cert, oid, i) {
		present = true

		decoded, err := d.altNameOccurrence(cert.Extensions[i], s)
		if err != nil {
			return nil, true, err
		}
		names = append(names, decoded...)
	}

	if len(names) == 0 {
		return nil, present, nil
	}
	return names, present, nil
}

// altNameOccurrence decodes a single extension occurrence. The decoded
// name list lives only for the duration of this call.
func (d *Decoder) altNameOccurrence(ext pkix.Extension, s *scratch) ([]GeneralName, error) {
	m, ok := d.methods[ext.Id.String()]
	if !ok || !m.usable() {
		name, _ := oidText(ext.Id, d.nameMaxLen)
		return nil, cryptoErr(name, ErrNoExtensionMethod)
	}

	raw, err := m.decode(ext.Value)
	if err != nil {
		return nil, cryptoErr(m.name, err)
	}

	out := make([]GeneralName, 0, len(raw))
	for _, gn := range raw {
		name, ok, err := d.generalName(gn, s)
		if err != nil {
			return nil, cryptoErr(m.name, err)
		}
		if ok {
			out = append(out, name)
		}
	}
	return out, nil
}
