// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	encoding_asn1 "encoding/asn1"
	"fmt"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// NameEntry is one AttributeTypeAndValue of an encoded Name together with
// the index of the SET it was read from. Entries sharing Set form one RDN.
type NameEntry struct {
	Set   int
	Type  encoding_asn1.ObjectIdentifier
	Tag   asn1.Tag
	Value []byte
}

// RDN is a relative distinguished name: the attributes of one SET, in encoding order.
type RDN []Attribute

// String joins the attributes of a multi-valued RDN with "+".
func (r RDN) String() string {
	parts := make([]string, len(r))
	for i, a := range r {
		parts[i] = a.String()
	}
	return strings.Join(parts, "+")
}

// DistinguishedName is the ordered sequence of RDNs of a Name.
type DistinguishedName []RDN

// String joins the RDNs with ", " in encoding order.
func (dn DistinguishedName) String() string {
	parts := make([]string, len(dn))
	for i, rdn := range dn {
		parts[i] = rdn.String()
	}
	return strings.Join(parts, ", ")
}

// Len returns the total number of attributes across all RDNs.
func (dn DistinguishedName) Len() int {
	n := 0
	for _, rdn := range dn {
		n += len(rdn)
	}
	return n
}

// parseNameEntries flattens a DER Name into entries tagged with their SET index.
//
//	Name ::= CHOICE { rdnSequence RDNSequence }
//	RDNSequence ::= SEQUENCE OF RelativeDistinguishedName
//	RelativeDistinguishedName ::= SET SIZE (1..MAX) OF AttributeTypeAndValue
//	AttributeTypeAndValue ::= SEQUENCE { type OBJECT IDENTIFIER, value ANY }
func parseNameEntries(der cryptobyte.String) ([]NameEntry, error) {
	var rdnSequence cryptobyte.String
	if !der.ReadASN1(&rdnSequence, asn1.SEQUENCE) || !der.Empty() {
		return nil, fmt.Errorf("%w: failed to read RDNSequence", ErrMalformedName)
	}

	var entries []NameEntry
	for set := 0; !rdnSequence.Empty(); set++ {
		var atvSet cryptobyte.String
		if !rdnSequence.ReadASN1(&atvSet, asn1.SET) {
			return nil, fmt.Errorf("%w: failed to read RDN set %d", ErrMalformedName, set)
		}

		for !atvSet.Empty() {
			var atv cryptobyte.String
			if !atvSet.ReadASN1(&atv, asn1.SEQUENCE) {
				return nil, fmt.Errorf("%w: failed to read ATV", ErrMalformedName)
			}

			e := NameEntry{Set: set}
			if !atv.ReadASN1ObjectIdentifier(&e.Type) {
				return nil, ErrMalformedOID
			}

			var value cryptobyte.String
			if !atv.ReadAnyASN1(&value, &e.Tag) || !atv.Empty() {
				return nil, fmt.Errorf("%w: failed to read ATV value", ErrMalformedName)
			}
			e.Value = value

			entries = append(entries, e)
		}
	}

	return entries, nil
}

// groupEntries builds RDNs from flattened entries. A change of Set between
// consecutive entries closes the current RDN; a trailing open RDN is always
// appended. No entries yields a nil (absent) name.
func (d *Decoder) groupEntries(entries []NameEntry) (DistinguishedName, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	var (
		dn    DistinguishedName
		rdn   RDN
		level = -1
	)

	for _, e := range entries {
		if level >= 0 && level != e.Set {
			dn = append(dn, rdn)
			rdn = nil
		}
		level = e.Set

		attr, err := d.attribute(e)
		if err != nil {
			return nil, err
		}
		rdn = append(rdn, attr)
	}

	if len(rdn) > 0 {
		dn = append(dn, rdn)
	}

	return dn, nil
}

// decodeName decodes a DER Name. Empty input or an empty RDNSequence yields nil.
func (d *Decoder) decodeName(op string, raw []byte) (DistinguishedName, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	entries, err := parseNameEntries(cryptobyte.String(raw))
	if err != nil {
		return nil, cryptoErr(op, err)
	}

	dn, err := d.groupEntries(entries)
	if err != nil {
		return nil, cryptoErr(op, err)
	}
	return dn, nil
}
