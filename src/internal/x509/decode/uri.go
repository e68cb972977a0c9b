// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"crypto/x509"
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var errDuplicateExtension = errors.New("extension occurs more than once")

// uriCollector walks one extension payload and calls emit for every
// GeneralName that is a candidate location.
type uriCollector func(der cryptobyte.String, emit func(rawGeneralName) error) error

// extensionURIs locates a single-occurrence extension, runs collect over it
// and keeps the URI-typed names in encoding order, duplicates included.
//
// The result is best effort: a missing, duplicated or malformed extension
// yields nil, the latter two with a warning.
func (d *Decoder) extensionURIs(cert *x509.Certificate, oid encoding_asn1.ObjectIdentifier, collect uriCollector) []string {
	idx := extensionIndex(cert, oid, -1)
	if idx < 0 {
		return nil
	}

	name, _ := oidText(oid, d.nameMaxLen)
	if extensionIndex(cert, oid, idx) >= 0 {
		d.log.Warnf("ignoring %s: %v", name, errDuplicateExtension)
		return nil
	}

	var uris []string
	err := collect(cryptobyte.String(cert.Extensions[idx].Value), func(gn rawGeneralName) error {
		if gn.tag != TagURI {
			return nil
		}
		uri, err := ia5String(gn.content)
		if err != nil {
			return err
		}
		uris = append(uris, uri)
		return nil
	})
	if err != nil {
		d.log.Warnf("ignoring %s: %v", name, err)
		return nil
	}

	return uris
}

// authorityInfoAccess returns the URI locations of the AIA access
// descriptions whose accessMethod is method.
func (d *Decoder) authorityInfoAccess(cert *x509.Certificate, method encoding_asn1.ObjectIdentifier) []string {
	return d.extensionURIs(cert, oidExtAuthorityInfoAccess, func(der cryptobyte.String, emit func(rawGeneralName) error) error {
		//	AuthorityInfoAccessSyntax ::= SEQUENCE SIZE (1..MAX) OF AccessDescription
		//	AccessDescription ::= SEQUENCE {
		//	     accessMethod   OBJECT IDENTIFIER,
		//	     accessLocation GeneralName }
		var aia cryptobyte.String
		if !der.ReadASN1(&aia, asn1.SEQUENCE) || !der.Empty() {
			return errors.New("failed to read AIA extension")
		}

		for !aia.Empty() {
			var ad cryptobyte.String
			if !aia.ReadASN1(&ad, asn1.SEQUENCE) {
				return errors.New("failed to read AccessDescription")
			}

			var accessMethod encoding_asn1.ObjectIdentifier
			if !ad.ReadASN1ObjectIdentifier(&accessMethod) {
				return fmt.Errorf("parsing AccessMethod: %w", ErrMalformedOID)
			}

			location, err := readGeneralName(&ad)
			if err != nil {
				return fmt.Errorf("parsing AccessLocation: %w", err)
			}
			if !ad.Empty() {
				return errors.New("trailing data after AccessDescription")
			}

			if !accessMethod.Equal(method) {
				continue
			}
			if err := emit(location); err != nil {
				return err
			}
		}
		return nil
	})
}

// crlDistributionPoints returns the URI entries of every distribution point's fullName.
func (d *Decoder) crlDistributionPoints(cert *x509.Certificate) []string {
	return d.extensionURIs(cert, oidExtCRLDistributionPoints, func(der cryptobyte.String, emit func(rawGeneralName) error) error {
		//	CRLDistributionPoints ::= SEQUENCE SIZE (1..MAX) OF DistributionPoint
		//	DistributionPoint ::= SEQUENCE {
		//	     distributionPoint       [0]     DistributionPointName OPTIONAL,
		//	     reasons                 [1]     ReasonFlags OPTIONAL,
		//	     cRLIssuer               [2]     GeneralNames OPTIONAL }
		//	DistributionPointName ::= CHOICE {
		//	     fullName                [0]     GeneralNames,
		//	     nameRelativeToCRLIssuer [1]     RelativeDistinguishedName }
		var dps cryptobyte.String
		if !der.ReadASN1(&dps, asn1.SEQUENCE) || !der.Empty() {
			return errors.New("failed to read CRL Distribution Points")
		}

		for !dps.Empty() {
			var dp cryptobyte.String
			if !dps.ReadASN1(&dp, asn1.SEQUENCE) {
				return errors.New("failed to read DistributionPoint")
			}

			var dpn cryptobyte.String
			var hasDPN bool
			if !dp.ReadOptionalASN1(&dpn, &hasDPN, asn1.Tag(0).Constructed().ContextSpecific()) {
				return errors.New("failed to read DistributionPointName")
			}
			if !dp.SkipOptionalASN1(asn1.Tag(1).ContextSpecific()) ||
				!dp.SkipOptionalASN1(asn1.Tag(2).Constructed().ContextSpecific()) ||
				!dp.Empty() {
				return errors.New("trailing data after DistributionPoint")
			}
			if !hasDPN {
				continue
			}

			var fullName cryptobyte.String
			var hasFullName bool
			if !dpn.ReadOptionalASN1(&fullName, &hasFullName, asn1.Tag(0).Constructed().ContextSpecific()) {
				return errors.New("failed to read fullName")
			}
			if !hasFullName {
				continue
			}

			for !fullName.Empty() {
				gn, err := readGeneralName(&fullName)
				if err != nil {
					return fmt.Errorf("parsing fullName: %w", err)
				}
				if err := emit(gn); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
