// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"encoding/asn1"
	"strings"
)

// DefaultNameMaxLength bounds the textual form of an object identifier, terminator included.
const DefaultNameMaxLength = 256

var (
	oidExtSubjectAltName        = asn1.ObjectIdentifier{2, 5, 29, 17}
	oidExtIssuerAltName         = asn1.ObjectIdentifier{2, 5, 29, 18}
	oidExtCRLDistributionPoints = asn1.ObjectIdentifier{2, 5, 29, 31}
	oidExtAuthorityInfoAccess   = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 1}

	// OIDAccessOCSP selects OCSP responder locations from the AIA extension.
	OIDAccessOCSP = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 48, 1}
	// OIDAccessCAIssuers selects issuing CA certificate locations from the AIA extension.
	OIDAccessCAIssuers = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 48, 2}
)

// longNames maps dotted OIDs to the long names a certificate text dump uses.
var longNames = map[string]string{
	"2.5.4.3":                    "commonName",
	"2.5.4.4":                    "surname",
	"2.5.4.5":                    "serialNumber",
	"2.5.4.6":                    "countryName",
	"2.5.4.7":                    "localityName",
	"2.5.4.8":                    "stateOrProvinceName",
	"2.5.4.9":                    "streetAddress",
	"2.5.4.10":                   "organizationName",
	"2.5.4.11":                   "organizationalUnitName",
	"2.5.4.12":                   "title",
	"2.5.4.13":                   "description",
	"2.5.4.15":                   "businessCategory",
	"2.5.4.17":                   "postalCode",
	"2.5.4.41":                   "name",
	"2.5.4.42":                   "givenName",
	"2.5.4.43":                   "initials",
	"2.5.4.44":                   "generationQualifier",
	"2.5.4.46":                   "dnQualifier",
	"2.5.4.65":                   "pseudonym",
	"2.5.4.97":                   "organizationIdentifier",
	"1.2.840.113549.1.9.1":       "emailAddress",
	"0.9.2342.19200300.100.1.1":  "userId",
	"0.9.2342.19200300.100.1.25": "domainComponent",
	"1.3.6.1.4.1.311.60.2.1.1":   "jurisdictionLocalityName",
	"1.3.6.1.4.1.311.60.2.1.2":   "jurisdictionStateOrProvinceName",
	"1.3.6.1.4.1.311.60.2.1.3":   "jurisdictionCountryName",

	"2.5.29.17":          "X509v3 Subject Alternative Name",
	"2.5.29.18":          "X509v3 Issuer Alternative Name",
	"2.5.29.31":          "X509v3 CRL Distribution Points",
	"1.3.6.1.5.5.7.1.1":  "Authority Information Access",
	"1.3.6.1.5.5.7.48.1": "OCSP",
	"1.3.6.1.5.5.7.48.2": "CA Issuers",
}

// oidText renders oid as its long name, or in dotted form when it has none.
// The result is cut to maxLen-1 bytes, mirroring a fixed-size text buffer.
func oidText(oid asn1.ObjectIdentifier, maxLen int) (string, error) {
	if len(oid) < 2 {
		return "", ErrMalformedOID
	}

	dotted := oid.String()
	text, ok := longNames[dotted]
	if !ok {
		text = dotted
	}

	if maxLen > 0 && len(text) > maxLen-1 {
		text = strings.Clone(text[:maxLen-1])
	}
	return text, nil
}
