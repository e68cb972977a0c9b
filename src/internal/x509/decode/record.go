// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

// Record holds the decoded fields of one certificate.
//
// A Record holds no reference into the certificate it came from; every string
// is a copy. Optional fields are nil unless their extension exists and yields
// at least one entry.
type Record struct {
	Subject      DistinguishedName `json:"subject" yaml:"subject"`
	Issuer       DistinguishedName `json:"issuer" yaml:"issuer"`
	Version      int               `json:"version" yaml:"version"`
	SerialNumber string            `json:"serialNumber" yaml:"serialNumber"`
	NotBefore    string            `json:"notBefore" yaml:"notBefore"`
	NotAfter     string            `json:"notAfter" yaml:"notAfter"`

	SubjectAltName        []GeneralName `json:"subjectAltName,omitempty" yaml:"subjectAltName,omitempty"`
	IssuerAltName         []GeneralName `json:"issuerAltName,omitempty" yaml:"issuerAltName,omitempty"`
	OCSP                  []string      `json:"OCSP,omitempty" yaml:"OCSP,omitempty"`
	CAIssuers             []string      `json:"caIssuers,omitempty" yaml:"caIssuers,omitempty"`
	CRLDistributionPoints []string      `json:"crlDistributionPoints,omitempty" yaml:"crlDistributionPoints,omitempty"`
}
