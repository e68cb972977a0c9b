// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

// extensionMethod decodes the payload of a GeneralNames-valued extension.
//
// A method carries either an item decoder (template driven, through
// encoding/asn1) or a d2i decoder (hand-walked with cryptobyte). When both
// are set the item decoder wins.
type extensionMethod struct {
	name string
	item func(der []byte) (generalNames, error)
	d2i  func(der []byte) (generalNames, error)
}

func (m extensionMethod) usable() bool { return m.item != nil || m.d2i != nil }

func (m extensionMethod) decode(der []byte) (generalNames, error) {
	if m.item != nil {
		return m.item(der)
	}
	return m.d2i(der)
}

// defaultMethods returns the registry keyed by dotted extension OID.
func defaultMethods() map[string]extensionMethod {
	return map[string]extensionMethod{
		oidExtSubjectAltName.String(): {name: "subjectAltName", item: itemGeneralNames},
		oidExtIssuerAltName.String():  {name: "issuerAltName", d2i: d2iGeneralNames},
	}
}
