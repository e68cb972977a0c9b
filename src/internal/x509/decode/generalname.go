// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	encoding_asn1 "encoding/asn1"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
)

// GeneralName CHOICE tags as defined in RFC 5280 4.2.1.6.
const (
	TagOtherName     = 0
	TagRFC822Name    = 1
	TagDNSName       = 2
	TagX400Address   = 3
	TagDirectoryName = 4
	TagEDIPartyName  = 5
	TagURI           = 6
	TagIPAddress     = 7
	TagRegisteredID  = 8
)

// GeneralName is one decoded entry of a GeneralNames list. The variant set is
// closed: [DirName], [Email], [DNS], [URI] and [Other].
//
// Every variant serializes as a [kind, value] pair.
type GeneralName interface {
	// Kind is the tag text: "DirName", "email", "DNS", "URI", or the printed kind of an Other.
	Kind() string
	// String is the value text.
	String() string

	generalName()
}

// DirName is a directoryName entry.
type DirName DistinguishedName

// Email is an rfc822Name entry.
type Email string

// DNS is a dNSName entry.
type DNS string

// URI is a uniformResourceIdentifier entry.
type URI string

// Other is any recognized general name without a dedicated variant (otherName,
// x400Address, ediPartyName, iPAddress, registeredID), split from its printed
// form "kind:value" at the first colon.
type Other struct {
	Type  string
	Value string
}

func (DirName) Kind() string { return "DirName" }
func (Email) Kind() string   { return "email" }
func (DNS) Kind() string     { return "DNS" }
func (URI) Kind() string     { return "URI" }
func (o Other) Kind() string { return o.Type }

func (n DirName) String() string { return DistinguishedName(n).String() }
func (e Email) String() string   { return string(e) }
func (n DNS) String() string     { return string(n) }
func (u URI) String() string     { return string(u) }
func (o Other) String() string   { return o.Value }

func (DirName) generalName() {}
func (Email) generalName()   {}
func (DNS) generalName()     {}
func (URI) generalName()     {}
func (Other) generalName()   {}

func (n DirName) MarshalJSON() ([]byte, error) {
	if n == nil {
		n = DirName{}
	}
	return json.Marshal([2]any{n.Kind(), DistinguishedName(n)})
}
func (e Email) MarshalJSON() ([]byte, error) { return json.Marshal([2]string{e.Kind(), string(e)}) }
func (n DNS) MarshalJSON() ([]byte, error)   { return json.Marshal([2]string{n.Kind(), string(n)}) }
func (u URI) MarshalJSON() ([]byte, error)   { return json.Marshal([2]string{u.Kind(), string(u)}) }
func (o Other) MarshalJSON() ([]byte, error) { return json.Marshal([2]string{o.Type, o.Value}) }

func (n DirName) MarshalYAML() (any, error) {
	if n == nil {
		n = DirName{}
	}
	return []any{n.Kind(), DistinguishedName(n)}, nil
}
func (e Email) MarshalYAML() (any, error)   { return []string{e.Kind(), string(e)}, nil }
func (n DNS) MarshalYAML() (any, error)     { return []string{n.Kind(), string(n)}, nil }
func (u URI) MarshalYAML() (any, error)     { return []string{u.Kind(), string(u)}, nil }
func (o Other) MarshalYAML() (any, error)   { return []string{o.Type, o.Value}, nil }

// rawGeneralName is a GeneralName before variant decoding: the CHOICE tag
// number and the content octets of the tagged element.
type rawGeneralName struct {
	tag      int
	compound bool
	content  []byte
}

type generalNames []rawGeneralName

// d2iGeneralNames walks GeneralNames ::= SEQUENCE SIZE (1..MAX) OF GeneralName
// element by element.
func d2iGeneralNames(der []byte) (generalNames, error) {
	input := cryptobyte.String(der)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: failed to read GeneralNames", ErrMalformedGeneralNames)
	}

	var names generalNames
	for !seq.Empty() {
		gn, err := readGeneralName(&seq)
		if err != nil {
			return nil, err
		}
		names = append(names, gn)
	}
	return names, nil
}

// itemGeneralNames decodes GeneralNames through the encoding/asn1 template
// []asn1.RawValue.
func itemGeneralNames(der []byte) (generalNames, error) {
	var values []encoding_asn1.RawValue
	rest, err := encoding_asn1.Unmarshal(der, &values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeneralNames, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing data after GeneralNames", ErrMalformedGeneralNames)
	}

	names := make(generalNames, 0, len(values))
	for _, v := range values {
		if v.Class != encoding_asn1.ClassContextSpecific {
			return nil, fmt.Errorf("%w: GeneralName is not context-specific", ErrMalformedGeneralNames)
		}
		gn := rawGeneralName{tag: v.Tag, compound: v.IsCompound, content: v.Bytes}
		if err := gn.checkForm(); err != nil {
			return nil, err
		}
		names = append(names, gn)
	}
	return names, nil
}

// readGeneralName reads one context-specific tagged GeneralName from der.
func readGeneralName(der *cryptobyte.String) (rawGeneralName, error) {
	var content cryptobyte.String
	var tag asn1.Tag
	if !der.ReadAnyASN1(&content, &tag) {
		return rawGeneralName{}, fmt.Errorf("%w: failed to read GeneralName", ErrMalformedGeneralNames)
	}

	const (
		classMask            = 0xc0
		classContextSpecific = 0x80
		constructed          = 0x20
		numberMask           = 0x1f
	)
	if tag&classMask != classContextSpecific {
		return rawGeneralName{}, fmt.Errorf("%w: GeneralName is not context-specific", ErrMalformedGeneralNames)
	}

	gn := rawGeneralName{
		tag:      int(tag & numberMask),
		compound: tag&constructed != 0,
		content:  content,
	}
	if err := gn.checkForm(); err != nil {
		return rawGeneralName{}, err
	}
	return gn, nil
}

// checkForm rejects an entry whose primitive/constructed encoding contradicts
// its CHOICE alternative. otherName, x400Address, directoryName and
// ediPartyName are constructed; the rest are primitive. Unknown tags are left
// to the caller.
func (gn rawGeneralName) checkForm() error {
	var want bool
	switch gn.tag {
	case TagOtherName, TagX400Address, TagDirectoryName, TagEDIPartyName:
		want = true
	case TagRFC822Name, TagDNSName, TagURI, TagIPAddress, TagRegisteredID:
		want = false
	default:
		return nil
	}
	if gn.compound != want {
		return fmt.Errorf("%w: GeneralName [%d] has the wrong encoding form", ErrMalformedGeneralNames, gn.tag)
	}
	return nil
}

// ia5String converts the content of an email, DNS or URI entry. The octets
// are taken by length, so embedded NUL bytes are kept as data.
func ia5String(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: IA5String is not valid UTF-8", ErrStringConversion)
	}
	return string(raw), nil
}

// errNoSeparator reports a printed general name without a "kind:value" colon.
var errNoSeparator = errors.New("printed general name has no ':' separator")

// generalName decodes one raw entry. ok is false when the entry is skipped
// with a warning.
func (d *Decoder) generalName(gn rawGeneralName, s *scratch) (GeneralName, bool, error) {
	switch gn.tag {
	case TagDirectoryName:
		dn, err := d.decodeName("directoryName", gn.content)
		if err != nil {
			return nil, false, err
		}
		return DirName(dn), true, nil

	// Taken by length rather than through the print routine, which stops at NUL (CVE-2013-4238).
	case TagRFC822Name, TagDNSName, TagURI:
		v, err := ia5String(gn.content)
		if err != nil {
			return nil, false, err
		}
		switch gn.tag {
		case TagRFC822Name:
			return Email(v), true, nil
		case TagDNSName:
			return DNS(v), true, nil
		default:
			return URI(v), true, nil
		}

	case TagOtherName, TagX400Address, TagEDIPartyName, TagIPAddress, TagRegisteredID:
		text, err := s.render(func(w gc.Buffer) error { return printGeneralName(w, gn) })
		if err != nil {
			return nil, false, err
		}
		kind, value, found := strings.Cut(text, ":")
		if !found {
			d.log.Warnf("skipping general name %q: %v", text, errNoSeparator)
			return nil, false, nil
		}
		return Other{Type: kind, Value: value}, true, nil

	default:
		d.log.Warnf("%v %d", ErrUnsupportedNameType, gn.tag)
		return nil, false, nil
	}
}

// printGeneralName writes the one-line "kind:value" form of the entries that
// have no dedicated variant.
func printGeneralName(w gc.Buffer, gn rawGeneralName) error {
	switch gn.tag {
	case TagOtherName:
		_, err := w.WriteString("othername:<unsupported>")
		return err
	case TagX400Address:
		_, err := w.WriteString("X400Name:<unsupported>")
		return err
	case TagEDIPartyName:
		_, err := w.WriteString("EdiPartyName:<unsupported>")
		return err
	case TagIPAddress:
		w.WriteString("IP Address:")
		return printIPAddress(w, gn.content)
	case TagRegisteredID:
		w.WriteString("Registered ID:")
		return printRegisteredID(w, gn.content)
	}
	return fmt.Errorf("%w: no print form for tag %d", ErrUnsupportedNameType, gn.tag)
}

func printIPAddress(w gc.Buffer, ip []byte) error {
	var err error
	switch len(ip) {
	case 4:
		_, err = fmt.Fprintf(w, "%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
	case 16:
		for i := 0; i < 16; i += 2 {
			if i > 0 {
				w.WriteByte(':')
			}
			if _, err = fmt.Fprintf(w, "%X", uint16(ip[i])<<8|uint16(ip[i+1])); err != nil {
				return err
			}
		}
	default:
		_, err = w.WriteString("<invalid>")
	}
	return err
}

func printRegisteredID(w gc.Buffer, content []byte) error {
	var b cryptobyte.Builder
	b.AddASN1(asn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) { b.AddBytes(content) })
	der, err := b.Bytes()
	if err != nil {
		return err
	}

	var oid encoding_asn1.ObjectIdentifier
	input := cryptobyte.String(der)
	if !input.ReadASN1ObjectIdentifier(&oid) {
		_, err := w.WriteString("<INVALID>")
		return err
	}

	text, err := oidText(oid, DefaultNameMaxLength)
	if err != nil {
		_, err := w.WriteString("<INVALID>")
		return err
	}
	_, err = w.WriteString(text)
	return err
}
