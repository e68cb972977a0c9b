// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
)

// Universal string tags that cryptobyte/asn1 does not name.
const (
	tagNumericString   = asn1.Tag(18)
	tagVisibleString   = asn1.Tag(26)
	tagUniversalString = asn1.Tag(28)
	tagBMPString       = asn1.Tag(30)
)

// Attribute is one (name, value) pair of a relative distinguished name.
// It serializes as a two-element array: ["commonName", "example.com"].
type Attribute struct {
	Name  string
	Value string
}

func (a Attribute) String() string { return a.Name + "=" + a.Value }

// MarshalJSON renders the attribute as [name, value].
func (a Attribute) MarshalJSON() ([]byte, error) { return json.Marshal([2]string{a.Name, a.Value}) }

// MarshalYAML renders the attribute as a two-item sequence.
func (a Attribute) MarshalYAML() (any, error) { return []string{a.Name, a.Value}, nil }

// charWidth returns the code unit width of a universal string type:
// 0 for UTF-8, 1, 2 or 4 for fixed-width types, -1 when the tag is not a string.
func charWidth(tag asn1.Tag) int {
	switch tag {
	case asn1.UTF8String:
		return 0
	case tagNumericString, asn1.PrintableString, asn1.T61String, asn1.IA5String,
		asn1.UTCTime, asn1.GeneralizedTime, tagVisibleString:
		return 1
	case tagBMPString:
		return 2
	case tagUniversalString:
		return 4
	default:
		return -1
	}
}

// toUTF8 converts the content octets of an ASN.1 string to UTF-8.
//
// One-byte types are read as Latin-1, BMPString as UTF-16BE and
// UniversalString as UTF-32BE. NUL octets are data and are kept.
// The conversion target is a pooled buffer released before return.
func (d *Decoder) toUTF8(tag asn1.Tag, raw []byte) (string, error) {
	var out string

	err := gc.With(d.pool, func(buf gc.Buffer) error {
		var dec *encoding.Decoder

		width := charWidth(tag)
		switch width {
		case 0:
			if !utf8.Valid(raw) {
				return fmt.Errorf("%w: invalid UTF8String", ErrStringConversion)
			}
			buf.Write(raw)
			out = buf.String()
			return nil
		case 1:
			dec = charmap.ISO8859_1.NewDecoder()
		case 2:
			dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		case 4:
			dec = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder()
		default:
			return fmt.Errorf("%w: unsupported string type %d", ErrStringConversion, tag)
		}

		if len(raw)%width != 0 {
			return fmt.Errorf("%w: %d octets is not a multiple of %d", ErrStringConversion, len(raw), width)
		}

		w := transform.NewWriter(buf, dec)
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("%w: %v", ErrStringConversion, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrStringConversion, err)
		}

		out = buf.String()
		return nil
	})

	return out, err
}

// attribute renders one name entry as an Attribute.
func (d *Decoder) attribute(e NameEntry) (Attribute, error) {
	name, err := oidText(e.Type, d.nameMaxLen)
	if err != nil {
		return Attribute{}, cryptoErr("attribute name", err)
	}

	value, err := d.toUTF8(e.Tag, e.Value)
	if err != nil {
		return Attribute{}, cryptoErr("attribute value "+name, err)
	}

	return Attribute{Name: name, Value: value}, nil
}
