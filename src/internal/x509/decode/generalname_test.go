// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
)

func oidContent(t *testing.T, oid []int) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(oid)
	der, err := b.Bytes()
	require.NoError(t, err)

	input := cryptobyte.String(der)
	var content cryptobyte.String
	require.True(t, input.ReadASN1(&content, asn1.OBJECT_IDENTIFIER))
	return content
}

func TestGeneralNameDecoders_Agree(t *testing.T) {
	der := buildGeneralNames(t,
		gnEntry(TagDNSName, []byte("a.example")),
		gnEntry(TagDirectoryName, buildName(t, []atv{cn("dir")})),
		gnEntry(TagIPAddress, net.IPv4(192, 0, 2, 1).To4()),
		gnEntry(TagURI, []byte("https://a.example/")),
	)

	item, err := itemGeneralNames(der)
	require.NoError(t, err)
	d2i, err := d2iGeneralNames(der)
	require.NoError(t, err)

	require.Len(t, item, 4)
	assert.Equal(t, len(item), len(d2i))
	for i := range item {
		assert.Equal(t, item[i].tag, d2i[i].tag)
		assert.Equal(t, item[i].compound, d2i[i].compound)
		assert.Equal(t, []byte(item[i].content), []byte(d2i[i].content))
	}
	assert.True(t, item[1].compound)
}

func TestGeneralNameDecoders_Malformed(t *testing.T) {
	tests := []struct {
		name string
		der  []byte
	}{
		{name: "Truncated", der: []byte{0x30, 0x04, 0x82, 0x05}},
		{name: "Not A Sequence", der: []byte{0x04, 0x00}},
		{name: "Universal Element", der: []byte{0x30, 0x03, 0x0c, 0x01, 'a'}},
		{name: "Trailing Data", der: []byte{0x30, 0x00, 0x00}},
		{name: "Constructed DNS Name", der: []byte{0x30, 0x07, 0xa2, 0x05, 0x04, 0x03, 'a', 'b', 'c'}},
		{name: "Primitive Directory Name", der: []byte{0x30, 0x04, 0x84, 0x02, 0x30, 0x00}},
		{name: "Primitive Other Name", der: []byte{0x30, 0x02, 0x80, 0x00}},
		{name: "Constructed IP Address", der: []byte{0x30, 0x06, 0xa7, 0x04, 10, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := itemGeneralNames(tt.der)
			assert.ErrorIs(t, err, ErrMalformedGeneralNames, "item path")

			_, err = d2iGeneralNames(tt.der)
			assert.ErrorIs(t, err, ErrMalformedGeneralNames, "d2i path")
		})
	}
}

func TestGeneralName_Variants(t *testing.T) {
	tests := []struct {
		name     string
		raw      rawGeneralName
		expected GeneralName
	}{
		{
			name:     "Email",
			raw:      gnEntry(TagRFC822Name, []byte("ops@example.com")),
			expected: Email("ops@example.com"),
		},
		{
			name:     "DNS",
			raw:      gnEntry(TagDNSName, []byte("www.example.com")),
			expected: DNS("www.example.com"),
		},
		{
			name:     "URI Keeps Embedded NUL",
			raw:      gnEntry(TagURI, []byte("http://a.example/\x00evil")),
			expected: URI("http://a.example/\x00evil"),
		},
		{
			name:     "Directory Name",
			raw:      gnEntry(TagDirectoryName, buildName(t, []atv{utf8ATV(oidOrganization, "Org")}, []atv{cn("dir")})),
			expected: DirName{{{Name: "organizationName", Value: "Org"}}, {{Name: "commonName", Value: "dir"}}},
		},
		{
			name:     "IPv4",
			raw:      gnEntry(TagIPAddress, []byte{10, 0, 0, 1}),
			expected: Other{Type: "IP Address", Value: "10.0.0.1"},
		},
		{
			name:     "IPv6",
			raw:      gnEntry(TagIPAddress, net.ParseIP("2001:db8::1")),
			expected: Other{Type: "IP Address", Value: "2001:DB8:0:0:0:0:0:1"},
		},
		{
			name:     "IP Of Invalid Length",
			raw:      gnEntry(TagIPAddress, []byte{1, 2, 3}),
			expected: Other{Type: "IP Address", Value: "<invalid>"},
		},
		{
			name:     "Registered ID Long Name",
			raw:      gnEntry(TagRegisteredID, oidContent(t, []int{1, 3, 6, 1, 5, 5, 7, 48, 1})),
			expected: Other{Type: "Registered ID", Value: "OCSP"},
		},
		{
			name:     "Registered ID Dotted",
			raw:      gnEntry(TagRegisteredID, oidContent(t, []int{1, 2, 3, 4})),
			expected: Other{Type: "Registered ID", Value: "1.2.3.4"},
		},
		{
			name:     "Registered ID Invalid",
			raw:      gnEntry(TagRegisteredID, []byte{0x80}),
			expected: Other{Type: "Registered ID", Value: "<INVALID>"},
		},
		{
			name:     "Other Name",
			raw:      gnEntry(TagOtherName, oidContent(t, []int{1, 2, 3})),
			expected: Other{Type: "othername", Value: "<unsupported>"},
		},
		{
			name:     "X400 Address",
			raw:      gnEntry(TagX400Address, nil),
			expected: Other{Type: "X400Name", Value: "<unsupported>"},
		},
		{
			name:     "EDI Party Name",
			raw:      gnEntry(TagEDIPartyName, nil),
			expected: Other{Type: "EdiPartyName", Value: "<unsupported>"},
		},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gc.With(nil, func(buf gc.Buffer) error {
				got, ok, err := d.generalName(tt.raw, &scratch{buf: buf, limit: DefaultScratchSize})
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, tt.expected, got)
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestGeneralName_UnknownTagWarns(t *testing.T) {
	log := &recordingLogger{}
	d := New(WithLogger(log))

	err := gc.With(nil, func(buf gc.Buffer) error {
		got, ok, err := d.generalName(rawGeneralName{tag: 9, content: []byte("x")}, &scratch{buf: buf, limit: DefaultScratchSize})
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
		return nil
	})
	require.NoError(t, err)

	warnings := log.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown general-name type 9")
}

func TestGeneralName_InvalidIA5(t *testing.T) {
	d := New()

	err := gc.With(nil, func(buf gc.Buffer) error {
		_, _, err := d.generalName(gnEntry(TagDNSName, []byte{0xff}), &scratch{buf: buf, limit: DefaultScratchSize})
		return err
	})
	assert.ErrorIs(t, err, ErrStringConversion)
}

func TestGeneralName_PrintFormWithoutSeparator(t *testing.T) {
	log := &recordingLogger{}
	d := New(WithLogger(log))

	// A two-byte limit leaves a single byte of "IP Address:...", cutting off the colon.
	err := gc.With(nil, func(buf gc.Buffer) error {
		got, ok, err := d.generalName(gnEntry(TagIPAddress, []byte{1, 2, 3, 4}), &scratch{buf: buf, limit: 2})
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, log.Warnings(), 1)
}

func TestGeneralName_Serialization(t *testing.T) {
	names := []GeneralName{
		DirName{{{Name: "commonName", Value: "dir"}}},
		Email("a@example.com"),
		DNS("example.com"),
		URI("https://example.com/"),
		Other{Type: "IP Address", Value: "10.0.0.1"},
	}

	data, err := json.Marshal(names)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		["DirName", [[["commonName","dir"]]]],
		["email", "a@example.com"],
		["DNS", "example.com"],
		["URI", "https://example.com/"],
		["IP Address", "10.0.0.1"]
	]`, string(data))

	for _, gn := range names[1:] {
		assert.NotEmpty(t, gn.Kind())
		assert.NotEmpty(t, gn.String())
	}
	assert.Equal(t, "commonName=dir", names[0].String())
}

func TestGeneralName_EmptyDirectoryName(t *testing.T) {
	d := New()

	err := gc.With(nil, func(buf gc.Buffer) error {
		got, ok, err := d.generalName(gnEntry(TagDirectoryName, []byte{0x30, 0x00}), &scratch{buf: buf, limit: DefaultScratchSize})
		require.NoError(t, err)
		require.True(t, ok)

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `["DirName", []]`, string(data))

		v, err := got.(DirName).MarshalYAML()
		require.NoError(t, err)
		assert.Equal(t, []any{"DirName", DistinguishedName{}}, v)
		return nil
	})
	require.NoError(t, err)
}
