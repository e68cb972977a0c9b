// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509decode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes records as a JSON array. Unusable certificates appear as null.
func WriteJSON(w io.Writer, records []*Record, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records as JSON: %w", err)
	}
	return nil
}

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []*Record, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records as YAML: %w", err)
	}
	return enc.Close()
}

// WriteTable writes records as one markdown table with a row per field.
// Multi-valued fields get one row per value.
func WriteTable(w io.Writer, records []*Record) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Field", "Value"})

	var rows [][]string
	for i, rec := range records {
		n := strconv.Itoa(i + 1)
		if rec == nil {
			rows = append(rows, []string{n, "-", "unusable certificate"})
			continue
		}
		for _, f := range rec.fields() {
			rows = append(rows, []string{n, f[0], f[1]})
		}
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// fields flattens rec into (field, value) pairs in record order.
func (rec *Record) fields() [][2]string {
	out := [][2]string{
		{"subject", rec.Subject.String()},
		{"issuer", rec.Issuer.String()},
		{"version", strconv.Itoa(rec.Version)},
		{"serialNumber", rec.SerialNumber},
		{"notBefore", rec.NotBefore},
		{"notAfter", rec.NotAfter},
	}
	for _, gn := range rec.SubjectAltName {
		out = append(out, [2]string{"subjectAltName", gn.Kind() + ":" + gn.String()})
	}
	for _, gn := range rec.IssuerAltName {
		out = append(out, [2]string{"issuerAltName", gn.Kind() + ":" + gn.String()})
	}
	for _, uri := range rec.OCSP {
		out = append(out, [2]string{"OCSP", uri})
	}
	for _, uri := range rec.CAIssuers {
		out = append(out, [2]string{"caIssuers", uri})
	}
	for _, uri := range rec.CRLDistributionPoints {
		out = append(out, [2]string{"crlDistributionPoints", uri})
	}
	return out
}
