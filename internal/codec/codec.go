// Package codec serializes preset documents to XML and parses them back.
// The document shape is fixed: a <settings> root with one <setting> child per
// entry, in entry order. The root element name is the only structural
// compatibility gate; documents with any other root are rejected.
package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// RootElement is the required document root. An older sibling format without
// it is rejected, not migrated.
const RootElement = "settings"

// header precedes every marshaled document.
const header = "<?xml version=\"1.0\"?>\n"

// Entry is one name/value pair in document order.
type Entry struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// document is the on-disk shape. The XMLName tag makes encoding/xml enforce
// the root element on unmarshal.
type document struct {
	XMLName xml.Name `xml:"settings"`
	Entries []Entry  `xml:"setting"`
}

// NormalizeName strips line breaks from an option name. Names are normalized
// on save and again at comparison time during resync, so both sides of a
// lookup always agree regardless of how the document was produced.
func NormalizeName(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// Marshal renders entries as a preset document. Entry order is preserved.
// Callers are expected to normalize entry names first.
func Marshal(entries []Entry) ([]byte, error) {
	doc := document{Entries: entries}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal preset document: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Unmarshal parses a preset document and returns its entries in document
// order. Entry names are returned as-is; normalization happens at comparison
// time. Returns ErrMalformedPreset if the data is not XML or the root element
// is not <settings>.
func Unmarshal(data []byte) ([]Entry, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedPreset, err)
	}
	return doc.Entries, nil
}
