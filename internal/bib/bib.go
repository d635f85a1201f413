// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bib builds and renders the BibTeX records emitted into the
// proceedings archive. Rendering is deterministic: fields appear in
// insertion order so the archived files are byte-stable across runs.
package bib

import (
	"fmt"
	"strings"
	"unicode"
)

// Field is one key/value pair of a BibTeX entry.
type Field struct {
	Name  string
	Value string
}

// Entry is a single BibTeX record.
type Entry struct {
	// Type is the record type: "proceedings" for the volume-level entry,
	// "inproceedings" for papers.
	Type string

	// Key is the cite key, the anthology identifier (e.g. "W19-0201").
	Key string

	// Fields holds the entry fields in insertion order.
	Fields []Field
}

// NewEntry returns an Entry of the given type and cite key.
func NewEntry(entryType, key string) *Entry {
	return &Entry{Type: entryType, Key: key}
}

// AddField appends a field, preserving insertion order.
func (e *Entry) AddField(name, value string) {
	e.Fields = append(e.Fields, Field{Name: name, Value: value})
}

// Render serializes the entry. It fails if the entry has no type or
// key, or if a field value carries bytes that cannot appear in an
// archival BibTeX file.
func (e *Entry) Render() (string, error) {
	if e.Type == "" || e.Key == "" {
		return "", fmt.Errorf("entry missing type or cite key")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s", e.Type, e.Key)
	for _, f := range e.Fields {
		if err := checkEncodable(f.Value); err != nil {
			return "", fmt.Errorf("field %s: %w", f.Name, err)
		}
		// Values are quote-delimited; embedded quotes are hidden in braces.
		value := strings.ReplaceAll(f.Value, `"`, `{"}`)
		fmt.Fprintf(&b, ",\n    %s = \"%s\"", f.Name, value)
	}
	b.WriteString("\n}\n")
	return b.String(), nil
}

// checkEncodable rejects control characters other than newlines and
// tabs, which abstracts legitimately contain.
func checkEncodable(s string) error {
	for _, r := range s {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return fmt.Errorf("value contains unencodable character %q", r)
		}
	}
	return nil
}
