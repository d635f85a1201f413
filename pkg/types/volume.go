// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the plain data structures shared across the
// pipeline stages. Everything here is built once at the start of a run
// and read thereafter.
package types

import "fmt"

// FrontmatterID is the sentinel submission id under which the volume's
// frontmatter (cover, preface) is filed. It always receives anthology
// paper number 0.
const FrontmatterID = "0"

// VolumeMeta holds the volume-level metadata read from the operator's
// "meta" file, plus the anthology identifier fields derived from the
// bib_url pattern.
type VolumeMeta struct {
	// Abbrev is the venue abbreviation used in export filenames (e.g. "sigtyp").
	Abbrev string `yaml:"abbrev"`

	// Title is the full volume title.
	Title string `yaml:"title"`

	// Booktitle is the venue container title cited by each paper. It also
	// serves as the title of the synthesized frontmatter entry.
	Booktitle string `yaml:"booktitle"`

	// Month and Year are publisher-facing strings carried verbatim into
	// the bibliography; they are never parsed as dates.
	Month string `yaml:"month"`
	Year  string `yaml:"year"`

	// Location is the conference location (the BibTeX address field).
	Location string `yaml:"location"`

	// Publisher is the publishing body.
	Publisher string `yaml:"publisher"`

	// Chairs lists the volume chairs in meta-file order. They author the
	// frontmatter entry.
	Chairs []string `yaml:"chairs"`

	// BibURL is the bibliography URL pattern the anthology fields below
	// are derived from.
	BibURL string `yaml:"bib_url"`

	// Collection is the single uppercase anthology collection letter (e.g. "W").
	Collection string `yaml:"collection"`

	// YearSuffix is the two-digit year embedded in the anthology code.
	YearSuffix string `yaml:"year_suffix"`

	// Volume is the volume number within the collection.
	Volume string `yaml:"volume"`

	// PaperWidth is the zero-pad width for anthology paper numbers.
	PaperWidth int `yaml:"paper_width"`
}

// Prefix returns the volume-level anthology code, e.g. "W19-02".
func (m VolumeMeta) Prefix() string {
	return fmt.Sprintf("%s%s-%s", m.Collection, m.YearSuffix, m.Volume)
}

// Code returns the full anthology identifier for the given paper
// number, zero-padded to the configured width, e.g. "W19-0200".
func (m VolumeMeta) Code(paperNum int) string {
	return fmt.Sprintf("%s%0*d", m.Prefix(), m.PaperWidth, paperNum)
}
