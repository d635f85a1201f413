// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Submission is one row of the full submission list exported by the
// review system. The submission list is the source of truth for titles
// and author order.
type Submission struct {
	// ID is the review-system submission id.
	ID string `yaml:"id"`

	// Title is the submission title.
	Title string `yaml:"title"`

	// Authors lists the individual author names in submission order.
	Authors []string `yaml:"authors"`
}

// Decision is one accepted-decisions row that survived filtering. Only
// rows whose decision field equals "ACCEPT" are loaded.
type Decision struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Paper is a final paper selected for the volume: the synthesized
// frontmatter (ID FrontmatterID, authored by the chairs) or an accepted
// submission. Order is significant; anthology numbers are assigned
// positionally.
type Paper struct {
	ID      string   `yaml:"submission_id"`
	Title   string   `yaml:"title"`
	Authors []string `yaml:"authors"`
}
