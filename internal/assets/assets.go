// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assets locates the exported PDFs by naming convention and
// builds the submission-id to file-path registry.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pdiddy/anthology-builder/pkg/types"
)

// paperIDPattern captures the numeric submission id embedded in a
// per-paper PDF filename. Filenames that match the glob but not this
// pattern are rejected rather than yielding a wrong key.
var paperIDPattern = regexp.MustCompile(`_paper_(\d+)\.pdf$`)

// Registry maps submission ids to source PDF paths. The frontmatter is
// filed under types.FrontmatterID.
type Registry struct {
	// FullVolume is the path of the single full-proceedings PDF.
	FullVolume string

	// PDFs maps each submission id to its PDF path.
	PDFs map[string]string
}

// Locate resolves the full-volume and frontmatter PDFs under pdfDir
// and enumerates the per-paper PDFs. The full-volume and frontmatter
// files are required artifacts: either one missing is an error.
// Per-paper files with an unrecognizable name are reported on warnW
// and skipped.
func Locate(pdfDir, abbrev, year string, warnW io.Writer) (*Registry, error) {
	full := filepath.Join(pdfDir, fmt.Sprintf("%s_%s.pdf", abbrev, year))
	if _, err := os.Stat(full); err != nil {
		return nil, fmt.Errorf("full volume PDF %s: %w", full, err)
	}

	front := filepath.Join(pdfDir, fmt.Sprintf("%s_%s_frontmatter.pdf", abbrev, year))
	if _, err := os.Stat(front); err != nil {
		return nil, fmt.Errorf("frontmatter PDF %s: %w", front, err)
	}

	reg := &Registry{
		FullVolume: full,
		PDFs:       map[string]string{types.FrontmatterID: front},
	}

	pattern := filepath.Join(pdfDir, fmt.Sprintf("%s_%s_paper_*.pdf", abbrev, year))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	for _, path := range matches {
		groups := paperIDPattern.FindStringSubmatch(filepath.Base(path))
		if groups == nil {
			fmt.Fprintf(warnW, "warning: cannot extract a submission id from %s, skipping\n", path)
			continue
		}
		reg.PDFs[groups[1]] = path
	}

	return reg, nil
}
