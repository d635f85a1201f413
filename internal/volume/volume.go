// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package volume joins the loaded records, assigns anthology
// identifiers, and emits the proceedings archive.
package volume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/anthology-builder/internal/assets"
	"github.com/pdiddy/anthology-builder/internal/bib"
	"github.com/pdiddy/anthology-builder/pkg/types"
)

// Join returns the final paper list: the synthesized frontmatter first,
// then each accepted decision matched against the submission list by
// id and title. The first matching submission wins. Unmatched accepted
// decisions are warned about on warnW and dropped; they never change
// the happy-path output.
func Join(m *types.VolumeMeta, accepted []types.Decision, subs []types.Submission, warnW io.Writer) []types.Paper {
	papers := []types.Paper{{
		ID:      types.FrontmatterID,
		Title:   m.Booktitle,
		Authors: m.Chairs,
	}}

	for _, d := range accepted {
		matched := false
		for _, s := range subs {
			if s.ID == d.ID && s.Title == d.Title {
				papers = append(papers, types.Paper{ID: s.ID, Title: s.Title, Authors: s.Authors})
				matched = true
				break
			}
		}
		if !matched {
			fmt.Fprintf(warnW, "warning: accepted paper %s (%q) matches no submission, dropping\n", d.ID, d.Title)
		}
	}

	return papers
}

// Emit writes the proceedings archive for the joined papers, in
// assigned order: the renumbered per-paper PDFs and BibTeX records
// under cdrom/, the concatenated volume bibliography, the full-volume
// PDF under its final name, a copy of the input meta file, and the
// volume manifest. Creation notices go to outW, copy progress to errW.
// Any missing PDF or unrenderable record aborts the whole run.
func Emit(in *Inputs, papers []types.Paper, cfg types.BuildConfig, outW, errW io.Writer) error {
	m := in.Meta
	pdfDir := filepath.Join(cfg.OutputDir, "cdrom", "pdf")
	bibDir := filepath.Join(cfg.OutputDir, "cdrom", "bib")
	for _, dir := range []string{pdfDir, bibDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	// Keep the operator's metadata alongside the archive.
	metaSrc := filepath.Join(cfg.InputDir, "meta")
	metaDst := filepath.Join(cfg.OutputDir, "meta")
	fmt.Fprintf(errW, "COPYING %s -> %s\n", metaSrc, metaDst)
	if err := copyFile(metaSrc, metaDst); err != nil {
		return fmt.Errorf("copying meta file: %w", err)
	}

	finalBibs := make([]string, 0, len(papers))
	manifest := make([]ManifestPaper, 0, len(papers))

	for num, p := range papers {
		src, ok := in.Registry.PDFs[p.ID]
		if !ok {
			return fmt.Errorf("no PDF found for submission %s (%q)", p.ID, p.Title)
		}

		code := m.Code(num)
		dst := filepath.Join(pdfDir, code+".pdf")
		fmt.Fprintf(errW, "COPYING %s -> %s\n", src, dst)
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("copying %s: %w", src, err)
		}

		record, err := paperEntry(m, p, in.Abstracts, code).Render()
		if err != nil {
			return fmt.Errorf("BibTeX-encoding paper %s: %w", p.ID, err)
		}

		bibPath := filepath.Join(bibDir, code+".bib")
		if err := os.WriteFile(bibPath, []byte(record+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", bibPath, err)
		}
		fmt.Fprintf(outW, "CREATED %s\n", bibPath)

		finalBibs = append(finalBibs, record)
		manifest = append(manifest, ManifestPaper{
			SubmissionID: p.ID,
			AnthologyID:  code,
			Title:        p.Title,
			Authors:      p.Authors,
			SourcePDF:    src,
		})
	}

	volBib := filepath.Join(cfg.OutputDir, "cdrom", fmt.Sprintf("%s-%s.bib", m.Abbrev, m.Year))
	if err := os.WriteFile(volBib, []byte(strings.Join(finalBibs, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", volBib, err)
	}
	fmt.Fprintf(outW, "CREATED %s\n", volBib)

	volPDF := filepath.Join(cfg.OutputDir, "cdrom", fmt.Sprintf("%s-%s.pdf", m.Abbrev, m.Year))
	fmt.Fprintf(errW, "COPYING %s -> %s\n", in.Registry.FullVolume, volPDF)
	if err := copyFile(in.Registry.FullVolume, volPDF); err != nil {
		return fmt.Errorf("copying full volume PDF: %w", err)
	}

	manifestPath := filepath.Join(cfg.OutputDir, "volume.yaml")
	if err := writeManifest(manifestPath, m, manifest); err != nil {
		return err
	}
	fmt.Fprintf(outW, "CREATED %s\n", manifestPath)

	return nil
}

// paperEntry builds the BibTeX record for one final paper. The
// frontmatter becomes the volume-level proceedings entry; everything
// else is an inproceedings entry citing the booktitle.
func paperEntry(m *types.VolumeMeta, p types.Paper, abstracts map[string]string, code string) *bib.Entry {
	entryType := "inproceedings"
	if p.ID == types.FrontmatterID {
		entryType = "proceedings"
	}

	e := bib.NewEntry(entryType, code)
	e.AddField("author", bib.Texify(strings.Join(p.Authors, " and ")))
	e.AddField("title", p.Title)
	e.AddField("year", m.Year)
	e.AddField("month", m.Month)
	e.AddField("address", m.Location)
	e.AddField("publisher", m.Publisher)

	if abstract, ok := abstracts[p.ID]; ok {
		e.AddField("abstract", abstract)
	}
	if entryType == "inproceedings" {
		e.AddField("booktitle", m.Booktitle)
	}
	return e
}

// MissingPDFs returns the final papers that have no registry entry,
// without writing anything. Used by check mode.
func MissingPDFs(papers []types.Paper, reg *assets.Registry) []types.Paper {
	var missing []types.Paper
	for _, p := range papers {
		if _, ok := reg.PDFs[p.ID]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// copyFile copies src to dst byte for byte. PDFs are opaque payloads
// here; they are never inspected.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
