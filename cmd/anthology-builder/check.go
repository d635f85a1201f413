// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/anthology-builder/internal/volume"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an export and preview the anthology assignment",
	Long: `Check loads the same inputs as build and reports the anthology
identifier each paper would receive, without writing any output. It
fails if the metadata is incomplete, the required PDFs are missing, or
any accepted paper lacks a PDF.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	in, err := volume.LoadInputs(cfg, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	papers := volume.Join(in.Meta, in.Accepted, in.Submissions, os.Stderr)

	fmt.Printf("%-10s  %-6s  %s\n", "Anthology", "Subm", "Title")
	for num, p := range papers {
		fmt.Printf("%-10s  %-6s  %s\n", in.Meta.Code(num), p.ID, truncate(p.Title, 60))
	}

	missing := volume.MissingPDFs(papers, in.Registry)
	for _, p := range missing {
		fmt.Fprintf(os.Stderr, "missing PDF for submission %s (%q)\n", p.ID, p.Title)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d paper(s) missing PDFs", len(missing))
	}

	fmt.Printf("\n%d papers ready (including frontmatter)\n", len(papers))
	return nil
}

func init() {
	checkCmd.Flags().String("input-dir", "", "directory holding meta, accepted, submissions (default: .)")
	checkCmd.Flags().String("pdf-dir", "", "directory holding the exported PDFs (default: <input-dir>/pdf)")
	checkCmd.Flags().String("output-dir", "", "proceedings destination used for path reporting only")

	rootCmd.AddCommand(checkCmd)
}
