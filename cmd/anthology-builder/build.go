// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/anthology-builder/internal/catalog"
	"github.com/pdiddy/anthology-builder/internal/volume"
	"github.com/pdiddy/anthology-builder/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the proceedings archive from review-system exports",
	Long: `Build runs the full conversion: it loads the meta, accepted, and
submissions exports, joins accepted papers against the submission list,
assigns anthology identifiers starting after the frontmatter, copies
the renumbered PDFs, and writes the per-paper and volume BibTeX files
under the output directory.

The run aborts on the first missing required input: a meta key, the
full-volume or frontmatter PDF, or a PDF for an accepted paper.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	in, err := volume.LoadInputs(cfg, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	papers := volume.Join(in.Meta, in.Accepted, in.Submissions, os.Stderr)
	if err := volume.Emit(in, papers, cfg, os.Stdout, os.Stderr); err != nil {
		return err
	}
	fmt.Printf("Built %s: %d papers (including frontmatter)\n", in.Meta.Prefix(), len(papers))

	record, _ := cmd.Flags().GetBool("catalog")
	if !record {
		return nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	err = store.Record(context.Background(), catalog.Volume{
		Code:    in.Meta.Prefix(),
		Abbrev:  in.Meta.Abbrev,
		Year:    in.Meta.Year,
		Title:   in.Meta.Title,
		Papers:  len(papers),
		BuiltAt: time.Now(),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s in %s\n", in.Meta.Prefix(), dbPath)
	return nil
}

// buildConfig resolves the build directories from flags, falling back
// to the viper config file and then to the conventional layout.
func buildConfig(cmd *cobra.Command) types.BuildConfig {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	if inputDir == "" {
		inputDir = viper.GetString("input_dir")
	}
	if inputDir == "" {
		inputDir = "."
	}

	pdfDir, _ := cmd.Flags().GetString("pdf-dir")
	if pdfDir == "" {
		pdfDir = viper.GetString("pdf_dir")
	}
	if pdfDir == "" {
		pdfDir = filepath.Join(inputDir, "pdf")
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = filepath.Join(inputDir, "proceedings")
	}

	return types.BuildConfig{
		InputDir:  inputDir,
		PDFDir:    pdfDir,
		OutputDir: outputDir,
	}
}

func init() {
	buildCmd.Flags().String("input-dir", "", "directory holding meta, accepted, submissions (default: .)")
	buildCmd.Flags().String("pdf-dir", "", "directory holding the exported PDFs (default: <input-dir>/pdf)")
	buildCmd.Flags().String("output-dir", "", "proceedings destination (default: <input-dir>/proceedings)")
	buildCmd.Flags().Bool("catalog", false, "record the built volume in the catalog database")
	buildCmd.Flags().String("db", "anthology.db", "catalog database path")

	rootCmd.AddCommand(buildCmd)
}
