// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BuildConfig holds settings for a proceedings build run.
type BuildConfig struct {
	// InputDir contains the review-system exports: meta, accepted,
	// submissions, and the optional submission.csv.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// PDFDir contains the exported PDFs (default: InputDir/pdf).
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// OutputDir is the proceedings destination (default: InputDir/proceedings).
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// CatalogConfig holds settings for the volume catalog.
type CatalogConfig struct {
	// DBPath is the SQLite catalog database path.
	DBPath string `json:"db_path" yaml:"db_path"`
}
