// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package volume

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/anthology-builder/pkg/types"
)

// Manifest is the machine-readable record of what a build produced,
// written to the output directory as volume.yaml.
type Manifest struct {
	Meta    types.VolumeMeta `yaml:"meta"`
	BuiltAt time.Time        `yaml:"built_at"`
	Papers  []ManifestPaper  `yaml:"papers"`
}

// ManifestPaper maps one emitted paper back to its review-system
// submission and source file.
type ManifestPaper struct {
	SubmissionID string   `yaml:"submission_id"`
	AnthologyID  string   `yaml:"anthology_id"`
	Title        string   `yaml:"title"`
	Authors      []string `yaml:"authors"`
	SourcePDF    string   `yaml:"source_pdf"`
}

// writeManifest saves the manifest to path.
func writeManifest(path string, m *types.VolumeMeta, papers []ManifestPaper) error {
	manifest := Manifest{
		Meta:    *m,
		BuiltAt: time.Now().UTC(),
		Papers:  papers,
	}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by a previous build.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &manifest, nil
}
