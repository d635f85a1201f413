// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package volume

import (
	"io"
	"path/filepath"

	"github.com/pdiddy/anthology-builder/internal/assets"
	"github.com/pdiddy/anthology-builder/internal/meta"
	"github.com/pdiddy/anthology-builder/internal/records"
	"github.com/pdiddy/anthology-builder/pkg/types"
)

// Inputs gathers everything a build or check run needs, loaded once
// and read-only thereafter.
type Inputs struct {
	Meta        *types.VolumeMeta
	Accepted    []types.Decision
	Submissions []types.Submission
	Abstracts   map[string]string
	Registry    *assets.Registry
}

// LoadInputs reads the metadata file, the record exports, and the PDF
// registry, in that order. The metadata is validated before any other
// file is touched. Progress lines go to outW, warnings to errW.
func LoadInputs(cfg types.BuildConfig, outW, errW io.Writer) (*Inputs, error) {
	m, err := meta.Load(filepath.Join(cfg.InputDir, "meta"))
	if err != nil {
		return nil, err
	}

	accepted, err := records.LoadAccepted(filepath.Join(cfg.InputDir, "accepted"), outW)
	if err != nil {
		return nil, err
	}

	subs, err := records.LoadSubmissions(filepath.Join(cfg.InputDir, "submissions"), outW)
	if err != nil {
		return nil, err
	}

	abstracts, err := records.LoadAbstracts(filepath.Join(cfg.InputDir, "submission.csv"), outW)
	if err != nil {
		return nil, err
	}

	reg, err := assets.Locate(cfg.PDFDir, m.Abbrev, m.Year, errW)
	if err != nil {
		return nil, err
	}

	return &Inputs{
		Meta:        m,
		Accepted:    accepted,
		Submissions: subs,
		Abstracts:   abstracts,
		Registry:    reg,
	}, nil
}
