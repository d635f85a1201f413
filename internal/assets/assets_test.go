// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/anthology-builder/pkg/types"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))
	return path
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	full := touch(t, dir, "sigtyp_2019.pdf")
	front := touch(t, dir, "sigtyp_2019_frontmatter.pdf")
	p12 := touch(t, dir, "sigtyp_2019_paper_12.pdf")
	p7 := touch(t, dir, "sigtyp_2019_paper_7.pdf")
	touch(t, dir, "unrelated.pdf")

	var warn bytes.Buffer
	reg, err := Locate(dir, "sigtyp", "2019", &warn)
	require.NoError(t, err)

	assert.Equal(t, full, reg.FullVolume)
	assert.Equal(t, map[string]string{
		types.FrontmatterID: front,
		"12":                p12,
		"7":                 p7,
	}, reg.PDFs)
	assert.Empty(t, warn.String())
}

func TestLocateMissingFullVolume(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "sigtyp_2019_frontmatter.pdf")

	var warn bytes.Buffer
	_, err := Locate(dir, "sigtyp", "2019", &warn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sigtyp_2019.pdf")
}

func TestLocateMissingFrontmatter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "sigtyp_2019.pdf")

	var warn bytes.Buffer
	_, err := Locate(dir, "sigtyp", "2019", &warn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontmatter")
}

func TestLocateRejectsMalformedPaperName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "sigtyp_2019.pdf")
	touch(t, dir, "sigtyp_2019_frontmatter.pdf")
	p3 := touch(t, dir, "sigtyp_2019_paper_3.pdf")
	// Matches the glob but carries no trailing numeric id.
	touch(t, dir, "sigtyp_2019_paper_3_revised.pdf")
	touch(t, dir, "sigtyp_2019_paper_final.pdf")

	var warn bytes.Buffer
	reg, err := Locate(dir, "sigtyp", "2019", &warn)
	require.NoError(t, err)

	assert.Equal(t, p3, reg.PDFs["3"])
	assert.Len(t, reg.PDFs, 2, "frontmatter plus the one well-formed paper")
	assert.Contains(t, warn.String(), "sigtyp_2019_paper_3_revised.pdf")
	assert.Contains(t, warn.String(), "sigtyp_2019_paper_final.pdf")
}
