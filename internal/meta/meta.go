// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package meta loads the volume metadata file the chairs prepare and
// derives the anthology identifier fields from its bibliography URL
// pattern. Any missing required key or malformed pattern is an error:
// the metadata is operator input and the run must not proceed without it.
package meta

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/anthology-builder/pkg/types"
)

// requiredKeys must all be present in the meta file before anything
// else is loaded.
var requiredKeys = []string{
	"abbrev", "title", "booktitle", "month", "year",
	"location", "publisher", "chairs", "bib_url",
}

// bibURLPattern matches bibliography URL patterns such as
// "https://aclanthology.org/W19-0%02d": a single uppercase collection
// letter, a two-digit year, the volume number, and a printf-style pad
// width for the paper number.
var bibURLPattern = regexp.MustCompile(`^https?://.+/([A-Z])(\d\d)-(\d+)%0(\d+)d$`)

// Load reads the metadata file at path. Lines hold a key followed by a
// whitespace-separated value; the value keeps any internal whitespace.
// Repeated "chairs" keys accumulate in order, any other repeated key
// overwrites the earlier value.
func Load(path string) (*types.VolumeMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading meta file: %w", err)
	}
	defer f.Close()

	values := make(map[string]string)
	var chairs []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == "" {
			continue
		}
		key, value, err := splitKeyValue(line)
		if err != nil {
			return nil, fmt.Errorf("meta file %s: %w", path, err)
		}
		if key == "chairs" {
			chairs = append(chairs, value)
		} else {
			values[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading meta file %s: %w", path, err)
	}

	for _, key := range requiredKeys {
		if key == "chairs" {
			if len(chairs) == 0 {
				return nil, fmt.Errorf("meta file %s: missing required key %q", path, key)
			}
			continue
		}
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("meta file %s: missing required key %q", path, key)
		}
	}

	m := &types.VolumeMeta{
		Abbrev:    values["abbrev"],
		Title:     values["title"],
		Booktitle: values["booktitle"],
		Month:     values["month"],
		Year:      values["year"],
		Location:  values["location"],
		Publisher: values["publisher"],
		Chairs:    chairs,
		BibURL:    values["bib_url"],
	}

	if err := parseBibURL(m); err != nil {
		return nil, fmt.Errorf("meta file %s: %w", path, err)
	}
	return m, nil
}

// splitKeyValue splits a meta line on its first run of whitespace.
func splitKeyValue(line string) (key, value string, err error) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return "", "", fmt.Errorf("malformed line %q: expected a key followed by a value", line)
	}
	key = line[:idx]
	value = strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
	if value == "" {
		return "", "", fmt.Errorf("malformed line %q: expected a key followed by a value", line)
	}
	return key, value, nil
}

// parseBibURL fills the derived anthology fields from m.BibURL.
func parseBibURL(m *types.VolumeMeta) error {
	groups := bibURLPattern.FindStringSubmatch(m.BibURL)
	if groups == nil {
		return fmt.Errorf("bib_url %q does not match the anthology pattern", m.BibURL)
	}
	width, err := strconv.Atoi(groups[4])
	if err != nil {
		return fmt.Errorf("bib_url %q: bad pad width: %w", m.BibURL, err)
	}
	m.Collection = groups[1]
	m.YearSuffix = groups[2]
	m.Volume = groups[3]
	m.PaperWidth = width
	return nil
}
