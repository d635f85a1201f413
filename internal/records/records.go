// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records reads the review-system exports: the accepted
// decisions, the full submission list, and the optional abstract table.
package records

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pdiddy/anthology-builder/pkg/types"
)

// LoadAccepted reads the tab-separated decisions file at path and
// returns the rows whose final field is exactly "ACCEPT", in file
// order. A progress line is printed to w.
func LoadAccepted(path string, w io.Writer) ([]types.Decision, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading accepted file: %w", err)
	}
	defer f.Close()

	var accepted []types.Decision
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(trimLine(scanner.Text()), "\t")
		if fields[len(fields)-1] != "ACCEPT" || len(fields) < 2 {
			continue
		}
		accepted = append(accepted, types.Decision{ID: fields[0], Title: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading accepted file %s: %w", path, err)
	}

	fmt.Fprintf(w, "Found %d accepted submissions\n", len(accepted))
	return accepted, nil
}

// LoadSubmissions reads the tab-separated submission list at path.
// Each row carries the submission id, the author string, and the title.
func LoadSubmissions(path string, w io.Writer) ([]types.Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading submissions file: %w", err)
	}
	defer f.Close()

	var subs []types.Submission
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(trimLine(scanner.Text()), "\t")
		if len(fields) < 3 {
			continue
		}
		subs = append(subs, types.Submission{
			ID:      fields[0],
			Authors: SplitAuthors(fields[1]),
			Title:   fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading submissions file %s: %w", path, err)
	}

	fmt.Fprintf(w, "Found %d submissions\n", len(subs))
	return subs, nil
}

// SplitAuthors splits a review-system author string into individual
// names. The export writes a serial conjunction ("A, B and C"); the
// final " and " is normalized to a comma before splitting.
func SplitAuthors(s string) []string {
	s = strings.ReplaceAll(s, " and ", ", ")
	return strings.Split(s, ", ")
}

// LoadAbstracts reads the optional comma-separated abstract table at
// path, keyed by the "#" column. A missing file is not an error: the
// table's presence is detected by existence, and absent entries simply
// omit the abstract downstream.
func LoadAbstracts(path string, w io.Writer) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading abstract table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parsing abstract table %s: %w", path, err)
	}

	idCol, absCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "#":
			idCol = i
		case "abstract":
			absCol = i
		}
	}
	if idCol < 0 || absCol < 0 {
		return nil, fmt.Errorf("abstract table %s: header must contain %q and %q columns", path, "#", "abstract")
	}

	abstracts := make(map[string]string)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing abstract table %s: %w", path, err)
		}
		if idCol >= len(row) || absCol >= len(row) {
			continue
		}
		abstracts[row[idCol]] = row[absCol]
	}

	fmt.Fprintf(w, "Found %d abstracts\n", len(abstracts))
	return abstracts, nil
}

// trimLine strips trailing whitespace, matching how the exports are
// consumed line by line.
func trimLine(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
