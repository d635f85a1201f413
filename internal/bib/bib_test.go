// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"strings"
	"testing"
)

func TestTexify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii unchanged", "A B", "A B"},
		{"ascii name", "Grace Hopper and Alan Turing", "Grace Hopper and Alan Turing"},
		{"acute", "José", `Jos\'{e}`},
		{"diaeresis", "Jürgen Müller", `J\"{u}rgen M\"{u}ller`},
		{"caron", "Tomáš Dvořák", `Tom\'{a}\v{s} Dvo\v{r}\'{a}k`},
		{"cedilla", "François", `Fran\c{c}ois`},
		{"eszett", "Straße", `Stra{\ss}e`},
		{"stroked l", "Łukasz", `{\L}ukasz`},
		{"whitespace collapses", "A   B\tC", "A B C"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Texify(tt.in); got != tt.want {
				t.Errorf("Texify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTexifyGreek(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"α", `\alpha`},
		{"Δ", `\Delta`},
		{"μ-calculus", `\mu-calculus`},
		{"Σωκράτης", `\Sigma\omega\kappa\rho\'{\alpha}\tau\eta\varsigma`},
	}
	for _, tt := range tests {
		if got := Texify(tt.in); got != tt.want {
			t.Errorf("Texify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTexifyComposesDecomposedInput(t *testing.T) {
	// "e" followed by a combining acute must escape like a precomposed é.
	if got := Texify("José"); got != `Jos\'{e}` {
		t.Errorf("Texify(decomposed) = %q, want %q", got, `Jos\'{e}`)
	}
}

func TestTexifyOutputIsASCII(t *testing.T) {
	inputs := []string{
		"α β Δ", "μ-calculus", "é", "Jürgen", "Straße", "Σωκράτης",
		"naïve—façade", "£100 ± 3°",
	}
	for _, in := range inputs {
		got := Texify(in)
		for _, r := range got {
			if r > 127 {
				t.Errorf("Texify(%q) = %q leaks non-ASCII rune %q", in, got, r)
				break
			}
		}
	}
}

func TestTexifyIdempotentOnASCII(t *testing.T) {
	in := `Jos\'{e} Vald\'{e}s`
	if got := Texify(in); got != in {
		t.Errorf("Texify(%q) = %q, already-escaped text must pass through", in, got)
	}
}

func TestRenderInproceedings(t *testing.T) {
	e := NewEntry("inproceedings", "W19-0201")
	e.AddField("author", "Grace Hopper")
	e.AddField("title", "Compilers")
	e.AddField("year", "2019")
	e.AddField("month", "August")
	e.AddField("address", "Florence, Italy")
	e.AddField("publisher", "ACL")
	e.AddField("booktitle", "Proceedings of the Workshop")

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.HasPrefix(got, "@inproceedings{W19-0201,\n") {
		t.Errorf("Render output starts %q", got[:min(len(got), 40)])
	}
	if !strings.HasSuffix(got, "\n}\n") {
		t.Errorf("Render output should end with closing brace and newline, got %q", got)
	}
	if !strings.Contains(got, `    author = "Grace Hopper"`) {
		t.Errorf("missing author field in %q", got)
	}

	// Field order is insertion order.
	authorIdx := strings.Index(got, "author =")
	bookIdx := strings.Index(got, "booktitle =")
	if authorIdx < 0 || bookIdx < 0 || authorIdx > bookIdx {
		t.Errorf("fields out of order in %q", got)
	}
}

func TestRenderProceedingsHasNoBooktitle(t *testing.T) {
	e := NewEntry("proceedings", "W19-0200")
	e.AddField("author", "Ada Lovelace and Alan Turing")
	e.AddField("title", "Proceedings of the Workshop")

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(got, "@proceedings{W19-0200,") {
		t.Errorf("Render output starts %q", got)
	}
	if strings.Contains(got, "booktitle") {
		t.Errorf("proceedings entry should carry no booktitle: %q", got)
	}
}

func TestRenderEscapesEmbeddedQuotes(t *testing.T) {
	e := NewEntry("inproceedings", "W19-0204")
	e.AddField("title", `A "Quoted" Phrase`)

	got, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, `    title = "A {"}Quoted{"} Phrase"`) {
		t.Errorf("embedded quotes not braced: %q", got)
	}
	// The field delimiters stay balanced: two bare quotes per field line.
	line := `title = "A {"}Quoted{"} Phrase"`
	if !strings.Contains(got, line) {
		t.Errorf("Render output %q missing %q", got, line)
	}
}

func TestRenderDeterministic(t *testing.T) {
	e := NewEntry("inproceedings", "W19-0203")
	e.AddField("author", "A One")
	e.AddField("title", "T")

	first, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Errorf("Render is not deterministic:\n%q\n%q", first, second)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry *Entry
	}{
		{"missing key", NewEntry("inproceedings", "")},
		{"missing type", NewEntry("", "W19-0201")},
		{
			"control character in field",
			func() *Entry {
				e := NewEntry("inproceedings", "W19-0201")
				e.AddField("title", "bad\x00title")
				return e
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.entry.Render(); err == nil {
				t.Error("Render should fail")
			}
		})
	}
}
