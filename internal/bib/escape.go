// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// accentCommands maps Unicode combining marks to the TeX accent
// commands that carry them in ASCII-safe archival text.
var accentCommands = map[rune]string{
	0x0300: "`",  // grave
	0x0301: "'",  // acute
	0x0302: "^",  // circumflex
	0x0303: "~",  // tilde
	0x0304: "=",  // macron
	0x0306: "u",  // breve
	0x0307: ".",  // dot above
	0x0308: "\"", // diaeresis
	0x030a: "r",  // ring above
	0x030b: "H",  // double acute
	0x030c: "v",  // caron
	0x0323: "d",  // dot below
	0x0327: "c",  // cedilla
	0x0328: "k",  // ogonek
}

// symbols maps characters without a usable decomposition to their TeX
// notation.
var symbols = map[rune]string{
	'ß': `{\ss}`,
	'æ': `{\ae}`,
	'Æ': `{\AE}`,
	'œ': `{\oe}`,
	'Œ': `{\OE}`,
	'ø': `{\o}`,
	'Ø': `{\O}`,
	'ł': `{\l}`,
	'Ł': `{\L}`,
	'ð': `{\dh}`,
	'Ð': `{\DH}`,
	'þ': `{\th}`,
	'Þ': `{\TH}`,
	'ı': `{\i}`,
	'–': `--`,
	'—': `---`,
	'‘': "`",
	'’': `'`,
	'“': "``",
	'”': `''`,
	'…': `\ldots`,
	'§': `\S`,
	'¶': `\P`,
	'†': `\dag`,
	'‡': `\ddag`,
	'©': `\copyright`,
	'£': `\pounds`,
	'·': `\cdot`,
	'×': `\times`,
	'±': `\pm`,
	'°': `{\degree}`,

	// Greek letters have no decomposition; they carry their TeX names.
	'α': `\alpha`,
	'β': `\beta`,
	'γ': `\gamma`,
	'δ': `\delta`,
	'ε': `\epsilon`,
	'ζ': `\zeta`,
	'η': `\eta`,
	'θ': `\theta`,
	'ι': `\iota`,
	'κ': `\kappa`,
	'λ': `\lambda`,
	'μ': `\mu`,
	'ν': `\nu`,
	'ξ': `\xi`,
	'π': `\pi`,
	'ρ': `\rho`,
	'ς': `\varsigma`,
	'σ': `\sigma`,
	'τ': `\tau`,
	'υ': `\upsilon`,
	'φ': `\phi`,
	'χ': `\chi`,
	'ψ': `\psi`,
	'ω': `\omega`,
	'Γ': `\Gamma`,
	'Δ': `\Delta`,
	'Θ': `\Theta`,
	'Λ': `\Lambda`,
	'Ξ': `\Xi`,
	'Π': `\Pi`,
	'Σ': `\Sigma`,
	'Υ': `\Upsilon`,
	'Φ': `\Phi`,
	'Ψ': `\Psi`,
	'Ω': `\Omega`,
	' ': `~`,
}

// Texify converts a string to the ASCII-safe TeX notation used in the
// archival bibliography: each whitespace-delimited token is escaped
// independently and the tokens are rejoined with single spaces.
// Pure-ASCII input passes through unchanged. Input is composed first so
// that decomposed accent sequences take the same escape as their
// precomposed form.
func Texify(s string) string {
	tokens := strings.Fields(norm.NFC.String(s))
	for i, tok := range tokens {
		tokens[i] = escapeToken(tok)
	}
	return strings.Join(tokens, " ")
}

func escapeToken(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		b.WriteString(escapeRune(r))
	}
	return b.String()
}

// escapeRune maps one rune to TeX notation: ASCII passes through, known
// symbols use the table, and accented letters are rebuilt from their
// NFD decomposition. Runes with no known notation are kept as-is.
func escapeRune(r rune) string {
	if r <= unicode.MaxASCII {
		return string(r)
	}
	if s, ok := symbols[r]; ok {
		return s
	}

	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 {
		return string(r)
	}

	// The base may itself need escaping, e.g. an accented Greek letter.
	out := escapeRune(decomposed[0])
	for _, mark := range decomposed[1:] {
		cmd, ok := accentCommands[mark]
		if !ok {
			return string(r)
		}
		out = fmt.Sprintf(`\%s{%s}`, cmd, out)
	}
	return out
}
