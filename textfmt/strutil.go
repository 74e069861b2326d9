// SPDX-License-Identifier: MIT
// Package: textfmt
//
// Purpose:
//   - Stateless string transforms used by the decoder (Trim, Unbracket).
//   - The y-title detection heuristic, isolated in DetectYTitle so its edge
//     cases can be tested on single lines.

package textfmt

import (
	"strings"
	"unicode"
)

// Trim removes leading whitespace from s and, when both is true, trailing
// whitespace as well.
func Trim(s string, both bool) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if both {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}

	return s
}

// Unbracket removes the first '[' and then the first ']' from s. Brackets
// need not be paired or in order: "[5" -> "5", "5]" -> "5", "][" -> "".
func Unbracket(s string) string {
	s = strings.Replace(s, "[", "", 1)

	return strings.Replace(s, "]", "", 1)
}

// DetectYTitle inspects one table row for the y-axis title.
//
// The text before the first '[' is the label column. When it contains a
// letter, it is the title: title is that prefix trimmed, rest is the line
// from the bracket onwards and found is true. Otherwise rest is the whole
// line and found is false.
//
// Errors:
//   - ErrMalformedInput when the line has no '[' at all.
//
// Notes:
//   - A title made only of digits or punctuation is indistinguishable from
//     data and is never detected; Encode refuses to write such titles.
func DetectYTitle(line string) (title, rest string, found bool, err error) {
	p := strings.IndexByte(line, '[')
	if p < 0 {
		return "", line, false, ErrMalformedInput
	}

	prefix := line[:p]
	if !hasLetter(prefix) {
		return "", line, false, nil
	}

	return Trim(prefix, true), line[p:], true, nil
}

// hasLetter reports whether s contains any letter.
func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
