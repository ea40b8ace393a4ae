// README: Text normalization for diacritic-insensitive matching.
package nlu

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "Truyện Kiều"
// and "Truyen Kieu" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	nonWordRE    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases, strips Vietnamese diacritics, replaces punctuation
// with spaces and collapses whitespace. Total: empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	// NFD can only fail on malformed transformers, not on input; ignore the error.
	out, _, _ := transform.String(stripMarks, s)
	// The special Vietnamese đ does not decompose to d + mark.
	out = strings.ReplaceAll(out, "đ", "d")
	out = nonWordRE.ReplaceAllString(out, " ")
	out = whitespaceRE.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// CleanText collapses whitespace runs without touching case or diacritics.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
