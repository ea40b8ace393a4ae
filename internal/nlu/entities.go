// README: Entity aggregator; runs all extractors and reconciles the title.
package nlu

import (
	"regexp"
	"strings"
)

// Entities is the result of one extraction pass over one utterance. Zero
// values mean "not mentioned this turn" — the merge layer must treat them as
// absent, never as explicit empty values. Raw carries the cleaned utterance
// verbatim for audit logging.
type Entities struct {
	CustomerName string
	BookTitle    string
	Quantity     int
	Address      string
	Phone        string
	Raw          string
}

// expansion candidate: a capitalized run of 2+ tokens, possibly continuing
// with lowercase words up to a clause separator.
var expandRunRE = regexp.MustCompile(`\p{Lu}[\p{L}\p{N}'\-.]+\s+\p{Lu}[\p{L}\p{N}'\-.]+[^\n,;]*`)

// Extract runs the full pipeline over a raw utterance: normalizer, field
// extractors, then the title cascade (patterns, catalog fallback, single-token
// expansion, catalog retry, fragment cleanup). Pure and total; calling it
// twice with the same arguments yields identical results.
func Extract(text string, knownTitles []string) Entities {
	raw := CleanText(text)
	textNorm := Normalize(raw)

	e := Entities{
		CustomerName: ExtractName(raw),
		Quantity:     ExtractQuantity(raw),
		Address:      ExtractAddress(raw),
		Phone:        ExtractPhone(raw),
		Raw:          raw,
	}

	title := extractTitleByPatterns(raw)
	if title == "" {
		title = MatchKnownTitle(textNorm, knownTitles)
	}

	// A pattern sometimes truncates a multi-word title to its first word;
	// look for a longer capitalized run in the raw text that contains it.
	if title != "" {
		title = strings.Trim(title, `.,;:-"'`)
		if len(strings.Fields(title)) == 1 {
			tword := Normalize(title)
			if m := expandRunRE.FindString(raw); m != "" {
				cand := CleanText(m)
				if strings.Contains(Normalize(cand), tword) {
					title = cand
				}
			}
		}
	}

	if title == "" {
		title = MatchKnownTitle(textNorm, knownTitles)
	}
	if title != "" {
		title = cleanupTitle(title)
	}

	// A contact-only turn must not produce a title: drop captures that are
	// really the address or the customer name leaking through the weak
	// capitalized-run fallback.
	if title != "" {
		tn := Normalize(title)
		if tn == "" ||
			(e.Address != "" && strings.Contains(Normalize(e.Address), tn)) ||
			(e.CustomerName != "" && Normalize(e.CustomerName) == tn) {
			title = ""
		}
	}
	e.BookTitle = title
	return e
}
