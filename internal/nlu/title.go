// README: Pattern-based book title extraction (quoted > verb > counter > cap-run).
package nlu

import (
	"regexp"
	"strings"
)

// stopBoundary terminates a title capture: either whitespace followed by an
// address/contact keyword, a clause separator, or end of input. RE2 has no
// lookahead, so the boundary is consumed by the match instead, and the
// keyword's right edge is spelled out because \b misbehaves next to
// accented letters.
const stopBoundary = `(?:\s+(?:giao|cho|tại|địa chỉ|sđt|sdt|số|nhà|ngõ)(?:[^\p{L}]|$)|[,;.\n]|$)`

var (
	quotedTitleRE = regexp.MustCompile(`["“”'’«»](.+?)["“”'’«»]`)

	// mua/đặt [qty] [counter] [sách] <title>
	purchaseTitleRE = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:muốn mua|muon mua|muốn đặt|muon dat|đặt mua|dat mua|mua|đặt|dat)\s*(?:khoảng\s*)?(?:\d+\s*)?(?:cuốn|cuon|quyển|quyen|tập|tap)?\s*(?:sách\s+|sach\s+)?(.+?)` + stopBoundary)

	// cuốn/quyển <title>
	counterTitleRE = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:cuốn|cuon|quyển|quyen|tập)\s+(.+?)` + stopBoundary)

	// <Title> <number> cuốn — title stated before the quantity.
	titleBeforeQtyRE = regexp.MustCompile(`(\p{Lu}[\p{L}\p{N}'\-.]*(?:\s+[\p{L}\p{N}'\-.]+)*?)\s*,?\s*\d+\s*(?:cuốn|cuon|quyển|quyen)\b`)

	// Last resort: 2+ consecutive capitalized tokens.
	capRunTitleRE = regexp.MustCompile(`\p{Lu}[\p{L}\p{N}'\-.]+(?:\s+\p{Lu}[\p{L}\p{N}'\-.]+)+`)

	titleTrailerRE = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:giao|cho|tại|địa chỉ|sđt|sdt|số|nhà|ngõ)(?:[^\p{L}]|$)`)
	qtyFragmentRE  = regexp.MustCompile(`(?i)\b\d+\s*(?:cuốn|cuon|quyển|quyen|tập)\b`)
	contactTailRE  = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:số|sdt|sđt|địa chỉ|đ/c)(?:[^\p{L}]|$).*$`)
)

// extractTitleByPatterns runs the title heuristics in priority order. Quoted
// text wins outright; the remaining patterns cascade by specificity.
func extractTitleByPatterns(text string) string {
	if m := quotedTitleRE.FindStringSubmatch(text); m != nil {
		return CleanText(m[1])
	}
	for _, re := range []*regexp.Regexp{purchaseTitleRE, counterTitleRE} {
		if m := re.FindStringSubmatch(text); m != nil {
			if title := trimTitle(m[1]); title != "" {
				return title
			}
		}
	}
	if m := titleBeforeQtyRE.FindStringSubmatch(text); m != nil {
		if title := trimTitle(m[1]); title != "" {
			return title
		}
	}
	if m := capRunTitleRE.FindString(text); m != "" {
		return CleanText(m)
	}
	return ""
}

// trimTitle drops a trailing address/contact keyword fragment accidentally
// captured into the title, plus stray punctuation. Only trailing fragments:
// a keyword at position zero is part of the title itself ("Nhà giả kim").
func trimTitle(title string) string {
	title = truncateAfter(title, titleTrailerRE)
	return strings.Trim(CleanText(title), `-:.,;"'`)
}

// cleanupTitle is the final pass over an extracted title: strips quantity
// counter fragments and anything from a contact keyword onward.
func cleanupTitle(title string) string {
	title = qtyFragmentRE.ReplaceAllString(title, "")
	title = truncateAfter(title, contactTailRE)
	return strings.Trim(CleanText(title), `-:.,;"'`)
}

func truncateAfter(s string, re *regexp.Regexp) string {
	for _, loc := range re.FindAllStringIndex(s, -1) {
		if loc[0] > 0 {
			return s[:loc[0]]
		}
	}
	return s
}
