// README: Field-level extraction heuristics (phone, quantity, address, name).
package nlu

import (
	"regexp"
	"strconv"
	"strings"
)

// Every extractor in this file returns the zero value when the field is not
// mentioned. Absence is meaningful (the turn did not mention the field) and is
// never reported as an error.

var phonePatterns = []*regexp.Regexp{
	// +84 / 84 / 0 prefix with optional space, dot or dash separators.
	regexp.MustCompile(`(\+84|84|0)[\s.\-]?\d{1,3}[\s.\-]?\d{3}[\s.\-]?\d{3,4}`),
	// Bare mobile number.
	regexp.MustCompile(`\b0\d{9,10}\b`),
	// Grouped digits without a prefix, e.g. 090-123-4567.
	regexp.MustCompile(`\b\d{3}[\s.\-]\d{3}[\s.\-]\d{3,4}\b`),
}

var nonPhoneCharRE = regexp.MustCompile(`[^\d+]`)

// ExtractPhone finds the first Vietnamese mobile number and canonicalizes the
// +84/84 country prefix to a leading 0.
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		val := nonPhoneCharRE.ReplaceAllString(m, "")
		if strings.HasPrefix(val, "+84") {
			val = "0" + val[3:]
		} else if strings.HasPrefix(val, "84") && !strings.HasPrefix(val, "840") {
			val = "0" + val[2:]
		}
		return val
	}
	return ""
}

// quantityRE requires a word-boundary-delimited short number so that phone
// digits are never mistaken for a quantity.
var quantityRE = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:cuốn|cuon|quyển|quyen|tập|tap)?\b`)

var vnNumberREs = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(vnNumberWords))
	for i, entry := range vnNumberWords {
		// Whole-word match with explicit boundaries (\b is unusable next to
		// accented letters).
		res[i] = regexp.MustCompile(leftEdge + regexp.QuoteMeta(entry.word) + `(?:[^\p{L}]|$)`)
	}
	return res
}()

var houseNumPrefixRE = regexp.MustCompile(`(?i)(?:số|so)\s*$`)

// ExtractQuantity returns the ordered quantity, trying digits (optionally
// followed by a counter word) first and Vietnamese number words second.
// Digits belonging to a "số <n>" house-number fragment are skipped.
// Returns 0 when the turn mentions no quantity.
func ExtractQuantity(text string) int {
	for _, loc := range quantityRE.FindAllStringSubmatchIndex(text, -1) {
		if houseNumPrefixRE.MatchString(text[:loc[2]]) {
			continue
		}
		if n, err := strconv.Atoi(text[loc[2]:loc[3]]); err == nil && n > 0 {
			return n
		}
	}
	lowered := strings.ToLower(text)
	for i, re := range vnNumberREs {
		if re.MatchString(lowered) {
			return vnNumberWords[i].value
		}
	}
	return 0
}

// leftEdge is a hand-rolled word boundary: Go's \b is ASCII-only and fails
// next to Vietnamese letters like đ or ư.
const leftEdge = `(?:^|[^\p{L}\p{N}])`

// Address introducers, most specific first: "tại" must win over the recipient
// keywords so that "giao cho Nam tại Hà Nội" yields the address, not the name.
var addressREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)` + leftEdge + `địa chỉ\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `đ/c\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `giao về\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `giao tới\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `giao đến\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `tại\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `số nhà\s*[:\-]?\s*([^,;\n]+)`),
	regexp.MustCompile(`(?i)` + leftEdge + `(?:ngõ|ngách|đường|phố|phường|xã|quận|huyện)\s*[:\-]?\s*([^,;\n]+)`),
}

var (
	houseNumberRE  = regexp.MustCompile(`(?i)` + leftEdge + `(số\s*\d+[^,;\n]*)`)
	addrContactTRE = regexp.MustCompile(`(?i)[\s.]*(?:^|[^\p{L}])(?:sđt|sdt|phone|điện thoại|đt)(?:[^\p{L}]|$).*$`)
)

// ExtractAddress finds a delivery address introduced by a keyword, falling
// back to a "số <digits>" house-number fragment.
func ExtractAddress(text string) string {
	for _, re := range addressREs {
		if m := re.FindStringSubmatch(text); m != nil {
			if addr := cleanAddress(m[1]); addr != "" {
				return addr
			}
		}
	}
	if m := houseNumberRE.FindStringSubmatch(text); m != nil {
		return cleanAddress(m[1])
	}
	return ""
}

// cleanAddress drops a contact fragment that leaked past the separator scan
// ("số 7 phố XYZ. SĐT 09..." keeps only the street part).
func cleanAddress(addr string) string {
	addr = addrContactTRE.ReplaceAllString(addr, "")
	return strings.Trim(CleanText(addr), ".- ")
}

// capRun matches one or more space-separated tokens each starting uppercase.
const capRun = `(\p{Lu}[\p{L}\p{N}\-.]*(?:\s+\p{Lu}[\p{L}\p{N}\-.]*)*)`

var nameREs = []*regexp.Regexp{
	regexp.MustCompile(`(?:giao cho|gửi cho|cho anh|cho chị|cho ông|cho bà|cho)\s+` + capRun),
	regexp.MustCompile(`(?:tên là|tên:|tên)\s*` + capRun),
	regexp.MustCompile(`(?:của)\s+` + capRun),
}

var (
	nameFallbackRE = regexp.MustCompile(`(?i)tên[:\s]+([^,;\n]+)`)
	digitRE        = regexp.MustCompile(`\d`)
)

// ExtractName finds the customer name as a capitalized token run following a
// recipient keyword. Candidates containing digits are rejected as misfires on
// phone or address fragments.
func ExtractName(text string) string {
	for _, re := range nameREs {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.Trim(strings.TrimSpace(m[1]), ",:.-")
			if name != "" && !digitRE.MatchString(name) {
				return name
			}
		}
	}
	if m := nameFallbackRE.FindStringSubmatch(text); m != nil {
		cand := CleanText(m[1])
		if i := strings.IndexAny(cand, ",\n"); i >= 0 {
			cand = cand[:i]
		}
		return strings.TrimSpace(cand)
	}
	return ""
}
