// README: Catalog title matcher (substring > similarity > word overlap).
package nlu

import "strings"

const (
	similarityFloor = 0.7
	overlapFloor    = 0.6
)

// MatchKnownTitle resolves a normalized utterance against the known catalog
// titles. The cascade trades precision for recall: exact substring containment
// first (longest candidate wins as the most specific), then an approximate
// similarity ratio over the full strings, then word-set overlap for partial
// mentions. Returns "" when nothing clears the floors.
func MatchKnownTitle(textNorm string, knownTitles []string) string {
	if textNorm == "" || len(knownTitles) == 0 {
		return ""
	}

	type entry struct {
		norm string
		orig string
	}
	entries := make([]entry, 0, len(knownTitles))
	for _, t := range knownTitles {
		if n := Normalize(t); n != "" {
			entries = append(entries, entry{norm: n, orig: t})
		}
	}

	var best entry
	for _, e := range entries {
		if strings.Contains(textNorm, e.norm) && len(e.norm) > len(best.norm) {
			best = e
		}
	}
	if best.orig != "" {
		return best.orig
	}

	bestRatio := 0.0
	for _, e := range entries {
		if r := similarity(textNorm, e.norm); r >= similarityFloor && r > bestRatio {
			bestRatio = r
			best = e
		}
	}
	if best.orig != "" {
		return best.orig
	}

	words := make(map[string]bool)
	for _, w := range strings.Fields(textNorm) {
		words[w] = true
	}
	bestOverlap := 0.0
	for _, e := range entries {
		titleWords := strings.Fields(e.norm)
		if len(titleWords) == 0 {
			continue
		}
		hits := 0
		for _, w := range titleWords {
			if words[w] {
				hits++
			}
		}
		if ov := float64(hits) / float64(len(titleWords)); ov >= overlapFloor && ov > bestOverlap {
			bestOverlap = ov
			best = e
		}
	}
	return best.orig
}

// similarity is the classic 2*M/(len(a)+len(b)) ratio with M the length of
// the longest common subsequence, computed over runes.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return 2 * float64(prev[len(rb)]) / float64(len(ra)+len(rb))
}
