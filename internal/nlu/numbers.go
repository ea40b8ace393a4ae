// README: Vietnamese number-word lookup used by the quantity extractor.
package nlu

// vnNumberWords maps Vietnamese numeral words (with their common unaccented
// spellings and irregular forms such as "tư" for 4 and "lăm" for 5) to values.
// This is a lookup table, not a numeral grammar: compounds beyond the explicit
// entries are not parsed.
var vnNumberWords = []struct {
	word  string
	value int
}{
	// Multi-word entries first so "mười hai" wins over "hai".
	{"mười một", 11}, {"muoi mot", 11},
	{"mười hai", 12}, {"muoi hai", 12},
	{"hai mươi", 20}, {"hai muoi", 20},
	{"một", 1}, {"mot", 1}, {"mốt", 1},
	{"hai", 2},
	{"ba", 3},
	{"bốn", 4}, {"bon", 4}, {"tư", 4},
	{"năm", 5}, {"lăm", 5}, {"lam", 5},
	{"sáu", 6},
	{"bảy", 7}, {"bay", 7},
	{"tám", 8}, {"tam", 8},
	{"chín", 9}, {"chin", 9},
	{"mười", 10}, {"muoi", 10},
}
