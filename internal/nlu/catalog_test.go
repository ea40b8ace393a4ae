package nlu

import "testing"

var knownTitles = []string{
	"Truyện Kiều",
	"Dế Mèn Phiêu Lưu Ký",
	"Harry Potter và Hòn đá Phù thủy",
	"Đắc Nhân Tâm",
	"Nhà giả kim",
}

func TestMatchKnownTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string // already normalized
		want string
	}{
		{"exact substring", "toi muon mua truyen kieu", "Truyện Kiều"},
		{"diacritic free input", "cho minh dat nha gia kim", "Nhà giả kim"},
		{"fuzzy typo", "dac nhan tan", "Đắc Nhân Tâm"},
		{"word overlap partial mention", "sach phieu luu ky cua to hoai", "Dế Mèn Phiêu Lưu Ký"},
		{"no match", "xin chao ban", ""},
		{"empty input", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchKnownTitle(tc.in, knownTitles); got != tc.want {
				t.Errorf("MatchKnownTitle(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Two known titles contained in the same utterance: the longer (more
// specific) one must win deterministically.
func TestMatchKnownTitleTieBreak(t *testing.T) {
	titles := []string{"Dế Mèn Phiêu Lưu Ký", "Kiều"}
	in := Normalize("tôi thích Dế Mèn Phiêu Lưu Ký hơn Kiều")
	if got := MatchKnownTitle(in, titles); got != "Dế Mèn Phiêu Lưu Ký" {
		t.Errorf("tie-break returned %q, want the longer title", got)
	}
}

func TestMatchKnownTitleNilCatalog(t *testing.T) {
	if got := MatchKnownTitle("truyen kieu", nil); got != "" {
		t.Errorf("expected no match without a catalog, got %q", got)
	}
}

func TestSimilarity(t *testing.T) {
	if r := similarity("dac nhan tam", "dac nhan tam"); r != 1 {
		t.Errorf("identical strings: ratio %f, want 1", r)
	}
	if r := similarity("dac nhan tam", "xyz"); r > 0.3 {
		t.Errorf("unrelated strings: ratio %f too high", r)
	}
	if r := similarity("", "abc"); r != 0 {
		t.Errorf("empty string: ratio %f, want 0", r)
	}
}
