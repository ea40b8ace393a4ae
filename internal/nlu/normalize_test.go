package nlu

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain ascii", "Hello World", "hello world"},
		{"diacritics stripped", "Truyện Kiều", "truyen kieu"},
		{"dj letter", "Đắc Nhân Tâm", "dac nhan tam"},
		{"punctuation to space", "sách: 'Nhà giả kim'!", "sach nha gia kim"},
		{"whitespace collapsed", "  Dế   Mèn \t Phiêu  Lưu  Ký ", "de men phieu luu ky"},
		{"digits kept", "SĐT 0912345678", "sdt 0912345678"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "Harry Potter và Hòn đá Phù thủy"
	once := Normalize(in)
	if twice := Normalize(once); twice != once {
		t.Errorf("Normalize not idempotent: %q -> %q", once, twice)
	}
}
