package nlu

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Entities
	}{
		{
			name: "full order in one sentence",
			in:   "Tôi muốn mua 2 cuốn Truyện Kiều giao cho Quang tại Hà Nội, SĐT 0123456789",
			want: Entities{
				CustomerName: "Quang",
				BookTitle:    "Truyện Kiều",
				Quantity:     2,
				Address:      "Hà Nội",
				Phone:        "0123456789",
			},
		},
		{
			name: "name and address keywords",
			in:   "Đặt 5 quyển Đắc Nhân Tâm, tên Huy, giao về số 1 Yên Hòa - Cầu Giấy, sđt: 0987654321",
			want: Entities{
				CustomerName: "Huy",
				BookTitle:    "Đắc Nhân Tâm",
				Quantity:     5,
				Address:      "số 1 Yên Hòa - Cầu Giấy",
				Phone:        "0987654321",
			},
		},
		{
			name: "quoted title wins outright",
			in:   "Mua 1 sách 'Harry Potter và Hòn đá Phù thủy' cho Lan, địa chỉ: 23 ngõ 5 đường ABC, phone 090-123-4567",
			want: Entities{
				CustomerName: "Lan",
				BookTitle:    "Harry Potter và Hòn đá Phù thủy",
				Quantity:     1,
				Address:      "23 ngõ 5 đường ABC",
				Phone:        "0901234567",
			},
		},
		{
			name: "counter word title with dash separator",
			in:   "Cho tôi 3 cuốn Nhà giả kim - giao đến số 7 phố XYZ. SĐT 0912345678",
			want: Entities{
				BookTitle: "Nhà giả kim",
				Quantity:  3,
				Address:   "số 7 phố XYZ",
				Phone:     "0912345678",
			},
		},
		{
			name: "lowercase title before comma",
			in:   "Mình đặt 2 quyển Dế Mèn phiêu lưu ký, tên: An, 01234567890, giao về Hà Nội",
			want: Entities{
				CustomerName: "An",
				BookTitle:    "Dế Mèn phiêu lưu ký",
				Quantity:     2,
				Address:      "Hà Nội",
				Phone:        "01234567890",
			},
		},
		{
			name: "contact-only turn produces no title",
			in:   "giao cho Nam tại Hà Nội, SĐT 0123456789",
			want: Entities{
				CustomerName: "Nam",
				Address:      "Hà Nội",
				Phone:        "0123456789",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.in, knownTitles)
			got.Raw = "" // raw audit copy checked separately
			if got != tc.want {
				t.Errorf("Extract(%q)\n got %+v\nwant %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractKeepsRawUtterance(t *testing.T) {
	in := "  Tôi muốn   mua 2 cuốn Truyện Kiều "
	got := Extract(in, nil)
	if got.Raw != "Tôi muốn mua 2 cuốn Truyện Kiều" {
		t.Errorf("raw copy = %q", got.Raw)
	}
}

// Extract is pure: two passes over the same input must agree exactly.
func TestExtractIdempotent(t *testing.T) {
	in := "Tôi muốn mua 2 cuốn Truyện Kiều giao cho Quang tại Hà Nội, SĐT 0123456789"
	a := Extract(in, knownTitles)
	b := Extract(in, knownTitles)
	if a != b {
		t.Errorf("Extract not idempotent:\n first %+v\nsecond %+v", a, b)
	}
}

func TestExtractCatalogFallback(t *testing.T) {
	// No purchase verb, counter word or capitalized run: only the catalog
	// can resolve the title.
	got := Extract("tôi cần dế mèn phiêu lưu ký", knownTitles)
	if got.BookTitle != "Dế Mèn Phiêu Lưu Ký" {
		t.Errorf("catalog fallback title = %q", got.BookTitle)
	}
}

func TestExtractExpandsTruncatedTitle(t *testing.T) {
	// The purchase pattern stops at "giao" leaving a single word; the longer
	// capitalized run later in the sentence should replace it.
	got := Extract("ừ mình đặt Mèn giao cho Nam, ý là Dế Mèn Phiêu Lưu Ký", nil)
	if got.BookTitle != "Dế Mèn Phiêu Lưu Ký" {
		t.Errorf("expanded title = %q", got.BookTitle)
	}
}
