// README: Rule-based intent classification for free-text menu input.
package nlu

import (
	"regexp"
	"strings"
)

type Intent string

const (
	IntentOrder    Intent = "order"
	IntentSearch   Intent = "search"
	IntentChitchat Intent = "chitchat"
	IntentUnknown  Intent = "unknown"
)

var (
	orderVerbs    = []string{"mua", "đặt", "dat", "đặt mua", "dat mua", "lấy", "lay", "thêm", "them"}
	contactWords  = []string{"địa chỉ", "dia chi", "đặt về", "dat ve", "giao đến", "giao den"}
	searchWords   = []string{"tìm", "tim", "còn", "giá", "thông tin"}
	chitchatWords = []string{"chào", "xin chào", "cảm ơn", "cam on", "thank", "hello", "hi"}

	// "có ... không" — the Vietnamese availability question frame.
	availabilityRE = regexp.MustCompile(`c[oó] .+ kh[oô]ng`)
)

// Classify assigns a coarse intent to a free-form utterance. Best effort: a
// quantity, contact details or a purchase verb all signal an order.
func Classify(text string) Intent {
	t := strings.ToLower(CleanText(text))
	if t == "" {
		return IntentUnknown
	}

	isContactTurn := ExtractPhone(text) != ""
	for _, k := range contactWords {
		if strings.Contains(t, k) {
			isContactTurn = true
			break
		}
	}
	if ExtractQuantity(text) > 0 || isContactTurn || containsWord(t, orderVerbs) {
		return IntentOrder
	}
	if containsWord(t, searchWords) || availabilityRE.MatchString(t) {
		return IntentSearch
	}
	if containsWord(t, chitchatWords) {
		return IntentChitchat
	}
	return IntentUnknown
}

func containsWord(t string, words []string) bool {
	for _, w := range words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}
