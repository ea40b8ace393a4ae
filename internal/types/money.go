// README: Common money value object used across modules.
package types

import "strconv"

type Money struct {
	Amount   int64
	Currency string
}

// VND builds a Vietnamese đồng amount, the only currency the shop deals in.
func VND(amount int64) Money {
	return Money{Amount: amount, Currency: "VND"}
}

// String renders the amount for chat replies, e.g. "45000₫".
func (m Money) String() string {
	s := strconv.FormatInt(m.Amount, 10)
	if m.Currency == "VND" {
		return s + "₫"
	}
	return s + " " + m.Currency
}
