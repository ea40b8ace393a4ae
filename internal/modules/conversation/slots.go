// README: Slot merge and missing-field logic for the ordering flow.
package conversation

import (
	"bookbot/internal/ai"
	"bookbot/internal/nlu"
)

// Merge folds newly extracted entities into the slots. Only fields the
// utterance actually provided are written, so information gathered on
// earlier turns is never lost, though a later turn may overwrite it.
func (o *OrderSlots) Merge(e nlu.Entities) {
	if e.CustomerName != "" {
		o.CustomerName = e.CustomerName
	}
	if e.BookTitle != "" {
		o.BookTitle = e.BookTitle
	}
	if e.Quantity > 0 {
		o.Quantity = e.Quantity
	}
	if e.Address != "" {
		o.Address = e.Address
	}
	if e.Phone != "" {
		o.Phone = e.Phone
	}
}

// ApplyIntent folds model-extracted order fields into the slots, same
// present-only rule as Merge.
func (o *OrderSlots) ApplyIntent(res *ai.IntentResult) {
	if res.CustomerName != "" {
		o.CustomerName = res.CustomerName
	}
	if res.BookTitle != "" {
		o.BookTitle = res.BookTitle
	}
	if res.Quantity > 0 {
		o.Quantity = res.Quantity
	}
	if res.Address != "" {
		o.Address = res.Address
	}
	if res.Phone != "" {
		o.Phone = res.Phone
	}
}

// Missing lists the unfilled required fields in priority order.
func (o *OrderSlots) Missing() []Field {
	var out []Field
	for _, f := range requiredFields {
		if !o.has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Complete reports whether every required field is filled.
func (o *OrderSlots) Complete() bool {
	return len(o.Missing()) == 0
}

func (o *OrderSlots) has(f Field) bool {
	switch f {
	case FieldCustomerName:
		return o.CustomerName != ""
	case FieldBookTitle:
		return o.BookTitle != ""
	case FieldQuantity:
		return o.Quantity > 0
	case FieldAddress:
		return o.Address != ""
	case FieldPhone:
		return o.Phone != ""
	}
	return false
}
