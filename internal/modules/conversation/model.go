// README: Conversation state model (per-session flow + collected slots).
package conversation

// Flow names the sub-dialogue a session is currently in.
type Flow string

const (
	FlowMenu     Flow = "menu"
	FlowOrdering Flow = "ordering"
	FlowTracking Flow = "tracking"
)

// Field identifies one required order slot.
type Field string

const (
	FieldCustomerName Field = "customer_name"
	FieldBookTitle    Field = "book_title"
	FieldQuantity     Field = "quantity"
	FieldAddress      Field = "address"
	FieldPhone        Field = "phone"
)

// requiredFields is the slot-filling priority order. Clarification
// questions always target the first unfilled field in this list.
var requiredFields = []Field{
	FieldCustomerName,
	FieldBookTitle,
	FieldQuantity,
	FieldAddress,
	FieldPhone,
}

// OrderSlots accumulates order details across turns. A zero value means
// the field has not been provided yet.
type OrderSlots struct {
	CustomerName string `json:"customer_name,omitempty"`
	BookTitle    string `json:"book_title,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// State is the full per-session conversation state. It is what gets
// serialized into the session store between turns.
type State struct {
	Flow  Flow       `json:"flow"`
	Slots OrderSlots `json:"slots"`
}

// NewState returns a fresh session sitting at the main menu.
func NewState() *State {
	return &State{Flow: FlowMenu}
}

// Reset drops all collected slots and returns the session to the menu.
func (s *State) Reset() {
	s.Flow = FlowMenu
	s.Slots = OrderSlots{}
}
