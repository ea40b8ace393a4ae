// README: Structured output types for the intent parser.
package ai

// SearchFilters narrows a catalog search. Empty filters mean "all books".
type SearchFilters struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
}

// IntentResult captures the structured output from the AI model.
// Only fields the user explicitly provided in the current message are
// set, so a merge never overwrites slots collected on earlier turns.
type IntentResult struct {
	// Action is one of "search", "order", "chitchat", "unknown".
	Action string `json:"action"`

	// Filters applies to the "search" action.
	Filters SearchFilters `json:"filters,omitempty"`

	// Order fields. Zero values mean the message did not mention them.
	BookTitle    string `json:"book_title,omitempty"`
	Author       string `json:"author,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`

	// Raw echoes the user message for "chitchat" and "unknown".
	Raw string `json:"raw,omitempty"`
}
