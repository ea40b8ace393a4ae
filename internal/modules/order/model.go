// README: Order domain model.
package order

import "time"

// StatusProcessing is the status every new order starts in. Fulfilment
// happens outside this system, so there is no further state machine.
const StatusProcessing = "Đang xử lý"

type Order struct {
	ID           int64
	CustomerName string
	Phone        string
	Address      string
	BookID       int64
	Quantity     int
	Status       string
	CreatedAt    time.Time
}

// CustomerOrder is the tracking view of an order joined with its book.
type CustomerOrder struct {
	ID        int64
	BookTitle string
	Quantity  int
	Status    string
}
