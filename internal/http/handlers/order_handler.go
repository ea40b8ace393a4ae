// README: Order lookup handlers (REST mirror of the tracking flow).
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookbot/internal/modules/order"
)

type OrderHandler struct {
	orders *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{orders: svc}
}

type orderResp struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	BookID       int64  `json:"book_id"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"`
}

type customerOrderResp struct {
	ID        int64  `json:"id"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, orderResp{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		BookID:       o.BookID,
		Quantity:     o.Quantity,
		Status:       o.Status,
	})
}

// ListByCustomer handles GET /api/orders?customer=<name>.
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	name := strings.TrimSpace(c.Query("customer"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "missing customer")
		return
	}

	orders, err := h.orders.ListByCustomer(c.Request.Context(), name)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	out := make([]customerOrderResp, len(orders))
	for i, o := range orders {
		out[i] = customerOrderResp{ID: o.ID, BookTitle: o.BookTitle, Quantity: o.Quantity, Status: o.Status}
	}
	writeJSON(c, http.StatusOK, out)
}
