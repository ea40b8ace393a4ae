// README: Catalog handlers for listing and searching books.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookbot/internal/modules/catalog"
)

type BookHandler struct {
	catalog *catalog.Service
}

func NewBookHandler(svc *catalog.Service) *BookHandler {
	return &BookHandler{catalog: svc}
}

type bookResp struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category,omitempty"`
}

func toBookResp(b catalog.Book) bookResp {
	return bookResp{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price.Amount,
		Stock:    b.Stock,
		Category: b.Category,
	}
}

// List handles GET /api/books. An optional ?q= filters by title.
func (h *BookHandler) List(c *gin.Context) {
	var (
		books []catalog.Book
		err   error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		books, err = h.catalog.Search(c.Request.Context(), q)
	} else {
		books, err = h.catalog.List(c.Request.Context())
	}
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	out := make([]bookResp, len(books))
	for i, b := range books {
		out[i] = toBookResp(b)
	}
	writeJSON(c, http.StatusOK, out)
}
