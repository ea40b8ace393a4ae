// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookbot/internal/http/handlers"
	"bookbot/internal/http/middleware"
	"bookbot/internal/modules/catalog"
	"bookbot/internal/modules/conversation"
	"bookbot/internal/modules/order"
)

func NewRouter(
	dispatcher *conversation.Dispatcher,
	catalogService *catalog.Service,
	orderService *order.Service,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	chatHandler := handlers.NewChatHandler(dispatcher)
	r.POST("/api/chat", chatHandler.Chat)

	bookHandler := handlers.NewBookHandler(catalogService)
	r.GET("/api/books", bookHandler.List)

	orderHandler := handlers.NewOrderHandler(orderService)
	r.GET("/api/orders", orderHandler.ListByCustomer)
	r.GET("/api/orders/:id", orderHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
