// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/cart"
	"github.com/FedericoLuna01/wallbit-challenge/internal/interfaces/http/handlers"
	"github.com/FedericoLuna01/wallbit-challenge/internal/pkg/currency"
)

// SetupRoutes wires the cart endpoints into the API group.
func SetupRoutes(rg *gin.RouterGroup, cartService *cart.Service, formatter *currency.Formatter) {
	cartHandler := handlers.NewCartHandler(cartService, formatter)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)

		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)

		cartGroup.POST("/discount", cartHandler.ApplyDiscount)
		cartGroup.DELETE("/discount", cartHandler.RemoveDiscount)
	}
}
