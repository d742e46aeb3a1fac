package routes

import (
	"net/http"

	"github.com/NeryGM09/libreria-luismi/controllers"
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes sets up the storefront API. Rows are addressed with the
// ?id= query parameter, matching the contract the frontend already speaks.
// An unmatched method on a known route answers 405.
func RegisterAPIRoutes(r *gin.Engine, pc *controllers.ProductController, oc *controllers.OrderController, cc *controllers.CheckoutController) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Método no permitido"})
	})

	api := r.Group("/api")

	api.GET("/productos", pc.GetProducts)
	api.POST("/productos", pc.CreateProduct)
	api.PUT("/productos", pc.UpdateProduct)
	api.DELETE("/productos", pc.DeleteProduct)

	api.GET("/pedidos", oc.GetOrders)
	api.POST("/pedidos", oc.CreateOrder)
	api.PUT("/pedidos", oc.UpdateOrderStatus)

	api.POST("/checkout", cc.Checkout)
}
