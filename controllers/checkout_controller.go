package controllers

import (
	"net/http"

	"github.com/NeryGM09/libreria-luismi/cart"
	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/services"
	"github.com/gin-gonic/gin"
)

// CheckoutRequest is the POST /api/checkout payload: the customer record and
// the cart contents as held by the storefront.
type CheckoutRequest struct {
	Cliente models.Cliente `json:"cliente"`
	Items   []cart.Line    `json:"items"`
}

// CheckoutController handles the cart-to-order flow.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// Checkout handles POST /api/checkout. The submitted items are replayed into
// a session cart so the cart rules apply (one line per product, zero
// quantities dropped, price snapshots kept), then handed to the checkout
// service.
func (cc *CheckoutController) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud no válida", "details": err.Error()})
		return
	}

	carrito := cart.New()
	for _, item := range req.Items {
		carrito.Add(models.Product{ID: item.ProductID, Nombre: item.Nombre, Precio: item.Precio})
		carrito.SetQuantity(item.ProductID, item.Cantidad)
	}

	res, svcErr := cc.checkoutService.Checkout(ctx.Request.Context(), req.Cliente, carrito)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"mensaje":  "Pedido creado",
		"id":       res.PedidoID,
		"total":    res.Total,
		"whatsapp": res.WhatsApp,
	})
}
