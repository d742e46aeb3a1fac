package controllers

import (
	"net/http"
	"strings"

	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders (the admin board and the
// storefront's order submission).
type OrderController struct {
	orderService services.OrderService
	validator    *RequestValidator
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{
		orderService: svc,
		validator:    NewRequestValidator(),
	}
}

// GetOrders handles GET /api/pedidos. Orders come back newest first with
// cliente and productos rehydrated.
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	pedidos, svcErr := oc.orderService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, pedidos)
}

// CreateOrder handles POST /api/pedidos.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud no válida", "details": err.Error()})
		return
	}

	o, svcErr := oc.orderService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"mensaje": "Pedido creado", "id": o.ID})
}

// UpdateOrderStatus handles PUT /api/pedidos?id=.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	id, err := oc.validator.ParseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.UpdateEstadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud no válida", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Estado) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "El estado es requerido"})
		return
	}

	if svcErr := oc.orderService.UpdateEstado(ctx.Request.Context(), id, req.Estado); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"mensaje": "Estado actualizado"})
}
