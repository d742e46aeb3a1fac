package controllers

import (
	"net/http"

	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/services"
	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for the catalog.
type ProductController struct {
	productService services.ProductService
	validator      *RequestValidator
}

// NewProductController creates a new ProductController.
func NewProductController(svc services.ProductService) *ProductController {
	return &ProductController{
		productService: svc,
		validator:      NewRequestValidator(),
	}
}

// GetProducts handles GET /api/productos. With ?disponibles=true the
// shopper-facing filter is applied and zero-stock products are left out.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	soloDisponibles := ctx.Query("disponibles") == "true"

	productos, svcErr := pc.productService.List(ctx.Request.Context(), soloDisponibles)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, productos)
}

// CreateProduct handles POST /api/productos.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud no válida", "details": err.Error()})
		return
	}
	if err := pc.validator.ValidateCreateProduct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, svcErr := pc.productService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"mensaje": "Producto agregado", "id": p.ID})
}

// UpdateProduct handles PUT /api/productos?id=.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := pc.validator.ParseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud no válida", "details": err.Error()})
		return
	}
	if err := pc.validator.ValidateUpdateProduct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if svcErr := pc.productService.Update(ctx.Request.Context(), id, &req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"mensaje": "Producto actualizado"})
}

// DeleteProduct handles DELETE /api/productos?id=.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, err := pc.validator.ParseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if svcErr := pc.productService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"mensaje": "Producto eliminado"})
}
