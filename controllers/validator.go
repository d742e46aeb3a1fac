package controllers

import (
	"errors"
	"strconv"

	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RequestValidator handles input validation for the API handlers.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseID reads the ?id= query parameter the storefront API uses to address
// rows.
func (rv *RequestValidator) ParseID(c *gin.Context) (uint, error) {
	idStr := c.Query("id")
	if idStr == "" {
		return 0, errors.New("falta el parámetro id")
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id no válido")
	}
	return uint(id), nil
}

// ValidateCreateProduct applies the struct validation rules for product
// creation.
func (rv *RequestValidator) ValidateCreateProduct(req *models.CreateProductRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return errors.New("Faltan campos requeridos o valores negativos")
	}
	return nil
}

// ValidateUpdateProduct applies the struct validation rules for partial
// product updates.
func (rv *RequestValidator) ValidateUpdateProduct(req *models.UpdateProductRequest) error {
	if err := rv.validate.Struct(req); err != nil {
		return errors.New("Valores de producto no válidos")
	}
	return nil
}
