package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductService defines catalog business logic.
type ProductService interface {
	// List returns the catalog. With soloDisponibles, products with zero
	// stock are excluded; they stay in the store but are not presented to
	// shoppers.
	List(ctx context.Context, soloDisponibles bool) ([]models.Product, *ServiceError)
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	Update(ctx context.Context, id uint, req *models.UpdateProductRequest) *ServiceError
	Delete(ctx context.Context, id uint) *ServiceError
}

type productServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, logger: logger}
}

func (s *productServiceImpl) List(ctx context.Context, soloDisponibles bool) ([]models.Product, *ServiceError) {
	productos, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al consultar productos"}
	}

	if !soloDisponibles {
		return productos, nil
	}

	disponibles := make([]models.Product, 0, len(productos))
	for _, p := range productos {
		if p.Stock > 0 {
			disponibles = append(disponibles, p)
		}
	}
	return disponibles, nil
}

// Create validates the request before touching the store: nombre and
// categoria must be non-blank, precio and stock present and non-negative.
func (s *productServiceImpl) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.Categoria) == "" ||
		req.Precio == nil || req.Stock == nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Faltan campos requeridos"}
	}
	if *req.Precio < 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "El precio no puede ser negativo"}
	}
	if *req.Stock < 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "El stock no puede ser negativo"}
	}

	p := &models.Product{
		Nombre:    strings.TrimSpace(req.Nombre),
		Categoria: strings.TrimSpace(req.Categoria),
		Precio:    *req.Precio,
		Stock:     *req.Stock,
		Imagen:    req.Imagen,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al guardar el producto"}
	}

	s.logger.Info("Product created", zap.Uint("id", p.ID), zap.String("nombre", p.Nombre))
	return p, nil
}

// Update writes only the fields present in the request. Last write wins;
// there is no row locking.
func (s *productServiceImpl) Update(ctx context.Context, id uint, req *models.UpdateProductRequest) *ServiceError {
	fields := map[string]interface{}{}
	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "El nombre no puede estar vacío"}
		}
		fields["nombre"] = strings.TrimSpace(*req.Nombre)
	}
	if req.Categoria != nil {
		if strings.TrimSpace(*req.Categoria) == "" {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "La categoría no puede estar vacía"}
		}
		fields["categoria"] = strings.TrimSpace(*req.Categoria)
	}
	if req.Precio != nil {
		if *req.Precio < 0 {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "El precio no puede ser negativo"}
		}
		fields["precio"] = *req.Precio
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "El stock no puede ser negativo"}
		}
		fields["stock"] = *req.Stock
	}
	if req.Imagen != nil {
		fields["imagen"] = *req.Imagen
	}
	if len(fields) == 0 {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "No hay campos para actualizar"}
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Producto no encontrado"}
		}
		s.logger.Error("Failed to update product", zap.Uint("id", id), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al actualizar el producto"}
	}
	return nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Producto no encontrado"}
		}
		s.logger.Error("Failed to delete product", zap.Uint("id", id), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al eliminar el producto"}
	}
	return nil
}
