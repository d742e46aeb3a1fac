package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService defines order business logic.
type OrderService interface {
	List(ctx context.Context) ([]models.Order, *ServiceError)
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	UpdateEstado(ctx context.Context, id uint, estado string) *ServiceError
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, logger: logger}
}

// List returns all orders newest first, with client and line items
// rehydrated. A row whose stored JSON cannot be decoded is returned with its
// scalar fields intact and error_decodificacion set, so one corrupt row
// never takes down the listing.
func (s *orderServiceImpl) List(ctx context.Context) ([]models.Order, *ServiceError) {
	pedidos, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al consultar pedidos"}
	}

	for i := range pedidos {
		if decErr := pedidos[i].DecodeEmbedded(); decErr != nil {
			s.logger.Warn("Stored order data is unreadable",
				zap.Uint("id", pedidos[i].ID),
				zap.Error(decErr),
			)
			pedidos[i].DecodeError = "datos del pedido ilegibles"
		}
	}
	return pedidos, nil
}

// Create persists a new order with estado Pendiente. The total is stored as
// submitted and never recomputed afterwards; line items are immutable
// snapshots.
func (s *orderServiceImpl) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	if strings.TrimSpace(req.Cliente.Nombre) == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Faltan campos requeridos"}
	}
	if len(req.Productos) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "El pedido no tiene productos"}
	}
	if req.Total <= 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "El total debe ser mayor que cero"}
	}
	for _, l := range req.Productos {
		if l.Cantidad < 1 {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cada producto debe tener cantidad de al menos 1"}
		}
	}

	cliente := req.Cliente
	o := &models.Order{
		Cliente:   &cliente,
		Productos: req.Productos,
		Total:     req.Total,
		Fecha:     time.Now().UTC(),
		Estado:    models.EstadoPendiente,
	}
	if err := o.EncodeEmbedded(); err != nil {
		s.logger.Error("Failed to encode order data", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al procesar el pedido"}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al guardar el pedido"}
	}

	s.logger.Info("Order created",
		zap.Uint("id", o.ID),
		zap.String("cliente", cliente.Nombre),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

// UpdateEstado applies an administrative status change. The estado must be a
// defined status and the transition must be legal: forward along the
// workflow, Cancelado from any non-terminal state, nothing out of Entregado
// or Cancelado.
func (s *orderServiceImpl) UpdateEstado(ctx context.Context, id uint, estado string) *ServiceError {
	if !models.ValidEstado(estado) {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: fmt.Sprintf("Estado no válido: %q", estado)}
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Pedido no encontrado"}
		}
		s.logger.Error("Failed to load order", zap.Uint("id", id), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al consultar el pedido"}
	}

	if !models.CanTransition(o.Estado, estado) {
		return &ServiceError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("No se puede cambiar el estado de %s a %s", o.Estado, estado),
		}
	}

	if err := s.repo.UpdateEstado(ctx, id, estado); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Pedido no encontrado"}
		}
		s.logger.Error("Failed to update order status", zap.Uint("id", id), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error al actualizar el estado"}
	}

	s.logger.Info("Order status updated",
		zap.Uint("id", id),
		zap.String("de", o.Estado),
		zap.String("a", estado),
	)
	return nil
}
