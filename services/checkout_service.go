package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/NeryGM09/libreria-luismi/cart"
	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/notifier"
	"go.uber.org/zap"
)

// CheckoutResult is what a successful checkout hands back to the client: the
// persisted order id and total plus the WhatsApp handoff.
type CheckoutResult struct {
	PedidoID uint
	Total    float64
	Resumen  string
	WhatsApp string
}

// CheckoutService turns a cart into a persisted order plus an external
// notification handoff.
type CheckoutService interface {
	Checkout(ctx context.Context, cliente models.Cliente, c *cart.Cart) (*CheckoutResult, *ServiceError)
}

type checkoutServiceImpl struct {
	orders   OrderService
	notifier notifier.Notifier
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(orders OrderService, n notifier.Notifier, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{orders: orders, notifier: n, logger: logger}
}

// Checkout validates the customer name and cart, persists the order, builds
// the WhatsApp handoff and clears the cart. Order persistence and the
// handoff are independent: the handoff is fire-and-forget and its delivery
// is never awaited, while a persistence failure stops the checkout and
// leaves the cart untouched.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, cliente models.Cliente, c *cart.Cart) (*CheckoutResult, *ServiceError) {
	if strings.TrimSpace(cliente.Nombre) == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Por favor, ingresa tu nombre"}
	}
	if c == nil || c.Empty() {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "El carrito está vacío"}
	}

	lines := c.Lines()
	total := c.Total()

	productos := make([]models.OrderLine, 0, len(lines))
	for _, l := range lines {
		productos = append(productos, models.OrderLine{
			ProductoID: l.ProductID,
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			Cantidad:   l.Cantidad,
		})
	}

	order, svcErr := s.orders.Create(ctx, &models.CreateOrderRequest{
		Cliente:   cliente,
		Productos: productos,
		Total:     total,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	handoff := s.notifier.OrderHandoff(cliente.Nombre, lines, total)
	c.Clear()

	s.logger.Info("Checkout completed",
		zap.Uint("pedido_id", order.ID),
		zap.Float64("total", order.Total),
		zap.Int("lineas", len(lines)),
	)

	return &CheckoutResult{
		PedidoID: order.ID,
		Total:    order.Total,
		Resumen:  handoff.Resumen,
		WhatsApp: handoff.URL,
	}, nil
}
