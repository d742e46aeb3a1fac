package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/NeryGM09/libreria-luismi/cart"
	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/notifier"
	"github.com/NeryGM09/libreria-luismi/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newCheckoutFixture(repo *mockOrderRepo) services.CheckoutService {
	orders := services.NewOrderService(repo, zap.NewNop())
	whatsapp := notifier.NewWhatsAppNotifier("+50433521667")
	return services.NewCheckoutService(orders, whatsapp, zap.NewNop())
}

func TestCheckout_FullFlow(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newCheckoutFixture(repo)

	producto := models.Product{ID: 1, Nombre: "El Principito", Categoria: "Libros", Precio: 250, Stock: 10}
	c := cart.New()
	c.Add(producto)
	c.Add(producto)
	assert.Equal(t, 500.0, c.Total())

	res, svcErr := svc.Checkout(context.Background(), models.Cliente{Nombre: "Juan"}, c)

	assert.Nil(t, svcErr)
	assert.Equal(t, uint(1), res.PedidoID)
	assert.Equal(t, 500.0, res.Total)
	assert.True(t, strings.HasPrefix(res.WhatsApp, "https://wa.me/50433521667?text="))
	assert.Contains(t, res.Resumen, "*Juan*")
	assert.Contains(t, res.Resumen, "Cantidad: 2")

	// The order is persisted as Pendiente and the cart is emptied.
	assert.Len(t, repo.pedidos, 1)
	assert.Equal(t, models.EstadoPendiente, repo.pedidos[0].Estado)
	assert.Equal(t, 500.0, repo.pedidos[0].Total)
	assert.True(t, c.Empty())
}

func TestCheckout_PriceChangeAfterCheckout_DoesNotAlterOrder(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newCheckoutFixture(repo)

	producto := models.Product{ID: 1, Nombre: "El Principito", Categoria: "Libros", Precio: 250, Stock: 10}
	c := cart.New()
	c.Add(producto)

	_, svcErr := svc.Checkout(context.Background(), models.Cliente{Nombre: "Juan"}, c)
	assert.Nil(t, svcErr)

	// The stored snapshot keeps the price at checkout time.
	assert.Contains(t, repo.pedidos[0].ProductosJSON, `"precio":250`)
	assert.Equal(t, 250.0, repo.pedidos[0].Total)
}

func TestCheckout_BlankName_Rejected(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newCheckoutFixture(repo)

	c := cart.New()
	c.Add(models.Product{ID: 1, Nombre: "El Principito", Precio: 250})

	_, svcErr := svc.Checkout(context.Background(), models.Cliente{Nombre: "   "}, c)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Por favor, ingresa tu nombre", svcErr.Message)
	assert.Empty(t, repo.pedidos, "no order may be created on a failed checkout")
	assert.False(t, c.Empty(), "the cart survives a failed checkout")
}

func TestCheckout_EmptyCart_Rejected(t *testing.T) {
	repo := newMockOrderRepo()
	svc := newCheckoutFixture(repo)

	_, svcErr := svc.Checkout(context.Background(), models.Cliente{Nombre: "Juan"}, cart.New())

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "El carrito está vacío", svcErr.Message)
	assert.Empty(t, repo.pedidos)
}

func TestCheckout_PersistenceFailure_KeepsCart(t *testing.T) {
	repo := newMockOrderRepo()
	repo.createErr = errors.New("connection refused")
	svc := newCheckoutFixture(repo)

	c := cart.New()
	c.Add(models.Product{ID: 1, Nombre: "El Principito", Precio: 250})

	_, svcErr := svc.Checkout(context.Background(), models.Cliente{Nombre: "Juan"}, c)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.False(t, c.Empty(), "the cart is only cleared after the order is persisted")
}
