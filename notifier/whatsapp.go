// Package notifier builds the external order handoff: a human-readable
// summary delivered through a WhatsApp deep link. The handoff is
// fire-and-forget; nothing in the system waits for the message to be read.
package notifier

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/NeryGM09/libreria-luismi/cart"
)

// Handoff is the outbound notification payload: the summary text and the
// deep link that carries it.
type Handoff struct {
	Resumen string `json:"resumen"`
	URL     string `json:"whatsapp"`
}

// Notifier produces an order handoff for a human-operated channel.
type Notifier interface {
	OrderHandoff(nombreCliente string, lines []cart.Line, total float64) Handoff
}

// WhatsAppNotifier formats orders for the shop's WhatsApp number.
type WhatsAppNotifier struct {
	number string
}

// NewWhatsAppNotifier creates a notifier for the given phone number, with or
// without a leading "+".
func NewWhatsAppNotifier(number string) *WhatsAppNotifier {
	return &WhatsAppNotifier{number: number}
}

// OrderHandoff builds the itemized order summary and the wa.me link that
// opens a chat pre-filled with it.
func (n *WhatsAppNotifier) OrderHandoff(nombreCliente string, lines []cart.Line, total float64) Handoff {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola, me gustaría hacer un pedido a nombre de *%s*:\n\n", strings.TrimSpace(nombreCliente))
	b.WriteString("📦 *Productos:*\n")

	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, l.Nombre)
		fmt.Fprintf(&b, "   • Cantidad: %d\n", l.Cantidad)
		fmt.Fprintf(&b, "   • Precio unitario: L. %.2f\n", l.Precio)
		fmt.Fprintf(&b, "   • Subtotal: L. %.2f\n\n", l.Subtotal())
	}

	fmt.Fprintf(&b, "💰 *Total: L. %.2f*\n\n", total)
	b.WriteString("¿Pueden confirmar disponibilidad y procesar mi pedido?")

	resumen := b.String()
	link := fmt.Sprintf("https://wa.me/%s?text=%s",
		strings.TrimPrefix(n.number, "+"),
		url.QueryEscape(resumen),
	)

	return Handoff{Resumen: resumen, URL: link}
}
