// Package cart implements the session shopping cart: an ordered collection
// of product lines with quantity, keyed by product id. Carts are never
// persisted; one lives for the duration of a client session and is mutated
// by a single actor, so there is no locking here.
package cart

import "github.com/NeryGM09/libreria-luismi/models"

// Line is one cart entry. Precio is the unit price snapshotted when the
// product was first added.
type Line struct {
	ProductID uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	Precio    float64 `json:"precio"`
	Cantidad  int     `json:"cantidad"`
}

// Subtotal returns Precio × Cantidad for this line.
func (l Line) Subtotal() float64 {
	return l.Precio * float64(l.Cantidad)
}

// Cart holds at most one line per product, in insertion order.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart. If a line for p already exists its
// quantity is incremented; otherwise a new line is inserted with quantity 1
// and the current price snapshotted.
func (c *Cart) Add(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Cantidad++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		Cantidad:  1,
	})
}

// SetQuantity replaces the quantity of the line for productID. A quantity of
// zero or less removes the line instead of keeping it at zero.
func (c *Cart) SetQuantity(productID uint, cantidad int) {
	if cantidad <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Cantidad = cantidad
			return
		}
	}
}

// Remove drops the line for productID, if present.
func (c *Cart) Remove(productID uint) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total sums Precio × Cantidad over all lines. It is recomputed on every
// call; carts are small and a cached total invites staleness bugs.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Quantity returns the quantity of productID in the cart, zero if absent.
func (c *Cart) Quantity(productID uint) int {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Cantidad
		}
	}
	return 0
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Len returns the number of distinct product lines.
func (c *Cart) Len() int {
	return len(c.lines)
}
