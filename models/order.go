package models

import (
	"encoding/json"
	"time"
)

// Order statuses. Transitions move forward along this ladder; Cancelado is
// reachable from any non-terminal state; Entregado and Cancelado are
// terminal.
const (
	EstadoPendiente  = "Pendiente"
	EstadoConfirmado = "Confirmado"
	EstadoEnviado    = "Enviado"
	EstadoEntregado  = "Entregado"
	EstadoCancelado  = "Cancelado"
)

var estadoRank = map[string]int{
	EstadoPendiente:  0,
	EstadoConfirmado: 1,
	EstadoEnviado:    2,
	EstadoEntregado:  3,
}

// ValidEstado reports whether s is one of the defined order statuses.
func ValidEstado(s string) bool {
	if s == EstadoCancelado {
		return true
	}
	_, ok := estadoRank[s]
	return ok
}

// EstadoTerminal reports whether s admits no further transitions.
func EstadoTerminal(s string) bool {
	return s == EstadoEntregado || s == EstadoCancelado
}

// CanTransition reports whether an order in state from may move to state to.
// Forward moves may skip steps; backward moves are rejected.
func CanTransition(from, to string) bool {
	if !ValidEstado(from) || !ValidEstado(to) {
		return false
	}
	if EstadoTerminal(from) {
		return false
	}
	if to == EstadoCancelado {
		return true
	}
	return estadoRank[to] > estadoRank[from]
}

// Cliente is the client record embedded in each order. It is stored with the
// order, not referenced, so later edits to customer data never rewrite
// history.
type Cliente struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// OrderLine is an immutable product snapshot taken at checkout. Precio is
// the unit price at that moment; catalog changes afterwards do not touch it.
type OrderLine struct {
	ProductoID uint    `json:"id"`
	Nombre     string  `json:"nombre"`
	Precio     float64 `json:"precio"`
	Cantidad   int     `json:"cantidad"`
}

// Order is a pedidos row. Cliente and Productos are persisted as JSON text
// columns and rehydrated on read; DecodeError carries a per-row decode
// failure so one bad row cannot take down a listing.
type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClienteJSON   string    `gorm:"column:cliente;type:text" json:"-"`
	ProductosJSON string    `gorm:"column:productos;type:text" json:"-"`
	Total         float64   `gorm:"not null" json:"total"`
	Fecha         time.Time `gorm:"index" json:"fecha"`
	Estado        string    `gorm:"type:varchar(20);not null;default:'Pendiente'" json:"estado"`

	Cliente     *Cliente    `gorm:"-" json:"cliente,omitempty"`
	Productos   []OrderLine `gorm:"-" json:"productos,omitempty"`
	DecodeError string      `gorm:"-" json:"error_decodificacion,omitempty"`
}

func (Order) TableName() string { return "pedidos" }

// EncodeEmbedded serializes Cliente and Productos into their text columns.
// Called once, right before the row is written.
func (o *Order) EncodeEmbedded() error {
	clienteBytes, err := json.Marshal(o.Cliente)
	if err != nil {
		return err
	}
	lineBytes, err := json.Marshal(o.Productos)
	if err != nil {
		return err
	}
	o.ClienteJSON = string(clienteBytes)
	o.ProductosJSON = string(lineBytes)
	return nil
}

// DecodeEmbedded rehydrates Cliente and Productos from the text columns.
func (o *Order) DecodeEmbedded() error {
	var cliente Cliente
	if err := json.Unmarshal([]byte(o.ClienteJSON), &cliente); err != nil {
		return err
	}
	var lineas []OrderLine
	if err := json.Unmarshal([]byte(o.ProductosJSON), &lineas); err != nil {
		return err
	}
	o.Cliente = &cliente
	o.Productos = lineas
	return nil
}

// CreateOrderRequest is the POST /api/pedidos payload.
type CreateOrderRequest struct {
	Cliente   Cliente     `json:"cliente"`
	Productos []OrderLine `json:"productos"`
	Total     float64     `json:"total"`
}

// UpdateEstadoRequest is the PUT /api/pedidos?id= payload.
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}
