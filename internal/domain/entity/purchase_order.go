package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. PARCIALMENTE_RECIBIDO y COMPLETADA se derivan
// de las cantidades recibidas de los ítems (motor de reconciliación);
// CANCELADA es pegajosa y nunca se revierte automáticamente.
const (
	PurchaseOrderStatusPendiente  = "PENDIENTE"
	PurchaseOrderStatusParcial    = "PARCIALMENTE_RECIBIDO"
	PurchaseOrderStatusCompletada = "COMPLETADA"
	PurchaseOrderStatusCancelada  = "CANCELADA"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// OrderNumber es único por empresa (formato OC-AAAA-0001, secuencia por año de
// creación). TotalAmount es derivado: siempre igual a la suma de los totales de
// línea al final de cualquier operación de escritura.
type PurchaseOrder struct {
	ID           string
	CompanyID    string
	SupplierID   string
	OrderNumber  string
	OrderDate    time.Time
	DeliveryDate *time.Time
	Observations string
	Status       string // ver constantes PurchaseOrderStatus*
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrderItem es una línea de una orden de compra (propiedad exclusiva:
// se borra en cascada con la orden). TotalPrice = Quantity × UnitPrice.
// ReceivedQuantity parte en 0 y crece a medida que llega la mercadería.
type PurchaseOrderItem struct {
	ID               string
	PurchaseOrderID  string
	SparePartID      *string
	Description      string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	ReceivedQuantity decimal.Decimal
	ReceivedDate     *time.Time
	Position         int // orden dentro de la orden de compra
}
