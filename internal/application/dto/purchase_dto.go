package dto

import (
	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de una orden de compra. En la actualización
// (reemplazo total de ítems) el caller es responsable de reenviar las
// cantidades ya recibidas; lo que no venga en la lista se descarta.
type PurchaseOrderItemRequest struct {
	SparePartID      *string         `json:"spare_part_id"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	ReceivedDate     *string         `json:"received_date"` // formato 2006-01-02
}

// CreatePurchaseOrderRequest alta de una orden de compra. Si OrderNumber viene
// vacío, el sistema asigna el consecutivo OC-AAAA-0001 por empresa/año.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                     `json:"supplier_id"`
	OrderNumber  string                     `json:"order_number"`
	OrderDate    *string                    `json:"order_date"` // formato 2006-01-02; default hoy
	DeliveryDate *string                    `json:"delivery_date"`
	Observations string                     `json:"observations"`
	Items        []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderRequest actualización de cabecera + reemplazo total de
// ítems (atómico con el total y el estado derivados).
type UpdatePurchaseOrderRequest struct {
	SupplierID   string                     `json:"supplier_id"`
	OrderDate    *string                    `json:"order_date"`
	DeliveryDate *string                    `json:"delivery_date"`
	Observations string                     `json:"observations"`
	Status       *string                    `json:"status"` // solo para cancelar/reactivar manualmente
	Items        []PurchaseOrderItemRequest `json:"items"`
}

// PurchaseOrderItemResponse línea persistida.
type PurchaseOrderItemResponse struct {
	ID               string          `json:"id"`
	SparePartID      *string         `json:"spare_part_id"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	ReceivedDate     *string         `json:"received_date"`
}

// PurchaseOrderResponse orden de compra con sus líneas.
type PurchaseOrderResponse struct {
	ID           string                      `json:"id"`
	CompanyID    string                      `json:"company_id"`
	SupplierID   string                      `json:"supplier_id"`
	OrderNumber  string                      `json:"order_number"`
	OrderDate    string                      `json:"order_date"`
	DeliveryDate *string                     `json:"delivery_date"`
	Observations string                      `json:"observations"`
	Status       string                      `json:"status"`
	TotalAmount  decimal.Decimal             `json:"total_amount"`
	Items        []PurchaseOrderItemResponse `json:"items"`
}
