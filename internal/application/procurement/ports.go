package procurement

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con el repo de
// órdenes de compra. La asignación del consecutivo (SELECT ... FOR UPDATE) y
// la escritura de cabecera + líneas deben hacer commit juntas.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(orderRepo repository.PurchaseOrderRepository) error) error
}

// PurchaseOrderDocument datos ya resueltos para armar el PDF de una orden de
// compra (sin acceso a repos desde el generador).
type PurchaseOrderDocument struct {
	CompanyName     string
	SupplierName    string
	SupplierContact string
	SupplierPhone   string
	OrderNumber     string
	OrderDate       string
	DeliveryDate    string
	Observations    string
	Status          string
	TotalAmount     decimal.Decimal
	Items           []PurchaseOrderDocumentItem
}

// PurchaseOrderDocumentItem línea del documento.
type PurchaseOrderDocumentItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// PDFGenerator puerto de generación del PDF de la orden de compra.
type PDFGenerator interface {
	PurchaseOrderPDF(doc *PurchaseOrderDocument) ([]byte, error)
}
