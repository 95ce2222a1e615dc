package repository

import "github.com/tu-usuario/gmao-pro/internal/domain/entity"

// PurchaseOrderFilters filtros opcionales del listado de órdenes de compra.
// Status admite además los agregados "PENDIENTES" (pendiente o parcial),
// "RECIBIDAS" (completadas) y "TODAS".
type PurchaseOrderFilters struct {
	Status     *string
	SupplierID *string
}

// PurchaseOrderRepository puerto de persistencia para órdenes de compra y sus
// líneas. La asignación de numeración y el reemplazo de ítems se ejecutan
// dentro de una transacción (ver procurement.TxRunner).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	ListByCompany(companyID string, filters PurchaseOrderFilters) ([]*entity.PurchaseOrder, error)
	ListItemsByOrder(orderID string) ([]*entity.PurchaseOrderItem, error)
	Update(order *entity.PurchaseOrder) error
	DeleteItemsByOrder(orderID string) error
	Delete(id string) error
	// LockLastOrderNumber devuelve el mayor número de orden de la empresa que
	// empiece con prefix, bloqueando la fila hasta el commit para serializar la
	// asignación del consecutivo. Devuelve "" si no hay órdenes previas.
	LockLastOrderNumber(companyID, prefix string) (string, error)
}
