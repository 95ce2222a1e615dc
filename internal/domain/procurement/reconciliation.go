// Package procurement contiene el servicio de dominio de compras: la
// reconciliación del estado de una orden a partir de sus líneas.
package procurement

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
)

// DeriveStatus deriva el estado de una orden de compra a partir de las
// cantidades pedidas vs. recibidas de sus ítems. Función pura: se invoca
// después de cada alta/modificación de ítems y el resultado se persiste.
//
// Reglas:
//   - CANCELADA es pegajosa: nunca se revierte automáticamente.
//   - Sin ítems → PENDIENTE.
//   - Todos los ítems con recibido >= pedido → COMPLETADA.
//   - Algún ítem con recibido > 0 → PARCIALMENTE_RECIBIDO.
//   - Si no, PENDIENTE.
func DeriveStatus(items []*entity.PurchaseOrderItem, currentStatus string) string {
	if currentStatus == entity.PurchaseOrderStatusCancelada {
		return entity.PurchaseOrderStatusCancelada
	}
	if len(items) == 0 {
		return entity.PurchaseOrderStatusPendiente
	}

	allReceived := true
	anyReceived := false
	for _, item := range items {
		if item.ReceivedQuantity.LessThan(item.Quantity) {
			allReceived = false
		}
		if item.ReceivedQuantity.GreaterThan(decimal.Zero) {
			anyReceived = true
		}
	}

	switch {
	case allReceived:
		return entity.PurchaseOrderStatusCompletada
	case anyReceived:
		return entity.PurchaseOrderStatusParcial
	default:
		return entity.PurchaseOrderStatusPendiente
	}
}

// TotalAmount suma los totales de línea de los ítems. Es el único cálculo
// válido del total de una orden: el campo TotalAmount nunca se edita a mano.
func TotalAmount(items []*entity.PurchaseOrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}
