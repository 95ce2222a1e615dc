package procurement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/procurement"
)

func item(pedida, recibida int64) *entity.PurchaseOrderItem {
	return &entity.PurchaseOrderItem{
		Quantity:         decimal.NewFromInt(pedida),
		ReceivedQuantity: decimal.NewFromInt(recibida),
	}
}

func TestDeriveStatus(t *testing.T) {
	casos := []struct {
		nombre   string
		items    []*entity.PurchaseOrderItem
		actual   string
		esperado string
	}{
		{
			"sin items queda pendiente",
			nil,
			entity.PurchaseOrderStatusPendiente,
			entity.PurchaseOrderStatusPendiente,
		},
		{
			"nada recibido queda pendiente",
			[]*entity.PurchaseOrderItem{item(5, 0), item(3, 0)},
			entity.PurchaseOrderStatusPendiente,
			entity.PurchaseOrderStatusPendiente,
		},
		{
			"recepcion parcial",
			[]*entity.PurchaseOrderItem{item(5, 0), item(3, 3)},
			entity.PurchaseOrderStatusPendiente,
			entity.PurchaseOrderStatusParcial,
		},
		{
			"todo recibido completa la orden",
			[]*entity.PurchaseOrderItem{item(5, 5), item(3, 3)},
			entity.PurchaseOrderStatusParcial,
			entity.PurchaseOrderStatusCompletada,
		},
		{
			"sobre-recepcion tambien completa",
			[]*entity.PurchaseOrderItem{item(5, 7)},
			entity.PurchaseOrderStatusPendiente,
			entity.PurchaseOrderStatusCompletada,
		},
		{
			"cancelada es pegajosa aunque llegue todo",
			[]*entity.PurchaseOrderItem{item(5, 5)},
			entity.PurchaseOrderStatusCancelada,
			entity.PurchaseOrderStatusCancelada,
		},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, procurement.DeriveStatus(c.items, c.actual))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	items := []*entity.PurchaseOrderItem{
		{TotalPrice: decimal.NewFromFloat(1250.50)},
		{TotalPrice: decimal.NewFromFloat(99.50)},
	}
	assert.True(t, decimal.NewFromFloat(1350.00).Equal(procurement.TotalAmount(items)))
	assert.True(t, procurement.TotalAmount(nil).IsZero())
}
