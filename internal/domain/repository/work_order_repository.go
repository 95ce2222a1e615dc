package repository

import "github.com/tu-usuario/gmao-pro/internal/domain/entity"

// WorkOrderFilters filtros opcionales del listado de órdenes de trabajo.
type WorkOrderFilters struct {
	Status  *string
	AssetID *string
}

// WorkOrderRepository puerto de persistencia para órdenes de trabajo.
// Create debe fallar con violación de unicidad si el número de ticket ya
// existe (el caso de uso reintenta con otro número, nunca reusa uno).
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	ListByCompany(companyID string, filters WorkOrderFilters) ([]*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
}
