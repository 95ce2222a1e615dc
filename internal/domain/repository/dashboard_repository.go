package repository

import "github.com/tu-usuario/gmao-pro/internal/domain/entity"

// DashboardRepository consultas agregadas para el tablero (solo lectura).
type DashboardRepository interface {
	CountWorkOrdersByStatus(companyID, status string) (int, error)
	CountWorkOrdersByTypeAndYear(companyID, orderType string, year int) (int, error)
	ListRecentWorkOrders(companyID string, limit int) ([]*entity.WorkOrder, error)
}
