package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del tablero sobre PostgreSQL (solo lectura).
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de consultas del tablero.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountWorkOrdersByStatus cuenta las órdenes de una empresa en un estado.
func (r *DashboardRepo) CountWorkOrdersByStatus(companyID, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM work_orders WHERE company_id = $1 AND status = $2`,
		companyID, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count work orders by status: %w", err)
	}
	return n, nil
}

// CountWorkOrdersByTypeAndYear cuenta las órdenes de un tipo creadas en un año.
func (r *DashboardRepo) CountWorkOrdersByTypeAndYear(companyID, orderType string, year int) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM work_orders
		 WHERE company_id = $1 AND type = $2 AND EXTRACT(YEAR FROM created_at) = $3`,
		companyID, orderType, year,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count work orders by type and year: %w", err)
	}
	return n, nil
}

// ListRecentWorkOrders lista las últimas órdenes de la empresa.
func (r *DashboardRepo) ListRecentWorkOrders(companyID string, limit int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.AssetID, &o.SectorID, &o.PlanID,
			&o.TicketNumber, &o.Type, &o.Status, &o.Priority,
			&o.Description, &o.Observations, &o.RequestedByID, &o.AssignedToID,
			&o.CreatedAt, &o.AssignedAt, &o.StartDate, &o.EndDate, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
