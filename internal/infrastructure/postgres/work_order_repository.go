package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gmao-pro/internal/domain"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, company_id, asset_id, sector_id, plan_id, ticket_number, type, status, priority, description, observations, requested_by_id, assigned_to_id, created_at, assigned_at, start_date, end_date, updated_at`

// Create persiste una nueva orden de trabajo. Devuelve ErrDuplicate si el
// número de ticket ya existe.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.AssetID, order.SectorID, order.PlanID,
		order.TicketNumber, order.Type, order.Status, order.Priority,
		order.Description, order.Observations, order.RequestedByID, order.AssignedToID,
		order.CreatedAt, order.AssignedAt, order.StartDate, order.EndDate, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert work order: %w", domain.ErrDuplicate)
		}
		// El activo/sector/plan pudo borrarse entre la validación del use case
		// y el insert.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert work order: %w", domain.ErrInvalidReference)
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de trabajo por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	var o entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.AssetID, &o.SectorID, &o.PlanID,
		&o.TicketNumber, &o.Type, &o.Status, &o.Priority,
		&o.Description, &o.Observations, &o.RequestedByID, &o.AssignedToID,
		&o.CreatedAt, &o.AssignedAt, &o.StartDate, &o.EndDate, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &o, nil
}

// ListByCompany lista las órdenes de una empresa, con filtros opcionales por
// estado y activo, de la más reciente a la más vieja.
func (r *WorkOrderRepo) ListByCompany(companyID string, filters repository.WorkOrderFilters) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE company_id = $1`
	args := []any{companyID}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filters.AssetID != nil {
		args = append(args, *filters.AssetID)
		query += fmt.Sprintf(` AND asset_id = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
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

// Update actualiza los campos mutables de una orden (ticket y created_at
// quedan fuera del SET).
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET status = $2, priority = $3, description = $4, observations = $5,
		    assigned_to_id = $6, assigned_at = $7, start_date = $8, end_date = $9,
		    updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.Priority, order.Description, order.Observations,
		order.AssignedToID, order.AssignedAt, order.StartDate, order.EndDate,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}
