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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, company_id, supplier_id, order_number, order_date, delivery_date, observations, status, total_amount, created_at, updated_at`

// Create persiste la cabecera de la orden de compra. Devuelve ErrDuplicate si
// el número ya existe para la empresa.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.SupplierID, order.OrderNumber,
		order.OrderDate, order.DeliveryDate, order.Observations, order.Status,
		order.TotalAmount, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert purchase order: %w", domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert purchase order: %w", domain.ErrInvalidReference)
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *PurchaseOrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, purchase_order_id, spare_part_id, description, quantity, unit_price, total_price, received_quantity, received_date, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseOrderID, item.SparePartID, item.Description,
		item.Quantity, item.UnitPrice, item.TotalPrice,
		item.ReceivedQuantity, item.ReceivedDate, item.Position,
	)
	if err != nil {
		// spare_part_id referencia un repuesto que pudo borrarse en paralelo.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert purchase order item: %w", domain.ErrInvalidReference)
		}
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden de compra por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.SupplierID, &o.OrderNumber,
		&o.OrderDate, &o.DeliveryDate, &o.Observations, &o.Status,
		&o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// ListByCompany lista las órdenes de una empresa. Status admite además los
// agregados PENDIENTES (pendiente o parcial), RECIBIDAS (completadas) y TODAS.
func (r *PurchaseOrderRepo) ListByCompany(companyID string, filters repository.PurchaseOrderFilters) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE company_id = $1`
	args := []any{companyID}
	if filters.Status != nil {
		switch *filters.Status {
		case "PENDIENTES":
			args = append(args, entity.PurchaseOrderStatusPendiente, entity.PurchaseOrderStatusParcial)
			query += fmt.Sprintf(` AND status IN ($%d, $%d)`, len(args)-1, len(args))
		case "RECIBIDAS":
			args = append(args, entity.PurchaseOrderStatusCompletada)
			query += fmt.Sprintf(` AND status = $%d`, len(args))
		case "TODAS", "":
			// sin filtro
		default:
			args = append(args, *filters.Status)
			query += fmt.Sprintf(` AND status = $%d`, len(args))
		}
	}
	if filters.SupplierID != nil {
		args = append(args, *filters.SupplierID)
		query += fmt.Sprintf(` AND supplier_id = $%d`, len(args))
	}
	query += ` ORDER BY order_number DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.SupplierID, &o.OrderNumber,
			&o.OrderDate, &o.DeliveryDate, &o.Observations, &o.Status,
			&o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListItemsByOrder lista las líneas de una orden en su orden de carga.
func (r *PurchaseOrderRepo) ListItemsByOrder(orderID string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, purchase_order_id, spare_part_id, description, quantity, unit_price, total_price, received_quantity, received_date, position
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(
			&it.ID, &it.PurchaseOrderID, &it.SparePartID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.TotalPrice,
			&it.ReceivedQuantity, &it.ReceivedDate, &it.Position,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera (el número de orden no se toca).
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_id = $2, order_date = $3, delivery_date = $4,
		    observations = $5, status = $6, total_amount = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.OrderDate, order.DeliveryDate,
		order.Observations, order.Status, order.TotalAmount, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// DeleteItemsByOrder borra todas las líneas de una orden (reemplazo total).
func (r *PurchaseOrderRepo) DeleteItemsByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete purchase order items: %w", err)
	}
	return nil
}

// Delete elimina una orden (las líneas caen en cascada).
func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

// LockLastOrderNumber devuelve el mayor número con el prefijo dado para la
// empresa, bloqueando la fila hasta el commit (SELECT ... FOR UPDATE) para
// serializar la asignación del consecutivo entre transacciones.
func (r *PurchaseOrderRepo) LockLastOrderNumber(companyID, prefix string) (string, error) {
	query := `
		SELECT order_number FROM purchase_orders
		WHERE company_id = $1 AND order_number LIKE $2 || '%'
		ORDER BY order_number DESC
		LIMIT 1
		FOR UPDATE`
	var number string
	err := r.q.QueryRow(context.Background(), query, companyID, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("lock last order number: %w", err)
	}
	return number, nil
}
