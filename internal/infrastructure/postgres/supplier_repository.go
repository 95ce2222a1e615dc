package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
// Las categorías que provee cada proveedor van en la tabla puente
// supplier_categories (N:M).
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor con sus categorías.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO suppliers (id, company_id, name, rut_dni, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.Exec(ctx, query,
		supplier.ID, supplier.CompanyID, supplier.Name, supplier.RutDNI,
		supplier.Email, supplier.Phone, supplier.Address,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	if err := insertSupplierCategories(ctx, tx, supplier.ID, supplier.CategoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByID obtiene un proveedor por ID con sus categorías.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, rut_dni, email, phone, address, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.RutDNI, &s.Email, &s.Phone,
		&s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	if s.CategoryIDs, err = r.categoryIDs(s.ID); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByCompany lista los proveedores de una empresa con sus categorías.
func (r *SupplierRepo) ListByCompany(companyID string) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, rut_dni, email, phone, address, created_at, updated_at
		FROM suppliers WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.Name, &s.RutDNI, &s.Email, &s.Phone,
			&s.Address, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		if s.CategoryIDs, err = r.categoryIDs(s.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza un proveedor y reemplaza sus categorías.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE suppliers
		SET name = $2, rut_dni = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.RutDNI, supplier.Email,
		supplier.Phone, supplier.Address, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM supplier_categories WHERE supplier_id = $1`, supplier.ID); err != nil {
		return fmt.Errorf("delete supplier categories: %w", err)
	}
	if err := insertSupplierCategories(ctx, tx, supplier.ID, supplier.CategoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete elimina un proveedor por ID (la tabla puente cae en cascada).
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) categoryIDs(supplierID string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT category_id FROM supplier_categories WHERE supplier_id = $1`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier categories: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan supplier category: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertSupplierCategories(ctx context.Context, tx pgx.Tx, supplierID string, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO supplier_categories (supplier_id, category_id) VALUES ($1, $2)`,
			supplierID, categoryID)
		if err != nil {
			return fmt.Errorf("insert supplier category: %w", err)
		}
	}
	return nil
}
