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

var _ repository.SparePartCategoryRepository = (*SparePartCategoryRepo)(nil)
var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// SparePartCategoryRepo implementación de SparePartCategoryRepository sobre PostgreSQL.
type SparePartCategoryRepo struct {
	pool *pgxpool.Pool
}

// NewSparePartCategoryRepository construye el adaptador para categorías de repuestos.
func NewSparePartCategoryRepository(pool *pgxpool.Pool) *SparePartCategoryRepo {
	return &SparePartCategoryRepo{pool: pool}
}

// Create persiste una nueva categoría.
func (r *SparePartCategoryRepo) Create(category *entity.SparePartCategory) error {
	query := `
		INSERT INTO spare_part_categories (id, company_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		category.ID, category.CompanyID, category.Name, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spare part category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *SparePartCategoryRepo) GetByID(id string) (*entity.SparePartCategory, error) {
	query := `
		SELECT id, company_id, name, created_at
		FROM spare_part_categories WHERE id = $1`
	var c entity.SparePartCategory
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part category: %w", err)
	}
	return &c, nil
}

// ListByCompany lista las categorías de una empresa.
func (r *SparePartCategoryRepo) ListByCompany(companyID string) ([]*entity.SparePartCategory, error) {
	query := `
		SELECT id, company_id, name, created_at
		FROM spare_part_categories WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list spare part categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SparePartCategory
	for rows.Next() {
		var c entity.SparePartCategory
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan spare part category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *SparePartCategoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM spare_part_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spare part category: %w", err)
	}
	return nil
}

// SparePartRepo implementación de SparePartRepository sobre PostgreSQL.
type SparePartRepo struct {
	pool *pgxpool.Pool
}

// NewSparePartRepository construye el adaptador para repuestos.
func NewSparePartRepository(pool *pgxpool.Pool) *SparePartRepo {
	return &SparePartRepo{pool: pool}
}

const sparePartColumns = `id, company_id, category_id, name, code, description, stock, min_stock, location, created_at, updated_at`

// Create persiste un nuevo repuesto.
func (r *SparePartRepo) Create(part *entity.SparePart) error {
	query := `
		INSERT INTO spare_parts (` + sparePartColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		part.ID, part.CompanyID, part.CategoryID, part.Name, part.Code,
		part.Description, part.Stock, part.MinStock, part.Location,
		part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spare part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *SparePartRepo) GetByID(id string) (*entity.SparePart, error) {
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts WHERE id = $1`
	var p entity.SparePart
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Code, &p.Description,
		&p.Stock, &p.MinStock, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los repuestos de una empresa.
func (r *SparePartRepo) ListByCompany(companyID string) ([]*entity.SparePart, error) {
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SparePart
	for rows.Next() {
		var p entity.SparePart
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Code, &p.Description,
			&p.Stock, &p.MinStock, &p.Location, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un repuesto existente.
func (r *SparePartRepo) Update(part *entity.SparePart) error {
	query := `
		UPDATE spare_parts
		SET category_id = $2, name = $3, code = $4, description = $5,
		    stock = $6, min_stock = $7, location = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		part.ID, part.CategoryID, part.Name, part.Code, part.Description,
		part.Stock, part.MinStock, part.Location, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update spare part: %w", err)
	}
	return nil
}

// Delete elimina un repuesto por ID.
func (r *SparePartRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM spare_parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spare part: %w", err)
	}
	return nil
}

// CountByCategory cuenta los repuestos de una categoría (bloqueo de borrado).
func (r *SparePartRepo) CountByCategory(categoryID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM spare_parts WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count spare parts by category: %w", err)
	}
	return n, nil
}
