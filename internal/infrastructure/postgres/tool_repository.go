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

var _ repository.ToolRepository = (*ToolRepo)(nil)

// ToolRepo implementación del puerto ToolRepository sobre PostgreSQL.
type ToolRepo struct {
	pool *pgxpool.Pool
}

// NewToolRepository construye el adaptador de persistencia para herramientas.
func NewToolRepository(pool *pgxpool.Pool) *ToolRepo {
	return &ToolRepo{pool: pool}
}

const toolColumns = `id, company_id, name, code, brand, status, current_worker_id, current_sector_id, created_at, updated_at`

// Create persiste una nueva herramienta.
func (r *ToolRepo) Create(tool *entity.Tool) error {
	query := `
		INSERT INTO tools (` + toolColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		tool.ID, tool.CompanyID, tool.Name, tool.Code, tool.Brand, tool.Status,
		tool.CurrentWorkerID, tool.CurrentSectorID, tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	var t entity.Tool
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Code, &t.Brand, &t.Status,
		&t.CurrentWorkerID, &t.CurrentSectorID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return &t, nil
}

// ListByCompany lista las herramientas de una empresa.
func (r *ToolRepo) ListByCompany(companyID string) ([]*entity.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tool
	for rows.Next() {
		var t entity.Tool
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Name, &t.Code, &t.Brand, &t.Status,
			&t.CurrentWorkerID, &t.CurrentSectorID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una herramienta existente.
func (r *ToolRepo) Update(tool *entity.Tool) error {
	query := `
		UPDATE tools
		SET name = $2, code = $3, brand = $4, status = $5,
		    current_worker_id = $6, current_sector_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		tool.ID, tool.Name, tool.Code, tool.Brand, tool.Status,
		tool.CurrentWorkerID, tool.CurrentSectorID, tool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	return nil
}

// Delete elimina una herramienta por ID.
func (r *ToolRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}
