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

var _ repository.SectorRepository = (*SectorRepo)(nil)

// SectorRepo implementación del puerto SectorRepository sobre PostgreSQL.
type SectorRepo struct {
	pool *pgxpool.Pool
}

// NewSectorRepository construye el adaptador de persistencia para sectores.
func NewSectorRepository(pool *pgxpool.Pool) *SectorRepo {
	return &SectorRepo{pool: pool}
}

// Create persiste un nuevo sector.
func (r *SectorRepo) Create(sector *entity.Sector) error {
	query := `
		INSERT INTO sectors (id, company_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		sector.ID, sector.CompanyID, sector.Name, sector.Description,
		sector.CreatedAt, sector.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sector: %w", err)
	}
	return nil
}

// GetByID obtiene un sector por ID.
func (r *SectorRepo) GetByID(id string) (*entity.Sector, error) {
	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM sectors WHERE id = $1`
	var s entity.Sector
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	return &s, nil
}

// ListByCompany lista los sectores de una empresa.
func (r *SectorRepo) ListByCompany(companyID string) ([]*entity.Sector, error) {
	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM sectors WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sector
	for rows.Next() {
		var s entity.Sector
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un sector existente.
func (r *SectorRepo) Update(sector *entity.Sector) error {
	query := `
		UPDATE sectors SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		sector.ID, sector.Name, sector.Description, sector.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sector: %w", err)
	}
	return nil
}

// Delete elimina un sector por ID.
func (r *SectorRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM sectors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sector: %w", err)
	}
	return nil
}
