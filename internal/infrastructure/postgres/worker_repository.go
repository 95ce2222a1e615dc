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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

const workerColumns = `id, company_id, first_name, last_name, rut_dni, email, phone, job_title, sector_id, is_active, created_at, updated_at`

// Create persiste un nuevo trabajador.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		worker.ID, worker.CompanyID, worker.FirstName, worker.LastName,
		worker.RutDNI, worker.Email, worker.Phone, worker.JobTitle,
		worker.SectorID, worker.IsActive, worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`
	var w entity.Worker
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.CompanyID, &w.FirstName, &w.LastName, &w.RutDNI,
		&w.Email, &w.Phone, &w.JobTitle, &w.SectorID, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// ListByCompany lista los trabajadores de una empresa.
func (r *WorkerRepo) ListByCompany(companyID string) ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE company_id = $1 ORDER BY last_name, first_name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(
			&w.ID, &w.CompanyID, &w.FirstName, &w.LastName, &w.RutDNI,
			&w.Email, &w.Phone, &w.JobTitle, &w.SectorID, &w.IsActive,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza un trabajador existente.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE workers
		SET first_name = $2, last_name = $3, rut_dni = $4, email = $5,
		    phone = $6, job_title = $7, sector_id = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		worker.ID, worker.FirstName, worker.LastName, worker.RutDNI,
		worker.Email, worker.Phone, worker.JobTitle, worker.SectorID,
		worker.IsActive, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	return nil
}

// Delete elimina un trabajador por ID.
func (r *WorkerRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}
