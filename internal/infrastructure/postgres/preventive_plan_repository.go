package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
	"github.com/tu-usuario/gmao-pro/internal/domain/repository"
)

var _ repository.PreventivePlanRepository = (*PreventivePlanRepo)(nil)

// PreventivePlanRepo implementación de PreventivePlanRepository (usable con pool o tx).
type PreventivePlanRepo struct {
	q Querier
}

// NewPreventivePlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPreventivePlanRepository(q Querier) *PreventivePlanRepo {
	return &PreventivePlanRepo{q: q}
}

const planColumns = `id, company_id, asset_id, name, frequency_type, frequency_value, last_run, next_run, is_active, created_at, updated_at`

// Create persiste un nuevo plan.
func (r *PreventivePlanRepo) Create(plan *entity.PreventivePlan) error {
	query := `
		INSERT INTO preventive_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.CompanyID, plan.AssetID, plan.Name,
		plan.FrequencyType, plan.FrequencyValue, plan.LastRun, plan.NextRun,
		plan.IsActive, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert preventive plan: %w", err)
	}
	return nil
}

// CreateTask persiste un ítem del checklist.
func (r *PreventivePlanRepo) CreateTask(task *entity.PreventiveTask) error {
	query := `
		INSERT INTO preventive_tasks (id, plan_id, description, estimated_time, position)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.PlanID, task.Description, task.EstimatedTime, task.Position,
	)
	if err != nil {
		return fmt.Errorf("insert preventive task: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID.
func (r *PreventivePlanRepo) GetByID(id string) (*entity.PreventivePlan, error) {
	query := `SELECT ` + planColumns + ` FROM preventive_plans WHERE id = $1`
	var p entity.PreventivePlan
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.AssetID, &p.Name,
		&p.FrequencyType, &p.FrequencyValue, &p.LastRun, &p.NextRun,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preventive plan: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los planes de una empresa.
func (r *PreventivePlanRepo) ListByCompany(companyID string) ([]*entity.PreventivePlan, error) {
	query := `SELECT ` + planColumns + ` FROM preventive_plans WHERE company_id = $1 ORDER BY name`
	return r.list(query, companyID)
}

// ListDue lista los planes activos con next_run vencido a la fecha dada.
func (r *PreventivePlanRepo) ListDue(companyID string, today time.Time) ([]*entity.PreventivePlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM preventive_plans
		WHERE company_id = $1 AND is_active = true AND next_run IS NOT NULL AND next_run <= $2
		ORDER BY next_run`
	return r.list(query, companyID, today)
}

func (r *PreventivePlanRepo) list(query string, args ...any) ([]*entity.PreventivePlan, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list preventive plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.PreventivePlan
	for rows.Next() {
		var p entity.PreventivePlan
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.AssetID, &p.Name,
			&p.FrequencyType, &p.FrequencyValue, &p.LastRun, &p.NextRun,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan preventive plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListTasksByPlan lista el checklist de un plan en orden.
func (r *PreventivePlanRepo) ListTasksByPlan(planID string) ([]*entity.PreventiveTask, error) {
	query := `
		SELECT id, plan_id, description, estimated_time, position
		FROM preventive_tasks WHERE plan_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, planID)
	if err != nil {
		return nil, fmt.Errorf("list preventive tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.PreventiveTask
	for rows.Next() {
		var t entity.PreventiveTask
		if err := rows.Scan(&t.ID, &t.PlanID, &t.Description, &t.EstimatedTime, &t.Position); err != nil {
			return nil, fmt.Errorf("scan preventive task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un plan.
func (r *PreventivePlanRepo) Update(plan *entity.PreventivePlan) error {
	query := `
		UPDATE preventive_plans
		SET asset_id = $2, name = $3, frequency_type = $4, frequency_value = $5,
		    is_active = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.AssetID, plan.Name, plan.FrequencyType,
		plan.FrequencyValue, plan.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update preventive plan: %w", err)
	}
	return nil
}

// AdvanceSchedule avanza la agenda del plan solo si next_run sigue valiendo
// expectedNextRun. El WHERE condicional es lo que serializa barridos
// concurrentes: solo uno ve RowsAffected = 1.
func (r *PreventivePlanRepo) AdvanceSchedule(planID string, lastRun, nextRun, expectedNextRun time.Time) (bool, error) {
	query := `
		UPDATE preventive_plans
		SET last_run = $2, next_run = $3, updated_at = now()
		WHERE id = $1 AND next_run = $4`
	cmd, err := r.q.Exec(context.Background(), query, planID, lastRun, nextRun, expectedNextRun)
	if err != nil {
		return false, fmt.Errorf("advance plan schedule: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Delete elimina un plan (las tareas caen en cascada).
func (r *PreventivePlanRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM preventive_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete preventive plan: %w", err)
	}
	return nil
}

// CountByAsset cuenta los planes de un activo (bloqueo de borrado de activo).
func (r *PreventivePlanRepo) CountByAsset(assetID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM preventive_plans WHERE asset_id = $1`, assetID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count plans by asset: %w", err)
	}
	return n, nil
}
